// Package telemetry aggregates finished-game event logs into the
// balance summaries the analysis step consumes.
package telemetry

import (
	"sort"

	"scarecrovv/engine"
	"scarecrovv/eventlog"
	"scarecrovv/game"
)

// CardRow is the per-card summary across a batch of games.
type CardRow struct {
	CardID          string
	Bought          int
	Played          int
	ToMatPlays      int
	GamesOwned      int
	WinsWhenOwned   int
	CompostTriggers int
	SlotUsage       map[int]int
	TimeToFirstPlay int // earliest round seen; -1 when never played
}

// FieldRow is the per-seat summary across a batch of games.
type FieldRow struct {
	PlayerID         int
	Visits           map[game.Field]int
	InitiativeClaims int
	BuyVP            map[int]int
	PlayVP           map[int]int
	PlaysVP          int
	VPFromTokens     int
	VPBonusSlot1     int
	VPEndTotal       int
	Games            int
}

// Collect folds every game's events into card and field rows. Card
// rows come back sorted by id, field rows by seat.
func Collect(results []engine.Result) ([]CardRow, []FieldRow) {
	cards := map[string]*CardRow{}
	fields := map[int]*FieldRow{}

	cardRow := func(cid string) *CardRow {
		r, ok := cards[cid]
		if !ok {
			r = &CardRow{CardID: cid, SlotUsage: map[int]int{}, TimeToFirstPlay: -1}
			cards[cid] = r
		}
		return r
	}
	fieldRow := func(pid int) *FieldRow {
		r, ok := fields[pid]
		if !ok {
			r = &FieldRow{
				PlayerID: pid,
				Visits:   map[game.Field]int{},
				BuyVP:    map[int]int{},
				PlayVP:   map[int]int{},
			}
			fields[pid] = r
		}
		return r
	}

	for _, res := range results {
		owned := map[int]map[string]bool{}

		for _, e := range res.Events {
			switch e.A {
			case eventlog.KindBuy:
				if e.Cid == "" {
					continue
				}
				cardRow(e.Cid).Bought++
				if owned[e.P] == nil {
					owned[e.P] = map[string]bool{}
				}
				owned[e.P][e.Cid] = true

			case eventlog.KindPlayCard:
				if e.Cid == "" {
					continue
				}
				r := cardRow(e.Cid)
				r.Played++
				if e.ToMat {
					r.ToMatPlays++
					r.SlotUsage[e.Slot]++
				}
				if r.TimeToFirstPlay < 0 || e.T < r.TimeToFirstPlay {
					r.TimeToFirstPlay = e.T
				}

			case eventlog.KindPlayGlobal:
				if e.Cid != "" {
					cardRow(e.Cid).Played++
				}

			case eventlog.KindCompostGain:
				if e.Cid != "" {
					cardRow(e.Cid).CompostTriggers++
				}

			case eventlog.KindWorker:
				r := fieldRow(e.P)
				f := game.Field(e.Field)
				r.Visits[f]++
				if f == game.FieldInitiative {
					r.InitiativeClaims++
				}

			case eventlog.KindBuyVP:
				fieldRow(e.P).BuyVP[e.VP]++

			case eventlog.KindPlayVP:
				r := fieldRow(e.P)
				r.PlayVP[e.VP]++
				r.PlaysVP++
				r.VPFromTokens += e.VP
				r.VPBonusSlot1 += e.Bonus
			}
		}

		for pid, set := range owned {
			for cid := range set {
				r := cardRow(cid)
				r.GamesOwned++
				if res.Winner == pid {
					r.WinsWhenOwned++
				}
			}
		}
		for pid, vp := range res.VPs {
			r := fieldRow(pid)
			r.VPEndTotal += vp
			r.Games++
		}
	}

	cardRows := make([]CardRow, 0, len(cards))
	for _, r := range cards {
		cardRows = append(cardRows, *r)
	}
	sort.Slice(cardRows, func(i, j int) bool { return cardRows[i].CardID < cardRows[j].CardID })

	fieldRows := make([]FieldRow, 0, len(fields))
	for _, r := range fields {
		fieldRows = append(fieldRows, *r)
	}
	sort.Slice(fieldRows, func(i, j int) bool { return fieldRows[i].PlayerID < fieldRows[j].PlayerID })

	return cardRows, fieldRows
}
