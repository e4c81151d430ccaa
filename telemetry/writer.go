package telemetry

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"scarecrovv/config"
	"scarecrovv/engine"
	"scarecrovv/eventlog"
	"scarecrovv/game"
)

// Writer lays one batch run down on disk: a run config, the card and
// field summary CSVs and a JSONL event log per game, all under a
// timestamped run directory.
type Writer struct {
	RunID   string
	BaseDir string
}

func NewWriter(outDir string) (*Writer, error) {
	runID := uuid.NewString()
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}
	return &Writer{RunID: runID, BaseDir: baseDir}, nil
}

// WriteAll writes every artifact for a finished batch.
func (w *Writer) WriteAll(cfg *config.Config, results []engine.Result) error {
	if err := w.writeRunConfig(cfg); err != nil {
		return err
	}
	cardRows, fieldRows := Collect(results)
	if err := w.writeCards(cardRows); err != nil {
		return err
	}
	if err := w.writeFields(fieldRows); err != nil {
		return err
	}
	return w.writeEvents(results)
}

func (w *Writer) writeRunConfig(cfg *config.Config) error {
	f, err := os.Create(filepath.Join(w.BaseDir, "run_config.csv"))
	if err != nil {
		return fmt.Errorf("failed to create run config file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write([]string{"run_id", "seed", "games", "players", "victory_vp", "bot", "rollouts", "horizon", "explore"}); err != nil {
		return err
	}
	return cw.Write([]string{
		w.RunID,
		strconv.FormatUint(cfg.Seed, 10),
		strconv.Itoa(cfg.Games),
		strconv.Itoa(cfg.Players),
		strconv.Itoa(cfg.VictoryVP),
		engine.BotLabel(cfg),
		strconv.Itoa(cfg.Rollouts),
		strconv.Itoa(cfg.Horizon),
		strconv.FormatFloat(cfg.Explore, 'f', -1, 64),
	})
}

func (w *Writer) writeCards(rows []CardRow) error {
	f, err := os.Create(filepath.Join(w.BaseDir, "summary_cards.csv"))
	if err != nil {
		return fmt.Errorf("failed to create card summary file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"card_id", "bought", "played", "to_mat_rate", "games_owned", "winrate_when_owned", "compost_triggers", "slot_pref", "time_to_first_play"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.CardID,
			strconv.Itoa(r.Bought),
			strconv.Itoa(r.Played),
			ratio(r.ToMatPlays, r.Played),
			strconv.Itoa(r.GamesOwned),
			ratio(r.WinsWhenOwned, r.GamesOwned),
			strconv.Itoa(r.CompostTriggers),
			slotPref(r.SlotUsage),
			firstPlay(r.TimeToFirstPlay),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeFields(rows []FieldRow) error {
	f, err := os.Create(filepath.Join(w.BaseDir, "summary_fields.csv"))
	if err != nil {
		return fmt.Errorf("failed to create field summary file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"player_id"}
	for _, fld := range game.FieldOrder {
		header = append(header, "visits_"+string(fld))
	}
	header = append(header, "initiative_claims")
	for _, v := range []int{1, 2, 3} {
		header = append(header, "buy_vp_"+strconv.Itoa(v))
	}
	for _, v := range []int{1, 2, 3} {
		header = append(header, "play_vp_"+strconv.Itoa(v))
	}
	header = append(header, "plays_vp", "vp_from_tokens", "vp_bonus_from_slot1", "vp_end_total", "games")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		rec := []string{strconv.Itoa(r.PlayerID)}
		for _, fld := range game.FieldOrder {
			rec = append(rec, strconv.Itoa(r.Visits[fld]))
		}
		rec = append(rec, strconv.Itoa(r.InitiativeClaims))
		for _, v := range []int{1, 2, 3} {
			rec = append(rec, strconv.Itoa(r.BuyVP[v]))
		}
		for _, v := range []int{1, 2, 3} {
			rec = append(rec, strconv.Itoa(r.PlayVP[v]))
		}
		rec = append(rec,
			strconv.Itoa(r.PlaysVP),
			strconv.Itoa(r.VPFromTokens),
			strconv.Itoa(r.VPBonusSlot1),
			strconv.Itoa(r.VPEndTotal),
			strconv.Itoa(r.Games),
		)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeEvents(results []engine.Result) error {
	for i, res := range results {
		path := filepath.Join(w.BaseDir, fmt.Sprintf("game_%04d.jsonl", i))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create event log file: %w", err)
		}
		if err := eventlog.WriteJSONL(f, res.Events); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func ratio(num, den int) string {
	if den == 0 {
		return ""
	}
	return strconv.FormatFloat(float64(num)/float64(den), 'f', 4, 64)
}

func firstPlay(t int) string {
	if t < 0 {
		return ""
	}
	return strconv.Itoa(t)
}

// slotPref renders slot usage as "slot:count" pairs in slot order,
// e.g. "2:3;5:1".
func slotPref(usage map[int]int) string {
	if len(usage) == 0 {
		return ""
	}
	slots := make([]int, 0, len(usage))
	for s := range usage {
		slots = append(slots, s)
	}
	sort.Ints(slots)
	out := ""
	for i, s := range slots {
		if i > 0 {
			out += ";"
		}
		out += strconv.Itoa(s) + ":" + strconv.Itoa(usage[s])
	}
	return out
}
