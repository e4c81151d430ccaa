// Package cards loads the card library from CSV definition files.
package cards

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"scarecrovv/game"
)

const defaultBuyCost = 2

// Load reads the regular card table. Expected columns:
//
//	id,name,buy_cost_plasma,play_cost_<resource>,type,domain,mat_points,can_play_on_mat,effect
//
// Missing optional columns fall back to sensible defaults; only id is
// required.
func Load(path string) (game.Library, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	lib := make(game.Library, len(rows))
	for _, row := range rows {
		c, err := cardFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("cards %s: %w", path, err)
		}
		lib[c.ID] = c
	}
	return lib, nil
}

// LoadGlobals reads the global-card table. Globals are forced to type
// Global, domain None and never mat-playable, whatever the row says.
func LoadGlobals(path string) (game.Library, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	lib := make(game.Library, len(rows))
	for _, row := range rows {
		c, err := cardFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("globals %s: %w", path, err)
		}
		c.Type = game.TypeGlobal
		c.Domain = "None"
		c.MatPoints = 0
		c.CanPlayOnMat = false
		lib[c.ID] = c
	}
	return lib, nil
}

// Merge combines card tables into one library. Later tables win on id
// collisions.
func Merge(libs ...game.Library) game.Library {
	out := game.Library{}
	for _, lib := range libs {
		for id, c := range lib {
			out[id] = c
		}
	}
	return out
}

func cardFromRow(row map[string]string) (*game.Card, error) {
	id := row["id"]
	if id == "" {
		return nil, fmt.Errorf("row missing id")
	}
	name := row["name"]
	if name == "" {
		name = id
	}
	c := &game.Card{
		ID:           id,
		Name:         name,
		BuyCost:      asInt(row["buy_cost_plasma"], defaultBuyCost),
		PlayCost:     playCostFromRow(row),
		Type:         orDefault(row["type"], "None"),
		Domain:       orDefault(row["domain"], "None"),
		MatPoints:    asInt(row["mat_points"], 0),
		CanPlayOnMat: asBool(row["can_play_on_mat"], true),
		EffectText:   row["effect"],
	}
	c.Effects = game.ParseEffects(c.EffectText)
	return c, nil
}

func playCostFromRow(row map[string]string) game.Cost {
	cost := game.Cost{}
	for _, r := range game.ResourceOrder {
		if v := asInt(row["play_cost_"+string(r)], 0); v > 0 {
			cost[r] = v
		}
	}
	return cost
}

// readCSV returns one map per data row, keyed by trimmed header name.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func asInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func asBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	default:
		return def
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
