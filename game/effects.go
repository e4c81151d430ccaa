package game

import (
	"strconv"
	"strings"
)

// EffectKind enumerates the closed set of effect tags the engine
// understands. Unknown tags in a card table are dropped at parse time
// for forward compatibility.
type EffectKind int

const (
	EffectDraw EffectKind = iota
	EffectDraw2Discard1
	EffectOnCompostGain
	EffectHandSizeDelta
	EffectForageBonus
	EffectBlight
	EffectDecreeRule
	EffectSelfPlasma
	EffectSelfGain
	EffectSelfVP
	EffectPeek2Keep1
)

// Effect is one parsed tag: a kind plus its payload. N carries the
// amount for counted effects; Resource names the granted resource for
// gain effects.
type Effect struct {
	Kind     EffectKind
	N        int
	Resource Resource
}

// ParseEffects parses a semicolon-separated effect string into typed
// effects. Tags that are malformed or unrecognized are silently
// skipped.
func ParseEffects(text string) []Effect {
	var out []Effect
	for _, raw := range strings.Split(text, ";") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if e, ok := parseTag(tag); ok {
			out = append(out, e)
		}
	}
	return out
}

func parseTag(tag string) (Effect, bool) {
	parts := strings.Split(tag, ":")
	key := parts[0]

	arg := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	num := func(i int) (int, bool) {
		n, err := strconv.Atoi(strings.ReplaceAll(arg(i), "+", ""))
		return n, err == nil
	}

	switch key {
	case "draw":
		if n, ok := num(1); ok && n > 0 {
			return Effect{Kind: EffectDraw, N: n}, true
		}
	case "draw2_discard1":
		return Effect{Kind: EffectDraw2Discard1}, true
	case "if_composted_gain", "on_compost":
		res := Resource(strings.ToLower(arg(1)))
		if n, ok := num(2); ok && n > 0 && IsResource(string(res)) {
			return Effect{Kind: EffectOnCompostGain, N: n, Resource: res}, true
		}
	case "hand_size_delta_next_round":
		if n, ok := num(1); ok {
			return Effect{Kind: EffectHandSizeDelta, N: n}, true
		}
	case "forage_yield_bonus_this_round":
		if n, ok := num(1); ok && n > 0 {
			return Effect{Kind: EffectForageBonus, N: n}, true
		}
	case "end_round_all_compost":
		return Effect{Kind: EffectBlight}, true
	case "first_to_play_three_domains":
		return Effect{Kind: EffectDecreeRule, N: 2}, true
	case "self_plasma":
		if n, ok := num(1); ok && n > 0 {
			return Effect{Kind: EffectSelfPlasma, N: n}, true
		}
	case "self_gain":
		res := Resource(strings.ToLower(arg(1)))
		if n, ok := num(2); ok && n > 0 && IsResource(string(res)) {
			return Effect{Kind: EffectSelfGain, N: n, Resource: res}, true
		}
	case "self_vp":
		if n, ok := num(1); ok && n > 0 {
			return Effect{Kind: EffectSelfVP, N: n}, true
		}
	case "self_peek2_keep1":
		return Effect{Kind: EffectPeek2Keep1}, true
	}
	return Effect{}, false
}
