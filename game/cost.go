package game

// Payment engine. Costs can be met from two sources: the player's
// persistent resource counters and single-use RES tokens sitting in
// hand. Tokens used for payment are removed from the hand outright,
// not discarded. Everything here checks before it mutates, so an
// unpayable cost is always a no-op.

// countResTokens counts hand tokens for one resource.
func countResTokens(p *Player, r Resource) int {
	tok := ResToken(r)
	n := 0
	for _, t := range p.Hand {
		if t == tok {
			n++
		}
	}
	return n
}

// removeResTokens removes up to n tokens of a resource from hand and
// returns how many were removed.
func removeResTokens(p *Player, r Resource, n int) int {
	if n <= 0 {
		return 0
	}
	tok := ResToken(r)
	removed := 0
	for i := 0; i < len(p.Hand) && removed < n; {
		if p.Hand[i] == tok {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			removed++
			continue
		}
		i++
	}
	return removed
}

// Available is the total a player can spend of one resource: counters
// plus hand tokens.
func Available(p *Player, r Resource) int {
	return p.Resources[r] + countResTokens(p, r)
}

func CanPayMixed(p *Player, cost Cost) bool {
	for _, r := range ResourceOrder {
		if need := cost[r]; need > 0 && Available(p, r) < need {
			return false
		}
	}
	return true
}

// PayMixed spends a cost, consuming hand tokens before counters when
// preferTokens is set (the default policy, keeping the hand lean).
// Caller must have checked CanPayMixed.
func PayMixed(p *Player, cost Cost, preferTokens bool) {
	for _, r := range ResourceOrder {
		need := cost[r]
		if need <= 0 {
			continue
		}
		if preferTokens {
			used := removeResTokens(p, r, need)
			if remain := need - used; remain > 0 {
				p.Resources[r] -= remain
			}
		} else {
			fromCounters := min(p.Resources[r], need)
			p.Resources[r] -= fromCounters
			if remain := need - fromCounters; remain > 0 {
				removeResTokens(p, r, remain)
			}
		}
	}
}

// CanPayChoice checks the fixed part plus, when OneOf is present, that
// at least one listed resource has a unit available.
func CanPayChoice(p *Player, cost ChoiceCost) bool {
	if !CanPayMixed(p, cost.Fixed) {
		return false
	}
	if len(cost.OneOf) == 0 {
		return true
	}
	// A choice resource that also appears in the fixed part must be
	// covered on top of it.
	for _, r := range cost.OneOf {
		if Available(p, r) >= cost.Fixed[r]+1 {
			return true
		}
	}
	return false
}

// chooseChoiceResource picks which resource satisfies the one-of part:
// the one with the most hand tokens (shedding tokens first), ties
// broken by total availability, then listing order.
func chooseChoiceResource(p *Player, choices []Resource) (Resource, bool) {
	var best Resource
	bestTok, bestAvail := -1, -1
	for _, r := range choices {
		avail := Available(p, r)
		if avail < 1 {
			continue
		}
		tok := countResTokens(p, r)
		if tok > bestTok || (tok == bestTok && avail > bestAvail) {
			best, bestTok, bestAvail = r, tok, avail
		}
	}
	return best, bestTok >= 0
}

// PayChoice pays the fixed part then one unit of a chosen listed
// resource. Caller must have checked CanPayChoice.
func PayChoice(p *Player, cost ChoiceCost, preferTokens bool) bool {
	PayMixed(p, cost.Fixed, preferTokens)
	if len(cost.OneOf) == 0 {
		return true
	}
	r, ok := chooseChoiceResource(p, cost.OneOf)
	if !ok {
		return false
	}
	if preferTokens {
		if removeResTokens(p, r, 1) == 0 {
			p.Resources[r]--
		}
	} else {
		if p.Resources[r] > 0 {
			p.Resources[r]--
		} else {
			removeResTokens(p, r, 1)
		}
	}
	return true
}

// DiscountFor reports the play-cost discount a player's mat grants a
// card: 1 when any qualifying slot matches, never more. Slot 2 matches
// the remembered chosen type; slots 4, 5 and 6 match Critter, Farm and
// Wild respectively.
func DiscountFor(p *Player, c *Card) int {
	if c.IsGlobal() {
		return 0
	}
	if p.HasSlot(2) && p.Slot2Type != "" && c.Type == p.Slot2Type {
		return 1
	}
	if p.HasSlot(4) && c.Type == TypeCritter {
		return 1
	}
	if p.HasSlot(5) && c.Type == TypeFarm {
		return 1
	}
	if p.HasSlot(6) && c.Type == TypeWild {
		return 1
	}
	return 0
}

// DiscountedCost subtracts the single-unit discount from the first
// nonzero cost entry in ResourceOrder; an entry reaching zero is
// dropped. No entry ever goes below zero.
func DiscountedCost(c *Card, discount int) Cost {
	cost := c.PlayCost.Clone()
	if discount <= 0 {
		return cost
	}
	for _, r := range ResourceOrder {
		if cost[r] > 0 {
			cost[r]--
			if cost[r] == 0 {
				delete(cost, r)
			}
			break
		}
	}
	return cost
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
