package game

import (
	"strconv"
	"strings"
)

// Resource is one of the six resource kinds.
type Resource string

const (
	Plasma   Resource = "plasma"
	Ash      Resource = "ash"
	Shards   Resource = "shards"
	Nut      Resource = "nut"
	Berry    Resource = "berry"
	Mushroom Resource = "mushroom"
)

// ResourceOrder is the fixed priority order used for discounts and for
// every iteration over cost maps, so payment behavior never depends on
// map ordering.
var ResourceOrder = []Resource{Plasma, Ash, Shards, Nut, Berry, Mushroom}

// ForageResources are the minor resources the forage field yields.
var ForageResources = []Resource{Nut, Berry, Mushroom}

func IsResource(s string) bool {
	for _, r := range ResourceOrder {
		if string(r) == s {
			return true
		}
	}
	return false
}

// Cost maps resources to required (or held) amounts.
type Cost map[Resource]int

func (c Cost) Clone() Cost {
	out := make(Cost, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func (c Cost) Total() int {
	sum := 0
	for _, v := range c {
		sum += v
	}
	return sum
}

// StringMap converts to the string-keyed shape used in event records.
func (c Cost) StringMap() map[string]int {
	if len(c) == 0 {
		return nil
	}
	out := make(map[string]int, len(c))
	for k, v := range c {
		out[string(k)] = v
	}
	return out
}

// ChoiceCost is a fixed cost plus, when OneOf is nonempty, exactly one
// unit from the listed resources.
type ChoiceCost struct {
	Fixed Cost
	OneOf []Resource
}

// Hand and deck zones hold three token shapes: library card ids,
// single-use resource tokens "RES:<resource>" and point tokens "VP:<n>".

const (
	resTokenPrefix = "RES:"
	vpTokenPrefix  = "VP:"
)

func ResToken(r Resource) string { return resTokenPrefix + string(r) }
func VPToken(v int) string       { return vpTokenPrefix + strconv.Itoa(v) }

// ParseResToken returns the resource a token represents, or false if
// the token is not a resource token.
func ParseResToken(tok string) (Resource, bool) {
	if !strings.HasPrefix(tok, resTokenPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(tok, resTokenPrefix)
	if !IsResource(name) {
		return "", false
	}
	return Resource(name), true
}

// ParseVPToken returns the face value of a point token, or false if the
// token is not a point token. Unparsable values fall back to 1.
func ParseVPToken(tok string) (int, bool) {
	if !strings.HasPrefix(tok, vpTokenPrefix) {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimPrefix(tok, vpTokenPrefix))
	if err != nil || v < 1 {
		return 1, true
	}
	return v, true
}

func IsVPToken(tok string) bool {
	_, ok := ParseVPToken(tok)
	return ok
}
