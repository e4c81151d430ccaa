package game

// ZoneSnapshot captures the card contents of every zone a player
// owns. It round-trips through JSON so game records can be rebuilt
// offline.
type ZoneSnapshot struct {
	Deck    []string       `json:"deck"`
	Hand    []string       `json:"hand"`
	Discard []string       `json:"discard"`
	Mat     map[int]string `json:"mat"`
}

// SnapshotZones copies pid's zones into a standalone snapshot.
func (g *GameState) SnapshotZones(pid int) ZoneSnapshot {
	p := g.Players[pid]
	s := ZoneSnapshot{
		Deck:    append([]string(nil), p.Deck...),
		Hand:    append([]string(nil), p.Hand...),
		Discard: append([]string(nil), p.Discard...),
		Mat:     make(map[int]string, len(p.Mat)),
	}
	for slot, cid := range p.Mat {
		s.Mat[slot] = cid
	}
	return s
}

// RestoreZones overwrites pid's zones from a snapshot.
func (g *GameState) RestoreZones(pid int, s ZoneSnapshot) {
	p := g.Players[pid]
	p.Deck = append([]string(nil), s.Deck...)
	p.Hand = append([]string(nil), s.Hand...)
	p.Discard = append([]string(nil), s.Discard...)
	p.Mat = make(map[int]string, len(s.Mat))
	for slot, cid := range s.Mat {
		p.Mat[slot] = cid
	}
}
