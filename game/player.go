package game

// MatSlots is the fixed size of a player's mat.
const MatSlots = 6

// Player holds one seat's zones, resources and telemetry counters.
// Deck is drawn from the end; hand order matters for compost and
// discard tie-breaks; the mat maps slot index 1..6 to at most one card
// id and never loses a card once placed.
type Player struct {
	ID      int
	Deck    []string
	Hand    []string
	Discard []string
	Mat     map[int]string

	Workers   int
	VP        int
	Resources Cost

	// Slot2Type is the standing discount-eligible category remembered
	// when a card is placed on mat slot 2.
	Slot2Type string

	// Telemetry.
	FirstPlayTurn map[string]int
	Visits        map[Field]int
}

func NewPlayer(id int) *Player {
	p := &Player{
		ID:            id,
		Mat:           map[int]string{},
		Resources:     Cost{},
		FirstPlayTurn: map[string]int{},
		Visits:        map[Field]int{},
	}
	for _, r := range ResourceOrder {
		p.Resources[r] = 0
	}
	return p
}

func (p *Player) Clone() *Player {
	out := &Player{
		ID:            p.ID,
		Deck:          append([]string(nil), p.Deck...),
		Hand:          append([]string(nil), p.Hand...),
		Discard:       append([]string(nil), p.Discard...),
		Mat:           make(map[int]string, len(p.Mat)),
		Workers:       p.Workers,
		VP:            p.VP,
		Resources:     p.Resources.Clone(),
		Slot2Type:     p.Slot2Type,
		FirstPlayTurn: make(map[string]int, len(p.FirstPlayTurn)),
		Visits:        make(map[Field]int, len(p.Visits)),
	}
	for k, v := range p.Mat {
		out.Mat[k] = v
	}
	for k, v := range p.FirstPlayTurn {
		out.FirstPlayTurn[k] = v
	}
	for k, v := range p.Visits {
		out.Visits[k] = v
	}
	return out
}

// Mat capability set. These are the only ways the engine and the bots
// inspect a mat.

func (p *Player) FreeSlots() []int {
	var out []int
	for s := 1; s <= MatSlots; s++ {
		if _, ok := p.Mat[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func (p *Player) FreeSlotCount() int {
	return MatSlots - len(p.Mat)
}

func (p *Player) HasSlot(slot int) bool {
	_, ok := p.Mat[slot]
	return ok
}

// MatTypes returns the set of card categories currently on the mat.
func (p *Player) MatTypes(lib Library) map[string]bool {
	out := map[string]bool{}
	for _, cid := range p.Mat {
		if c, ok := lib[cid]; ok {
			out[c.Type] = true
		}
	}
	return out
}

// MatDomains returns the set of card domains currently on the mat.
func (p *Player) MatDomains(lib Library) map[string]bool {
	out := map[string]bool{}
	for _, cid := range p.Mat {
		if c, ok := lib[cid]; ok && c.Domain != "" && c.Domain != "None" {
			out[c.Domain] = true
		}
	}
	return out
}
