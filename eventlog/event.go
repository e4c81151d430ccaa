package eventlog

// Event kinds emitted by the rules engine. Downstream telemetry keys on
// these strings, so they are part of the external record contract.
const (
	KindGameStart    = "game_start"
	KindTurnOrderSet = "turn_order_set"
	KindStartOfRound = "start_of_round"
	KindEndOfRound   = "end_of_round"
	KindReshuffle    = "reshuffle"
	KindPlayRes      = "play_res"
	KindPlayVP       = "play_vp"
	KindPlayCard     = "play_card"
	KindPlayGlobal   = "play_global"
	KindSlot2Chosen  = "slot2_chosen"
	KindBuy          = "buy"
	KindBuyVP        = "buy_vp"
	KindWorker       = "worker"
	KindCompost      = "compost"
	KindCompostGain  = "on_compost_gain"
	KindEffect       = "effect"
	KindGlobal       = "global"
	KindGlobalRider  = "global_rider"
	KindDecreeVP     = "decree_vp"
	KindInitClaimed  = "initiative_claimed"
	KindInitApplied  = "initiative_applied"
	KindInitDiscard  = "initiative_discard"
	KindPass         = "pass"
	KindExplore      = "explore"
	KindWin          = "win"
	KindGameEndVP    = "game_end_vp"
)

// NoPlayer marks events with no acting seat (round transitions etc).
const NoPlayer = -1

// Event is one record in a game's event stream. A is the event kind, T
// the round counter and P the acting player (NoPlayer for system
// events). The remaining fields are kind-specific; zero values are
// omitted from the JSON encoding so each record carries only the
// fields its kind uses, like the reference log format.
type Event struct {
	A      string         `json:"a"`
	T      int            `json:"t"`
	P      int            `json:"p"`
	Cid    string         `json:"cid,omitempty"`
	Name   string         `json:"name,omitempty"`
	Card   string         `json:"card,omitempty"`
	Res    string         `json:"res,omitempty"`
	Field  string         `json:"field,omitempty"`
	Reason string         `json:"reason,omitempty"`
	Key    string         `json:"k,omitempty"`
	Effect string         `json:"e,omitempty"`
	Kept   string         `json:"kept,omitempty"`
	Dumped string         `json:"dumped,omitempty"`
	VP     int            `json:"vp,omitempty"`
	Bonus  int            `json:"bonus,omitempty"`
	Total  int            `json:"total,omitempty"`
	N      int            `json:"n,omitempty"`
	Slot   int            `json:"slot,omitempty"`
	Cost   int            `json:"cost,omitempty"`
	Delta  int            `json:"delta,omitempty"`
	Occ    int            `json:"occ,omitempty"`
	Cap    int            `json:"cap,omitempty"`
	Start  int            `json:"start,omitempty"`
	Prev   int            `json:"prev,omitempty"`
	Next   int            `json:"next,omitempty"`
	Winner int            `json:"winner,omitempty"`
	Seed   uint64         `json:"seed,omitempty"`
	ToMat  bool           `json:"to_mat,omitempty"`
	Paid   map[string]int `json:"paid,omitempty"`
	Grants map[string]int `json:"grants,omitempty"`
	Order  []int          `json:"order,omitempty"`
	VPs    []int          `json:"vps,omitempty"`
}
