package bots

import (
	"time"

	"scarecrovv/game"
)

// MCTS samples each root action with short greedy rollouts and picks
// the action with the highest mean return. It is a flat Monte-Carlo
// searcher, not a tree builder: the branching factor is small and the
// horizon short, so averaged playouts are enough signal.
type MCTS struct {
	rollouts   int
	horizon    int
	actionsCap int           // 0 = unlimited node expansions
	timeBudget time.Duration // 0 = no wall-clock limit
	rollout    Policy
}

type Option func(*MCTS)

// WithRollouts sets the target sample count per root action.
func WithRollouts(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.rollouts = n
		}
	}
}

// WithHorizon sets the rollout depth in plies, root action included.
func WithHorizon(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.horizon = n
		}
	}
}

// WithActionsCap bounds the total node expansions across the search.
func WithActionsCap(n int) Option {
	return func(m *MCTS) { m.actionsCap = n }
}

// WithTimeBudgetMS bounds the search wall-clock time in milliseconds.
func WithTimeBudgetMS(ms int) Option {
	return func(m *MCTS) {
		if ms > 0 {
			m.timeBudget = time.Duration(ms) * time.Millisecond
		}
	}
}

func NewMCTS(opts ...Option) *MCTS {
	m := &MCTS{
		rollouts: 8,
		horizon:  3,
		rollout:  NewGreedy(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

const terminalReward = 1000.0

type budget struct {
	start    time.Time
	steps    int
	stepsCap int
	limit    time.Duration
}

func (b *budget) ok() bool {
	if b.stepsCap > 0 && b.steps >= b.stepsCap {
		return false
	}
	if b.limit > 0 && time.Since(b.start) >= b.limit {
		return false
	}
	return true
}

func (m *MCTS) ChooseAction(g *game.GameState, pid int) (act game.Action, explored bool) {
	acts := g.LegalActions(pid)
	if len(acts) == 0 {
		return game.Pass, false
	}

	var nonPass []game.Action
	for _, a := range acts {
		if a.Kind != game.ActionPass {
			nonPass = append(nonPass, a)
		}
	}
	// One real choice: skip the search entirely.
	if len(nonPass) == 1 {
		return nonPass[0], false
	}

	// A broken rollout must not take the game down with it.
	defer func() {
		if r := recover(); r != nil {
			if len(nonPass) > 0 {
				act = nonPass[g.RNG().Intn(len(nonPass))]
			} else {
				act = acts[g.RNG().Intn(len(acts))]
			}
			explored = false
		}
	}()

	sums := make(map[game.Action]float64, len(acts))
	counts := make(map[game.Action]int, len(acts))
	b := &budget{start: time.Now(), stepsCap: m.actionsCap, limit: m.timeBudget}

	target := m.rollouts * len(acts)
	sampled := 0
	for idx := 0; b.ok() && sampled < target; idx++ {
		a := acts[idx%len(acts)]
		sums[a] += m.sample(g, pid, a, b)
		counts[a]++
		sampled++
	}

	// Tiny budgets can starve actions entirely; give each at least one
	// sample while any budget remains.
	for _, a := range acts {
		if counts[a] == 0 && b.ok() {
			sums[a] += m.sample(g, pid, a, b)
			counts[a]++
		}
	}

	best := acts[0]
	bestMean, bestSampled := mean(sums, counts, acts[0])
	for _, a := range acts[1:] {
		mn, ok := mean(sums, counts, a)
		if !ok {
			continue
		}
		if !bestSampled || mn > bestMean ||
			(mn == bestMean && best.Kind == game.ActionPass && a.Kind != game.ActionPass) {
			best, bestMean, bestSampled = a, mn, true
		}
	}
	return best, false
}

func mean(sums map[game.Action]float64, counts map[game.Action]int, a game.Action) (float64, bool) {
	n := counts[a]
	if n == 0 {
		return 0, false
	}
	return sums[a] / float64(n), true
}

// sample clones the state, applies the root action and plays out the
// remaining horizon with the rollout policy, alternating seats.
func (m *MCTS) sample(g *game.GameState, pid int, a game.Action, b *budget) float64 {
	s := g.Clone()
	s.Current = pid
	s.Apply(pid, a)
	b.steps++

	if v, done := terminalValue(s, pid); done {
		return v
	}
	rotate(s)

	for depth := 1; depth < m.horizon; depth++ {
		cur := s.Current
		act, _ := m.rollout.ChooseAction(s, cur)
		s.Apply(cur, act)
		b.steps++
		if v, done := terminalValue(s, pid); done {
			return v
		}
		rotate(s)
	}
	return staticEval(s, pid)
}

// rotate advances the clone to the next seat in this round's order.
func rotate(s *game.GameState) {
	n := len(s.Players)
	if n == 0 {
		return
	}
	if len(s.TurnOrder) == n {
		idx := 0
		for i, id := range s.TurnOrder {
			if id == s.Current {
				idx = i
				break
			}
		}
		s.Current = s.TurnOrder[(idx+1)%n]
		return
	}
	s.Current = (s.Current + 1) % n
}

// terminalValue reports a win/loss reward if any seat has crossed the
// victory threshold. Winning dominates every heuristic signal.
func terminalValue(s *game.GameState, rootPid int) (float64, bool) {
	won := false
	rootWon := false
	for pid, p := range s.Players {
		if p.VP >= s.Cfg.VictoryVP {
			won = true
			if pid == rootPid {
				rootWon = true
			}
		}
	}
	if !won {
		return 0, false
	}
	if rootWon {
		return terminalReward, true
	}
	return -terminalReward, true
}

// staticEval scores a non-terminal state for the root seat: VP lead
// over the best opponent plus a small resource tiebreaker.
func staticEval(s *game.GameState, rootPid int) float64 {
	if len(s.Players) == 1 {
		return float64(s.Players[0].VP)
	}
	resSum := func(p *game.Player) int {
		total := 0
		for _, r := range game.ResourceOrder {
			total += p.Resources[r]
		}
		return total
	}
	oppVP, oppRes := 0, 0
	first := true
	for pid, p := range s.Players {
		if pid == rootPid {
			continue
		}
		if first || p.VP > oppVP {
			oppVP = p.VP
		}
		if r := resSum(p); first || r > oppRes {
			oppRes = r
		}
		first = false
	}
	root := s.Players[rootPid]
	lead := float64(root.VP - oppVP)
	rdiff := float64(resSum(root) - oppRes)
	return lead + 0.01*rdiff
}
