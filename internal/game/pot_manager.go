package game

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// PotOption configures a PotManager during creation.
type PotOption func(*PotManager)

// WithLogger sets the logger used to trace side pot creation.
func WithLogger(logger *log.Logger) PotOption {
	return func(pm *PotManager) {
		pm.logger = logger
	}
}

// PotManager tracks every pot of a single hand. It is owned by one table
// loop and is not safe for concurrent use.
type PotManager struct {
	pots       []*Pot
	smallBlind int
	bigBlind   int
	logger     *log.Logger
}

// NewPotManager creates a pot manager holding an empty main pot.
func NewPotManager(smallBlind, bigBlind int, opts ...PotOption) *PotManager {
	pm := &PotManager{
		pots:       []*Pot{newPot("Main Pot", 0)},
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(pm)
	}
	return pm
}

// current returns the pot that live players are betting into.
func (pm *PotManager) current() *Pot {
	return pm.pots[len(pm.pots)-1]
}

// bettingPot returns the pot new chips should go to, opening a side pot when
// the current one was capped by an all-in on an earlier street.
func (pm *PotManager) bettingPot() *Pot {
	pot := pm.current()
	if pot.IsOpen() {
		return pot
	}
	side := newPot(pm.sidePotName(), pot.Cap)
	side.betIncrement = pm.bigBlind
	pm.pots = append(pm.pots, side)
	pm.logger.Debug("Opened side pot", "pot", side.Name, "floor", pot.Cap)
	return side
}

func (pm *PotManager) sidePotName() string {
	return fmt.Sprintf("Side Pot %d", len(pm.pots))
}

// PostSmallBlind records the small blind. A short post still leaves the
// small blind as the bet to match.
func (pm *PotManager) PostSmallBlind(p *Player, amount int) {
	pot := pm.bettingPot()
	pot.addRaise(p, amount)
	if amount < pm.smallBlind {
		pot.currentBet = pm.smallBlind
		pot.betIncrement = pm.smallBlind
	}
}

// PostBigBlind records the big blind. The increment becomes the big blind and
// a short post still leaves the big blind as the bet to match.
func (pm *PotManager) PostBigBlind(p *Player, amount int) {
	pot := pm.bettingPot()
	pot.addRaise(p, amount)
	pot.betIncrement = pm.bigBlind
	if amount < pm.bigBlind {
		pot.currentBet = pm.bigBlind
	}
}

// AddCall records chips that match the current bet without raising it.
func (pm *PotManager) AddCall(p *Player, amount int) {
	pm.bettingPot().addCall(p, amount)
}

// AddRaise records a raise of amount chips by p.
func (pm *PotManager) AddRaise(p *Player, amount int) {
	pm.bettingPot().addRaise(p, amount)
}

// CloseRoundBetting ends a betting round. Players in the round who are all-in
// below the current bet each cap the pot at their level, and the chips above
// it move into side pots that they cannot win. Round bets then reset on every
// pot.
func (pm *PotManager) CloseRoundBetting() {
	pot := pm.current()
	ceiling := pot.currentBet

	var short []*Player
	for _, p := range pot.Members {
		if bet, ok := pot.round[p]; ok && bet < ceiling && p.ContestsRound() {
			short = append(short, p)
		}
	}
	slices.SortStableFunc(short, func(a, b *Player) int {
		return pot.round[a] - pot.round[b]
	})

	for _, div := range calculatePotDivisions(short, pot.round, ceiling) {
		if !pot.hasContenderAbove(div.Chips) {
			pm.logger.Debug("No contender above all-in, leaving chips in pot",
				"pot", pot.Name, "level", div.Chips)
			break
		}
		side := pot.divide(div, pm.sidePotName())
		pm.pots = append(pm.pots, side)
		pm.logger.Debug("Created side pot",
			"pot", side.Name, "total", side.Total, "capped", pot.Name, "cap", pot.Cap,
			"excluded", len(div.Excluded))
		pot = side
	}

	if pot.IsOpen() && pm.allInAtCeiling(pot) {
		pot.capAt()
		pm.logger.Debug("Capped pot at all-in", "pot", pot.Name, "cap", pot.Cap)
	}

	for _, p := range pm.pots {
		p.resetRound(pm.bigBlind)
	}
}

// allInAtCeiling reports whether a player who bet this round is all-in for
// the full amount, so later streets must not add to this pot.
func (pm *PotManager) allInAtCeiling(pot *Pot) bool {
	for p, bet := range pot.round {
		if bet > 0 && p.AllIn && p.InHand() {
			return true
		}
	}
	return false
}

// Total returns the chips across all pots.
func (pm *PotManager) Total() int {
	total := 0
	for _, pot := range pm.pots {
		total += pot.Total
	}
	return total
}

// LastBet returns the bet to match in the current round.
func (pm *PotManager) LastBet() int {
	pot := pm.current()
	if !pot.IsOpen() {
		return 0
	}
	return pot.currentBet
}

// BetIncrement returns the minimum raise size in the current round.
func (pm *PotManager) BetIncrement() int {
	pot := pm.current()
	if !pot.IsOpen() {
		return pm.bigBlind
	}
	return pot.betIncrement
}

// MinimumRaiseTo returns the smallest legal total a raiser can make it.
func (pm *PotManager) MinimumRaiseTo() int {
	return pm.LastBet() + pm.BetIncrement()
}

// Pots returns a snapshot of the pot chain, main pot first.
func (pm *PotManager) Pots() []Pot {
	out := make([]Pot, len(pm.pots))
	for i, pot := range pm.pots {
		out[i] = pot.snapshot()
	}
	return out
}

// CalculateWinners finds the winners of every pot among the given players,
// who must all hold an evaluated hand. Tied players share a pot and keep the
// order they were passed in.
func (pm *PotManager) CalculateWinners(active []*Player) ([]PotWinner, error) {
	for _, p := range active {
		if p.Result == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnevaluatedHand, p)
		}
	}

	winners := make([]PotWinner, 0, len(pm.pots))
	for _, pot := range pm.pots {
		var contenders []*Player
		for _, p := range active {
			if pot.Contains(p) {
				contenders = append(contenders, p)
			}
		}
		slices.SortStableFunc(contenders, func(a, b *Player) int {
			return b.Result.Compare(*a.Result)
		})

		w := PotWinner{Pot: pot.snapshot()}
		for _, p := range contenders {
			if p.Result.Compare(*contenders[0].Result) != 0 {
				break
			}
			w.Winners = append(w.Winners, p)
		}
		winners = append(winners, w)
	}
	return winners, nil
}

func (pm *PotManager) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Pot: %d", pm.Total())
	if len(pm.pots) > 1 {
		for _, pot := range pm.pots {
			fmt.Fprintf(&b, "\n%s", pot)
		}
	}
	return b.String()
}
