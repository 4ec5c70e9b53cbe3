package game

import (
	"fmt"
	"maps"
	"slices"
)

// Pot is one pot in a hand's pot chain: the main pot or a side pot.
//
// Members are the players who put chips into the pot, in the order they first
// did so. Folded members stay listed; their chips are dead money that the
// remaining contenders compete for.
type Pot struct {
	Name    string
	Total   int
	Cap     int // Total hand commitment at which this pot is capped, 0 while open
	Members []*Player

	currentBet   int
	betIncrement int
	floor        int  // Cap of the preceding pot
	capped       bool // An all-in player matched the ceiling; later chips go to a new pot

	round     map[*Player]int // Chips per player this betting round
	committed map[*Player]int // Chips per player across the hand
}

func newPot(name string, floor int) *Pot {
	return &Pot{
		Name:      name,
		floor:     floor,
		round:     make(map[*Player]int),
		committed: make(map[*Player]int),
	}
}

// Contains reports whether p put chips into this pot.
func (pot *Pot) Contains(p *Player) bool {
	return slices.Contains(pot.Members, p)
}

// Committed returns how many chips p has in this pot.
func (pot *Pot) Committed(p *Player) int {
	return pot.committed[p]
}

// Contenders returns the members still in the hand.
func (pot *Pot) Contenders() []*Player {
	var out []*Player
	for _, p := range pot.Members {
		if p.InHand() {
			out = append(out, p)
		}
	}
	return out
}

// CurrentBet returns the ceiling of the current betting round.
func (pot *Pot) CurrentBet() int {
	return pot.currentBet
}

// BetIncrement returns the minimum raise size.
func (pot *Pot) BetIncrement() int {
	return pot.betIncrement
}

// IsOpen reports whether the pot still accepts chips.
func (pot *Pot) IsOpen() bool {
	return !pot.capped
}

func (pot *Pot) String() string {
	return fmt.Sprintf("%s: %d", pot.Name, pot.Total)
}

func (pot *Pot) addPlayer(p *Player) {
	if !pot.Contains(p) {
		pot.Members = append(pot.Members, p)
	}
}

func (pot *Pot) addCall(p *Player, amount int) {
	pot.Total += amount
	pot.round[p] += amount
	pot.committed[p] += amount
	pot.addPlayer(p)
}

// addRaise records a raise. The ceiling becomes the raiser's round total; the
// increment only grows, so an all-in for less than a full raise leaves it alone.
func (pot *Pot) addRaise(p *Player, amount int) {
	pot.addCall(p, amount)

	raiserTotal := pot.round[p]
	if raiserTotal <= pot.currentBet {
		return
	}
	increment := raiserTotal - pot.currentBet
	pot.currentBet = raiserTotal
	if increment >= pot.betIncrement {
		pot.betIncrement = increment
	}
}

// hasContenderAbove reports whether any player still in the hand put more
// than level into this pot during the current round.
func (pot *Pot) hasContenderAbove(level int) bool {
	for _, p := range pot.Members {
		if pot.round[p] > level && p.InHand() {
			return true
		}
	}
	return false
}

// divide caps this pot at the division's chip level and moves every chip
// committed above that level this round into a new side pot. Each player's
// excess moves with them, so folded chips stay with the slice they were
// committed in.
func (pot *Pot) divide(div PotDivision, name string) *Pot {
	level := div.Chips

	side := newPot(name, 0)
	for _, p := range pot.Members {
		over := pot.round[p] - level
		if over <= 0 {
			continue
		}
		pot.round[p] = level
		pot.committed[p] -= over
		pot.Total -= over
		side.addCall(p, over)
	}

	if div.Limit > 0 {
		side.currentBet = div.Limit
	} else {
		side.currentBet = pot.currentBet - level
	}
	side.betIncrement = pot.betIncrement
	pot.currentBet = level

	pot.capAt()
	side.floor = pot.Cap
	return side
}

// capAt closes the pot at the level its remaining contenders reached. Folded
// members may have put in more; their excess is dead money and does not raise
// the cap.
func (pot *Pot) capAt() {
	level, dead := 0, 0
	for p, c := range pot.committed {
		if p.InHand() {
			level = max(level, c)
		} else {
			dead = max(dead, c)
		}
	}
	if level == 0 {
		level = dead
	}
	pot.Cap = pot.floor + level
	pot.capped = true
}

// resetRound clears round state once betting on a street is over. Totals
// persist for the life of the hand.
func (pot *Pot) resetRound(bigBlind int) {
	pot.currentBet = 0
	pot.betIncrement = bigBlind
	clear(pot.round)
}

// snapshot returns a copy that later betting cannot change.
func (pot *Pot) snapshot() Pot {
	cp := *pot
	cp.Members = slices.Clone(pot.Members)
	cp.round = maps.Clone(pot.round)
	cp.committed = maps.Clone(pot.committed)
	return cp
}
