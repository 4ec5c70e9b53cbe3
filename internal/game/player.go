package game

import (
	"fmt"

	"github.com/lox/holdem-showdown/poker"
)

// Player is a seat at the table as seen by the pot engine. The table loop owns
// the stack and commitment fields; PotManager only reads them, except for
// Credit at payout.
type Player struct {
	Seat      int
	Name      string
	Chips     int
	HoleCards []poker.Card
	Folded    bool
	AllIn     bool
	Bet       int // Chips committed in the current round
	TotalBet  int // Chips committed across the hand
	Result    *poker.HandEvalResult
}

// NewPlayer creates a player with a stack.
func NewPlayer(seat int, name string, chips int) *Player {
	return &Player{Seat: seat, Name: name, Chips: chips}
}

// Commit moves up to amount chips from the stack into the current round and
// returns what was actually committed. Emptying the stack marks the player
// all-in.
func (p *Player) Commit(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}
	if amount < 0 {
		amount = 0
	}
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
	return amount
}

// PostBlind commits a forced bet. A short stack posts what it has.
func (p *Player) PostBlind(amount int) int {
	return p.Commit(amount)
}

// Fold gives up the hand. Chips already committed stay in the pots.
func (p *Player) Fold() {
	p.Folded = true
}

// ClearBet starts a new betting round for this player.
func (p *Player) ClearBet() {
	p.Bet = 0
}

// Credit adds winnings to the stack.
func (p *Player) Credit(amount int) {
	p.Chips += amount
}

// InHand reports whether the player can still win chips.
func (p *Player) InHand() bool {
	return !p.Folded
}

// CanAct reports whether the player can still make decisions.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// ContestsRound reports whether the player takes part in the current betting
// round: in the hand and not all-in from an earlier street.
func (p *Player) ContestsRound() bool {
	return !p.Folded && (!p.AllIn || p.Bet > 0)
}

// Evaluate ranks the player's hole cards against the board and stores the
// result for showdown.
func (p *Player) Evaluate(board []poker.Card) error {
	result, err := poker.Evaluate2(p.HoleCards, board)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", p.Name, err)
	}
	p.Result = &result
	return nil
}

// ResetForHand clears per-hand state, keeping the stack.
func (p *Player) ResetForHand() {
	p.HoleCards = nil
	p.Folded = false
	p.AllIn = false
	p.Bet = 0
	p.TotalBet = 0
	p.Result = nil
}

func (p *Player) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("seat %d", p.Seat)
}
