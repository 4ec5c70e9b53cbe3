package game

import (
	"errors"
	"fmt"
)

var (
	// ErrChipConservation is returned when pot totals stop matching what
	// players committed.
	ErrChipConservation = errors.New("chip conservation violated")

	// ErrNoWinners is returned when paying a pot that holds chips but has no
	// eligible winner.
	ErrNoWinners = errors.New("pot has no winners")

	// ErrUnevaluatedHand is returned when a showdown player has no hand result.
	ErrUnevaluatedHand = errors.New("player hand not evaluated")
)

// PotDivision describes one side pot split at the end of a betting round.
type PotDivision struct {
	Chips    int       // Round chips each remaining contributor leaves in the pot being divided
	Limit    int       // Ceiling of the side pot created by the split
	Excluded []*Player // All-in players capped at Chips, shut out of the side pot
}

// calculatePotDivisions groups short all-in players, sorted by round bet
// ascending, into one division per distinct amount. Chip amounts are
// incremental: with all-ins of 300 and 500 against a 1000 bet the divisions
// are 300, then 200, and the last side pot carries the remaining 500.
func calculatePotDivisions(short []*Player, bets map[*Player]int, fullBet int) []PotDivision {
	var divisions []PotDivision
	bet, numChips := -1, 0

	for _, p := range short {
		playerChips := bets[p]
		switch {
		case playerChips > bet:
			remaining := playerChips - numChips
			if n := len(divisions); n > 0 {
				divisions[n-1].Limit = remaining
			}
			divisions = append(divisions, PotDivision{Chips: remaining, Excluded: []*Player{p}})
			numChips += remaining
			bet = playerChips
		case playerChips == bet:
			n := len(divisions) - 1
			divisions[n].Excluded = append(divisions[n].Excluded, p)
		}
	}

	if n := len(divisions); n > 0 {
		divisions[n-1].Limit = fullBet - numChips
	}
	return divisions
}

// splitPot divides total evenly; leftover chips go one at a time to the
// first winners.
func splitPot(total, winners int) []int {
	if winners == 0 {
		return nil
	}
	shares := make([]int, winners)
	each, remainder := total/winners, total%winners
	for i := range shares {
		shares[i] = each
		if i < remainder {
			shares[i]++
		}
	}
	return shares
}

// CheckConservation verifies that the pots hold exactly the chips the
// players committed this hand. Use it as a debug assertion; PotManager does
// not call it.
func CheckConservation(pots []Pot, players []*Player) error {
	potTotal, committed := 0, 0
	for _, pot := range pots {
		potTotal += pot.Total
	}
	for _, p := range players {
		committed += p.TotalBet
	}
	if potTotal != committed {
		return fmt.Errorf("%w: pots hold %d, players committed %d", ErrChipConservation, potTotal, committed)
	}
	return nil
}
