package game

import (
	"fmt"
	"strings"
)

// PotWinner pairs a pot with the players who won it.
type PotWinner struct {
	Pot     Pot
	Winners []*Player
	Shares  []int // Chips paid to each winner, set by PayWinners
}

// PayWinners credits the pot to its winners. Chips are split evenly and any
// remainder goes one chip at a time to the winners in order.
func (w *PotWinner) PayWinners() error {
	if w.Pot.Total == 0 {
		return nil
	}
	if len(w.Winners) == 0 {
		return fmt.Errorf("%w: %s holds %d chips", ErrNoWinners, w.Pot.Name, w.Pot.Total)
	}

	w.Shares = splitPot(w.Pot.Total, len(w.Winners))
	for i, p := range w.Winners {
		p.Credit(w.Shares[i])
	}
	return nil
}

// OddChips returns how many chips could not be split evenly.
func (w *PotWinner) OddChips() int {
	if len(w.Winners) == 0 {
		return 0
	}
	return w.Pot.Total % len(w.Winners)
}

func (w *PotWinner) String() string {
	switch len(w.Winners) {
	case 0:
		return fmt.Sprintf("%s: no winners", w.Pot.Name)
	case 1:
		p := w.Winners[0]
		return fmt.Sprintf("%s: %s won %d chips with %s", w.Pot.Name, p, w.Pot.Total, describe(p))
	}

	names := make([]string, len(w.Winners))
	for i, p := range w.Winners {
		names[i] = p.String()
	}
	return fmt.Sprintf("%s: split %d ways between %s with %s",
		w.Pot.Name, len(w.Winners), strings.Join(names, ", "), describe(w.Winners[0]))
}

func describe(p *Player) string {
	if p.Result == nil {
		return "an unshown hand"
	}
	return p.Result.Describe()
}
