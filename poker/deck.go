package poker

import (
	"errors"
	"fmt"
	"math/rand"
)

// BoardSize is the number of community cards on a complete board.
const BoardSize = 5

// ErrDeckExhausted is returned when a deal needs more cards than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a dealer's deck for one table. Shuffles draw from the injected RNG
// so a seeded table deals the same hands every run.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck returns a shuffled deck. A nil rng falls back to the global source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for i := range d.cards {
		d.cards[i] = NewCard(Rank(i%NumRanks), Suit(i/NumRanks))
	}
	d.Reset()
	return d
}

// Reset gathers every card back and reshuffles.
func (d *Deck) Reset() {
	d.next = 0
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
	} else {
		rand.Shuffle(len(d.cards), swap)
	}
}

// Remaining returns how many cards are left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Deal deals n cards, or returns nil without dealing when fewer than n
// remain. The returned slice does not alias the deck.
func (d *Deck) Deal(n int) []Card {
	if n > d.Remaining() {
		return nil
	}
	cards := make([]Card, n)
	d.next += copy(cards, d.cards[d.next:d.next+n])
	return cards
}

// DealOne deals a single card. ok is false once the deck is empty.
func (d *Deck) DealOne() (card Card, ok bool) {
	if d.Remaining() == 0 {
		return Card{}, false
	}
	card = d.cards[d.next]
	d.next++
	return card, true
}

// RunOut deals the board up to size cards street by street (flop, turn,
// river), burning one card before each street. size must be 0, 3, 4 or 5.
func (d *Deck) RunOut(board []Card, size int) ([]Card, error) {
	for len(board) < size {
		street := 1
		if len(board) == 0 {
			street = 3
		}
		if street+1 > d.Remaining() {
			return board, fmt.Errorf("%w: board has %d cards, %d left", ErrDeckExhausted, len(board), d.Remaining())
		}
		d.next++ // burn
		board = append(board, d.Deal(street)...)
	}
	return board, nil
}
