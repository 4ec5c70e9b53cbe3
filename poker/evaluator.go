package poker

import (
	"errors"
	"fmt"
	"slices"
)

// HandSize is the number of cards a showdown hand is built from (2 hole + 5 board).
const HandSize = 7

// ErrInvalidHandSize is returned when Evaluate is given anything but seven cards.
var ErrInvalidHandSize = errors.New("invalid hand size")

// Category enumerates the categories of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 10

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandEvalResult is the outcome of evaluating a hand. Category dominates;
// within a category the higher Score wins and equal scores tie.
type HandEvalResult struct {
	Category Category
	Score    int
}

// Compare returns 1 if r beats other, -1 if other beats r and 0 for a tie.
func (r HandEvalResult) Compare(other HandEvalResult) int {
	switch {
	case r.Category > other.Category:
		return 1
	case r.Category < other.Category:
		return -1
	case r.Score > other.Score:
		return 1
	case r.Score < other.Score:
		return -1
	}
	return 0
}

// Beats reports whether r is strictly stronger than other.
func (r HandEvalResult) Beats(other HandEvalResult) bool {
	return r.Compare(other) > 0
}

// String returns the category name.
func (r HandEvalResult) String() string {
	return r.Category.String()
}

// Describe returns a longer description such as "Full House, Tens full of Sixes".
func (r HandEvalResult) Describe() string {
	ranks := r.SignificantRanks()
	switch r.Category {
	case HighCard:
		return fmt.Sprintf("High Card, %s", ranks[0].Name())
	case OnePair:
		return fmt.Sprintf("Pair of %s", ranks[0].Plural())
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", ranks[0].Plural(), ranks[1].Plural())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", ranks[0].Plural())
	case Straight, Flush, StraightFlush:
		return fmt.Sprintf("%s, %s high", r.Category, ranks[0].Name())
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", ranks[0].Plural(), ranks[1].Plural())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", ranks[0].Plural())
	default:
		return r.Category.String()
	}
}

// SignificantRanks decodes the ranks that make up the score, most significant
// first. Straights and straight flushes carry only their top rank.
func (r HandEvalResult) SignificantRanks() []Rank {
	switch r.Category {
	case Straight, StraightFlush, RoyalFlush:
		return []Rank{Rank(r.Score)}
	}

	n := 5
	switch r.Category {
	case FourOfAKind, FullHouse, Flush:
		n = 2
	case ThreeOfAKind, TwoPair:
		n = 3
	case OnePair:
		n = 4
	}

	ranks := make([]Rank, n)
	for i := range n {
		ranks[i] = Rank(r.Score / scoreWeights[i] % NumRanks)
	}
	return ranks
}

// Plural returns the plural form of the rank name ("Sixes", "Aces").
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// Compare compares two results and returns 1 if a wins, -1 if b wins, 0 for tie
func Compare(a, b HandEvalResult) int {
	return a.Compare(b)
}

// Evaluate ranks a seven card hand. The input is not modified. Duplicate
// cards are the caller's responsibility and are not detected.
func Evaluate(cards []Card) (HandEvalResult, error) {
	if len(cards) != HandSize {
		return HandEvalResult{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(cards), HandSize)
	}

	o := newOccurrences(cards)
	for _, detect := range detectors {
		if result, ok := detect(o); ok {
			return result, nil
		}
	}

	// unreachable: detectHighCard always matches
	return HandEvalResult{}, nil
}

// Evaluate2 evaluates hole cards together with a board.
func Evaluate2(hole, board []Card) (HandEvalResult, error) {
	cards := make([]Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)
	return Evaluate(cards)
}

// MustEvaluate is like Evaluate but panics on error.
func MustEvaluate(cards []Card) HandEvalResult {
	result, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}
	return result
}

var scoreWeights = [5]int{13 * 13 * 13 * 13, 13 * 13 * 13, 13 * 13, 13, 1}

// score weights up to five ranks so that an earlier rank always outweighs
// every later one.
func score(ranks ...Rank) int {
	total := 0
	for i, r := range ranks {
		total += int(r) * scoreWeights[i]
	}
	return total
}

// occurrences holds the sorted cards and per-rank / per-suit counts shared by
// every detector.
type occurrences struct {
	cards []Card // rank descending, then suit descending
	ranks [NumRanks]int
	suits [NumSuits]int
}

func newOccurrences(cards []Card) *occurrences {
	o := &occurrences{cards: slices.Clone(cards)}
	slices.SortFunc(o.cards, func(a, b Card) int {
		return b.Compare(a)
	})
	for _, c := range o.cards {
		o.ranks[c.Rank]++
		o.suits[c.Suit]++
	}
	return o
}

// flushSuit returns the suit with at least five cards. Seven cards can hold
// at most one such suit.
func (o *occurrences) flushSuit() (Suit, bool) {
	for s := Spades; ; s-- {
		if o.suits[s] >= 5 {
			return s, true
		}
		if s == Diamonds {
			return 0, false
		}
	}
}

// suited returns the ranks of the given suit in descending order.
func (o *occurrences) suited(suit Suit) []Rank {
	var ranks []Rank
	for _, c := range o.cards {
		if c.Suit == suit {
			ranks = append(ranks, c.Rank)
		}
	}
	return ranks
}

// highestWithCount returns the highest rank occurring exactly n times,
// skipping the excluded ranks.
func (o *occurrences) highestWithCount(n int, exclude ...Rank) (Rank, bool) {
	for r := Ace; ; r-- {
		if o.ranks[r] == n && !slices.Contains(exclude, r) {
			return r, true
		}
		if r == Two {
			return 0, false
		}
	}
}

// kickers returns the n highest distinct ranks present, skipping excluded ranks.
func (o *occurrences) kickers(n int, exclude ...Rank) []Rank {
	out := make([]Rank, 0, n)
	for r := Ace; len(out) < n; r-- {
		if o.ranks[r] > 0 && !slices.Contains(exclude, r) {
			out = append(out, r)
		}
		if r == Two {
			break
		}
	}
	return out
}

type detector func(o *occurrences) (HandEvalResult, bool)

// detectors run strongest first and the first match wins. Weaker detectors
// assume the stronger categories were already ruled out.
var detectors = [...]detector{
	detectStraightFlush,
	detectFourOfAKind,
	detectFullHouse,
	detectFlush,
	detectStraight,
	detectThreeOfAKind,
	detectTwoPair,
	detectOnePair,
	detectHighCard,
}

func detectStraightFlush(o *occurrences) (HandEvalResult, bool) {
	suit, ok := o.flushSuit()
	if !ok {
		return HandEvalResult{}, false
	}

	ranks := o.suited(suit)
	top, run := ranks[0], 1
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1]-ranks[i] != 1 {
			top, run = ranks[i], 1
			continue
		}
		run++
		if run == 5 {
			if top == Ace {
				return HandEvalResult{Category: RoyalFlush, Score: int(top)}, true
			}
			return HandEvalResult{Category: StraightFlush, Score: int(top)}, true
		}
	}

	// Wheel: 5-4-3-2 suited plus the suited ace.
	if top == Five && run == 4 && ranks[0] == Ace {
		return HandEvalResult{Category: StraightFlush, Score: int(Five)}, true
	}
	return HandEvalResult{}, false
}

func detectFourOfAKind(o *occurrences) (HandEvalResult, bool) {
	quad, ok := o.highestWithCount(4)
	if !ok {
		return HandEvalResult{}, false
	}
	kicker := o.kickers(1, quad)
	return HandEvalResult{Category: FourOfAKind, Score: score(append([]Rank{quad}, kicker...)...)}, true
}

func detectFullHouse(o *occurrences) (HandEvalResult, bool) {
	trips, ok := o.highestWithCount(3)
	if !ok {
		return HandEvalResult{}, false
	}

	// A second set of trips plays as the pair, so the pair rank needs at least
	// two cards rather than exactly two.
	for r := Ace; ; r-- {
		if r != trips && o.ranks[r] >= 2 {
			return HandEvalResult{Category: FullHouse, Score: score(trips, r)}, true
		}
		if r == Two {
			return HandEvalResult{}, false
		}
	}
}

func detectFlush(o *occurrences) (HandEvalResult, bool) {
	suit, ok := o.flushSuit()
	if !ok {
		return HandEvalResult{}, false
	}
	// Only the top two flush cards are scored.
	ranks := o.suited(suit)
	return HandEvalResult{Category: Flush, Score: score(ranks[0], ranks[1])}, true
}

func detectStraight(o *occurrences) (HandEvalResult, bool) {
	top, run := Ace, 0
	for r := Ace; ; r-- {
		if o.ranks[r] == 0 {
			run = 0
		} else {
			if run == 0 {
				top = r
			}
			run++
			if run == 5 {
				return HandEvalResult{Category: Straight, Score: int(top)}, true
			}
		}
		if r == Two {
			break
		}
	}

	if run == 4 && top == Five && o.ranks[Ace] > 0 {
		return HandEvalResult{Category: Straight, Score: int(Five)}, true
	}
	return HandEvalResult{}, false
}

func detectThreeOfAKind(o *occurrences) (HandEvalResult, bool) {
	trips, ok := o.highestWithCount(3)
	if !ok {
		return HandEvalResult{}, false
	}
	ranks := append([]Rank{trips}, o.kickers(2, trips)...)
	return HandEvalResult{Category: ThreeOfAKind, Score: score(ranks...)}, true
}

func detectTwoPair(o *occurrences) (HandEvalResult, bool) {
	high, ok := o.highestWithCount(2)
	if !ok {
		return HandEvalResult{}, false
	}
	low, ok := o.highestWithCount(2, high)
	if !ok {
		return HandEvalResult{}, false
	}
	ranks := append([]Rank{high, low}, o.kickers(1, high, low)...)
	return HandEvalResult{Category: TwoPair, Score: score(ranks...)}, true
}

func detectOnePair(o *occurrences) (HandEvalResult, bool) {
	pair, ok := o.highestWithCount(2)
	if !ok {
		return HandEvalResult{}, false
	}
	ranks := append([]Rank{pair}, o.kickers(3, pair)...)
	return HandEvalResult{Category: OnePair, Score: score(ranks...)}, true
}

func detectHighCard(o *occurrences) (HandEvalResult, bool) {
	return HandEvalResult{Category: HighCard, Score: score(o.kickers(5)...)}, true
}
