package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Rank is a card rank. Two is the lowest (0) and Ace the highest (12).
type Rank uint8

// Rank constants (0-12 for 2-A)
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a deck.
const NumRanks = 13

// Suit is a card suit.
type Suit uint8

// Suit constants
const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
)

// NumSuits is the number of distinct suits in a deck.
const NumSuits = 4

const (
	rankChars = "23456789TJQKA"
	suitChars = "dchs"
)

// String returns the single character form of the rank ("A", "T", "7").
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

// Name returns the long form of the rank, used in hand descriptions.
func (r Rank) Name() string {
	return [...]string{
		"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
		"Nine", "Ten", "Jack", "Queen", "King", "Ace",
	}[r]
}

// String returns the single character form of the suit.
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// Symbol returns the unicode suit glyph.
func (s Suit) Symbol() string {
	return [...]string{"♦", "♣", "♥", "♠"}[s]
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Card is an immutable playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation (e.g., "As", "Kh")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Index returns a dense 0-51 index for the card, ordered by rank then suit.
func (c Card) Index() int {
	return int(c.Rank)*NumSuits + int(c.Suit)
}

// Compare orders cards by rank then suit. It returns -1, 0 or 1.
func (c Card) Compare(other Card) int {
	a, b := c.Index(), other.Index()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ParseCard parses a string like "As" into a Card. "10" is accepted for tens.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank := strings.IndexByte(rankChars, upper(s[0]))
	if rank < 0 {
		return Card{}, fmt.Errorf("%w: invalid rank %q", ErrInvalidCard, s[0])
	}
	suit := strings.IndexByte(suitChars, lower(s[1]))
	if suit < 0 {
		return Card{}, fmt.Errorf("%w: invalid suit %q", ErrInvalidCard, s[1])
	}

	return NewCard(Rank(rank), Suit(suit)), nil
}

// MustParseCard is like ParseCard but panics on error. Intended for tests and
// fixed tables.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a list of cards. Cards may be separated by spaces or
// commas ("As Kd", "As,Kd") or packed together ("AsKd").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	var cards []Card
	for _, field := range fields {
		field = strings.ReplaceAll(field, "10", "T")
		if len(field)%2 != 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCard, field)
		}
		for i := 0; i < len(field); i += 2 {
			card, err := ParseCard(field[i : i+2])
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
