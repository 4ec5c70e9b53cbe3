package poker

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank)
	}
	if aceSpades.Suit != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit)
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	twoDiamonds := NewCard(Two, Diamonds)
	if twoDiamonds.String() != "2d" {
		t.Errorf("Expected '2d', got %s", twoDiamonds.String())
	}
}

func TestCardOrdering(t *testing.T) {
	t.Parallel()

	if NewCard(Ace, Diamonds).Compare(NewCard(King, Spades)) != 1 {
		t.Error("rank should dominate suit")
	}
	if NewCard(Ten, Spades).Compare(NewCard(Ten, Hearts)) != 1 {
		t.Error("suit should break rank ties")
	}
	if NewCard(Ten, Spades).Compare(NewCard(Ten, Spades)) != 0 {
		t.Error("identical cards should compare equal")
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{"ace of spades", "As", NewCard(Ace, Spades), false},
		{"two of hearts", "2h", NewCard(Two, Hearts), false},
		{"king of diamonds", "Kd", NewCard(King, Diamonds), false},
		{"ten with T", "Tc", NewCard(Ten, Clubs), false},
		{"ten with 10", "10c", NewCard(Ten, Clubs), false},
		{"lowercase rank", "qs", NewCard(Queen, Spades), false},
		{"uppercase suit", "9S", NewCard(Nine, Spades), false},
		{"invalid rank", "Xs", Card{}, true},
		{"invalid suit", "Ax", Card{}, true},
		{"too long", "Ass", Card{}, true},
		{"empty", "", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Errorf("ParseCard(%q) error = %v, want ErrInvalidCard", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if card != tt.wantCard {
				t.Errorf("ParseCard(%q) = %s, want %s", tt.input, card, tt.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"As Kd Qh", "AsKdQh", "As,Kd,Qh", " As  KdQh "} {
		cards, err := ParseCards(input)
		if err != nil {
			t.Fatalf("ParseCards(%q): %v", input, err)
		}
		if got := FormatCards(cards); got != "As Kd Qh" {
			t.Errorf("ParseCards(%q) = %q", input, got)
		}
	}

	if _, err := ParseCards("AsK"); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("odd length input should fail, got %v", err)
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[int]bool)
	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			card := NewCard(rank, suit)
			parsed, err := ParseCard(card.String())
			if err != nil {
				t.Fatalf("round trip of %s failed: %v", card, err)
			}
			if parsed != card {
				t.Errorf("round trip of %s gave %s", card, parsed)
			}
			if seen[card.Index()] {
				t.Errorf("duplicate index %d for %s", card.Index(), card)
			}
			seen[card.Index()] = true
		}
	}
	if len(seen) != 52 {
		t.Errorf("Expected 52 unique cards, got %d", len(seen))
	}
}

func TestDeck(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	deck := NewDeck(rng)

	cards1 := deck.Deal(2)
	if len(cards1) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards1))
	}

	cards2 := deck.Deal(3)
	if len(cards2) != 3 {
		t.Errorf("Expected 3 cards, got %d", len(cards2))
	}

	for _, c1 := range cards1 {
		for _, c2 := range cards2 {
			if c1 == c2 {
				t.Error("Dealt same card twice")
			}
		}
	}

	remaining := deck.Deal(47)
	if len(remaining) != 47 {
		t.Errorf("Expected 47 remaining cards, got %d", len(remaining))
	}

	if extra := deck.Deal(1); extra != nil {
		t.Error("Should not be able to deal from empty deck")
	}
	if _, ok := deck.DealOne(); ok {
		t.Error("DealOne should report an empty deck")
	}

	deck.Reset()
	if deck.Remaining() != 52 {
		t.Errorf("Expected 52 cards after reset, got %d", deck.Remaining())
	}
}

func TestDeckRunOut(t *testing.T) {
	t.Parallel()
	deck := NewDeck(rand.New(rand.NewSource(9)))
	deck.Deal(4)

	flop, err := deck.RunOut(nil, 3)
	if err != nil || len(flop) != 3 {
		t.Fatalf("flop: got %d cards, err %v", len(flop), err)
	}
	if deck.Remaining() != 44 {
		t.Errorf("Expected a burn before the flop, %d cards left", deck.Remaining())
	}

	board, err := deck.RunOut(flop, BoardSize)
	if err != nil || len(board) != BoardSize {
		t.Fatalf("river: got %d cards, err %v", len(board), err)
	}
	if deck.Remaining() != 40 {
		t.Errorf("Expected burns before turn and river, %d cards left", deck.Remaining())
	}

	seen := make(map[Card]bool)
	for _, c := range board {
		if seen[c] {
			t.Errorf("board dealt %s twice", c)
		}
		seen[c] = true
	}

	if same, _ := deck.RunOut(board, BoardSize); len(same) != BoardSize || deck.Remaining() != 40 {
		t.Error("a complete board should deal nothing")
	}

	deck.Deal(39)
	if _, err := deck.RunOut(nil, 3); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("Expected ErrDeckExhausted, got %v", err)
	}
}

func TestDeckDeterministic(t *testing.T) {
	t.Parallel()
	a := NewDeck(rand.New(rand.NewSource(7))).Deal(52)
	b := NewDeck(rand.New(rand.NewSource(7))).Deal(52)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("decks with the same seed diverged at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
