package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-showdown/poker"
)

func TestPlayerCommit(t *testing.T) {
	t.Parallel()

	p := NewPlayer(0, "Alice", 100)
	assert.Equal(t, 40, p.Commit(40))
	assert.Equal(t, 60, p.Chips)
	assert.Equal(t, 40, p.Bet)
	assert.False(t, p.AllIn)

	assert.Equal(t, 60, p.Commit(500), "commit is capped at the stack")
	assert.Equal(t, 0, p.Chips)
	assert.Equal(t, 100, p.TotalBet)
	assert.True(t, p.AllIn)
	assert.False(t, p.CanAct())
	assert.True(t, p.ContestsRound())

	p.ClearBet()
	assert.False(t, p.ContestsRound(), "all-in from an earlier street sits out later rounds")
	assert.True(t, p.InHand())
}

func TestPlayerFoldAndReset(t *testing.T) {
	t.Parallel()

	p := NewPlayer(3, "", 50)
	p.Commit(50)
	p.Fold()
	assert.False(t, p.InHand())
	assert.False(t, p.ContestsRound())
	assert.Equal(t, "seat 3", p.String())

	p.Credit(120)
	p.ResetForHand()
	assert.Equal(t, 120, p.Chips)
	assert.True(t, p.InHand())
	assert.False(t, p.AllIn)
	assert.Zero(t, p.TotalBet)
	assert.Nil(t, p.Result)
}

func TestPlayerEvaluate(t *testing.T) {
	t.Parallel()

	p := NewPlayer(0, "Alice", 100)
	p.HoleCards = poker.MustParseCards("Ah Ad")
	require.NoError(t, p.Evaluate(poker.MustParseCards("Ac 7d 2s 9h Kc")))
	require.NotNil(t, p.Result)
	assert.Equal(t, poker.ThreeOfAKind, p.Result.Category)

	err := p.Evaluate(poker.MustParseCards("Ac 7d"))
	assert.ErrorIs(t, err, poker.ErrInvalidHandSize)
}
