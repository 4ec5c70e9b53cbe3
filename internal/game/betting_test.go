package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePotDivisions(t *testing.T) {
	t.Parallel()

	players := newPlayers(0, 0, 0, 0)
	a, b, c, d := players[0], players[1], players[2], players[3]

	tests := []struct {
		name    string
		short   []*Player
		bets    map[*Player]int
		fullBet int
		want    []PotDivision
	}{
		{
			name:    "no short players",
			fullBet: 100,
		},
		{
			name:    "one short player",
			short:   []*Player{a},
			bets:    map[*Player]int{a: 30},
			fullBet: 100,
			want:    []PotDivision{{Chips: 30, Limit: 70, Excluded: []*Player{a}}},
		},
		{
			name:    "incremental levels",
			short:   []*Player{a, b, c},
			bets:    map[*Player]int{a: 170, b: 300, c: 500},
			fullBet: 1000,
			want: []PotDivision{
				{Chips: 170, Limit: 130, Excluded: []*Player{a}},
				{Chips: 130, Limit: 200, Excluded: []*Player{b}},
				{Chips: 200, Limit: 500, Excluded: []*Player{c}},
			},
		},
		{
			name:    "equal all-ins share a division",
			short:   []*Player{a, b, d},
			bets:    map[*Player]int{a: 500, b: 500, d: 700},
			fullBet: 1000,
			want: []PotDivision{
				{Chips: 500, Limit: 200, Excluded: []*Player{a, b}},
				{Chips: 200, Limit: 300, Excluded: []*Player{d}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, calculatePotDivisions(tt.short, tt.bets, tt.fullBet))
		})
	}
}

func TestValidActions(t *testing.T) {
	t.Parallel()

	players := newPlayers(1000, 1000, 1000, 30)
	sb, bb, utg, short := players[0], players[1], players[2], players[3]

	pm := NewPotManager(10, 20)
	pm.PostSmallBlind(sb, sb.PostBlind(10))
	pm.PostBigBlind(bb, bb.PostBlind(20))
	round := NewBettingRound(pm)

	assert.Equal(t, []Action{Fold, Call, Raise, AllIn}, round.ValidActions(utg))
	assert.Equal(t, 20, round.ToCall(utg))
	assert.Equal(t, []Action{Fold, Call, AllIn}, round.ValidActions(short))

	round.Apply(utg, Call, 0)
	round.Apply(sb, Call, 0)
	assert.Equal(t, []Action{Fold, Check, Raise, AllIn}, round.ValidActions(bb))

	short.Fold()
	assert.Nil(t, round.ValidActions(short))
}

func TestBettingRoundBigBlindOption(t *testing.T) {
	t.Parallel()

	players := newPlayers(1000, 1000, 1000)
	sb, bb, btn := players[0], players[1], players[2]

	pm := NewPotManager(10, 20)
	pm.PostSmallBlind(sb, sb.PostBlind(10))
	pm.PostBigBlind(bb, bb.PostBlind(20))
	round := NewBettingRound(pm)

	round.Apply(btn, Call, 0)
	round.Apply(sb, Call, 0)
	assert.False(t, round.IsComplete(players), "big blind still has the option")
	assert.True(t, round.NeedsAction(bb))

	round.Apply(bb, Raise, 60)
	assert.Equal(t, 60, pm.LastBet())
	assert.Equal(t, 40, pm.BetIncrement())
	assert.True(t, round.NeedsAction(btn), "a raise reopens the action")
	assert.False(t, round.IsComplete(players))

	round.Apply(btn, Call, 0)
	round.Apply(sb, Fold, 0)
	assert.True(t, round.IsComplete(players))
	assert.Equal(t, 140, pm.Total())
	require.NoError(t, CheckConservation(pm.Pots(), players))
}

func TestApplyRaiseIsClampedToMinimum(t *testing.T) {
	t.Parallel()

	players := newPlayers(1000, 1000, 1000)
	sb, bb, btn := players[0], players[1], players[2]

	pm := NewPotManager(10, 20)
	pm.PostSmallBlind(sb, sb.PostBlind(10))
	pm.PostBigBlind(bb, bb.PostBlind(20))
	round := NewBettingRound(pm)

	chips := round.Apply(btn, Raise, 25)
	assert.Equal(t, 40, chips)
	assert.Equal(t, 40, btn.Bet)
	assert.Equal(t, 40, pm.LastBet())
}

func TestApplyAllInBelowBetIsACall(t *testing.T) {
	t.Parallel()

	players := newPlayers(1000, 1000, 300, 100)
	sb, bb, utg, short := players[0], players[1], players[2], players[3]

	pm := NewPotManager(10, 20)
	pm.PostSmallBlind(sb, sb.PostBlind(10))
	pm.PostBigBlind(bb, bb.PostBlind(20))
	round := NewBettingRound(pm)

	round.Apply(utg, Raise, 200)
	round.Apply(short, AllIn, 0)
	assert.True(t, short.AllIn)
	assert.Equal(t, 200, pm.LastBet(), "a short all-in must not lower the bet")
	assert.False(t, round.NeedsAction(short))

	round.Apply(sb, Fold, 0)
	round.Apply(bb, Fold, 0)
	assert.True(t, round.IsComplete(players))

	pm.CloseRoundBetting()
	pots := pm.Pots()
	require.Len(t, pots, 2)
	assert.Equal(t, []int{230, 100}, potTotals(pots))
	require.NoError(t, CheckConservation(pots, players))
}

func TestStreetBoardCards(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Preflop.BoardCards())
	assert.Equal(t, 3, Flop.BoardCards())
	assert.Equal(t, 4, Turn.BoardCards())
	assert.Equal(t, 5, River.BoardCards())
	assert.Equal(t, "turn", Turn.String())
	assert.Equal(t, "allin", AllIn.String())
}
