package simulator

import (
	"math/rand"

	"github.com/lox/holdem-showdown/internal/config"
	"github.com/lox/holdem-showdown/internal/game"
	"github.com/lox/holdem-showdown/poker"
)

// policy picks random legal actions using configured weights.
type policy struct {
	weights config.PolicyConfig
	rng     *rand.Rand
}

func (p *policy) weight(a game.Action) int {
	switch a {
	case game.Fold:
		return p.weights.Fold
	case game.Check:
		return p.weights.Check
	case game.Call:
		return p.weights.Call
	case game.Raise:
		return p.weights.Raise
	case game.AllIn:
		return p.weights.AllIn
	}
	return 0
}

// tierWeight skews preflop decisions: strong hole cards raise more, weak
// ones fold more.
func tierWeight(a game.Action, tier poker.HoleTier, w int) int {
	switch a {
	case game.Fold:
		return w * (int(poker.TierPremium) - int(tier) + 1)
	case game.Raise, game.AllIn:
		return w * (int(tier) + 1)
	}
	return w * 2
}

// decide returns an action and, for raises, the total to raise to.
func (p *policy) decide(player *game.Player, round *game.BettingRound, pots *game.PotManager, street game.Street) (game.Action, int) {
	valid := round.ValidActions(player)
	canCheck := false
	for _, a := range valid {
		if a == game.Check {
			canCheck = true
		}
	}

	var tier poker.HoleTier
	tiered := p.weights.Tiered && street == game.Preflop && len(player.HoleCards) == 2
	if tiered {
		tier = poker.ClassifyHole(player.HoleCards[0], player.HoleCards[1])
	}

	weights := make([]int, len(valid))
	total := 0
	for i, a := range valid {
		w := p.weight(a)
		if a == game.Fold && canCheck {
			w = 0
		}
		if tiered {
			w = tierWeight(a, tier, w)
		}
		weights[i] = w
		total += w
	}

	action := fallback(valid)
	if total > 0 {
		n := p.rng.Intn(total)
		for i, w := range weights {
			if n < w {
				action = valid[i]
				break
			}
			n -= w
		}
	}

	raiseTo := 0
	if action == game.Raise {
		raiseTo = pots.MinimumRaiseTo() + p.rng.Intn(pots.Total()/2+1)
	}
	return action, raiseTo
}

// fallback is used when every legal action has zero weight.
func fallback(valid []game.Action) game.Action {
	for _, preferred := range []game.Action{game.Check, game.Call} {
		for _, a := range valid {
			if a == preferred {
				return a
			}
		}
	}
	return valid[0]
}
