package simulator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/holdem-showdown/internal/config"
	"github.com/lox/holdem-showdown/internal/game"
	"github.com/lox/holdem-showdown/poker"
)

// ErrBettingStalled is returned when a betting round fails to finish.
var ErrBettingStalled = errors.New("betting round did not finish")

// maxActionsPerRound bounds a betting round; raises are capped by stacks so
// a legal round always ends well before this.
const maxActionsPerRound = 10000

// table plays hands at one table. It owns its players, deck and RNG and is
// driven by a single goroutine.
type table struct {
	id      string
	cfg     config.TableConfig
	players []*game.Player
	deck    *poker.Deck
	policy  *policy
	button  int
	logger  *log.Logger
}

func newTable(id string, cfg config.TableConfig, weights config.PolicyConfig, seed int64, logger *log.Logger) *table {
	rng := rand.New(rand.NewSource(seed))
	players := make([]*game.Player, cfg.Seats)
	for i := range players {
		players[i] = game.NewPlayer(i, fmt.Sprintf("%s/p%d", id, i+1), cfg.StartingChips)
	}
	return &table{
		id:      id,
		cfg:     cfg,
		players: players,
		deck:    poker.NewDeck(rng),
		policy:  &policy{weights: weights, rng: rng},
		logger:  logger,
	}
}

// run plays up to hands hands, stopping early when one player holds every
// chip or ctx is cancelled.
func (t *table) run(ctx context.Context, hands int, played *atomic.Int64) (*Summary, error) {
	sum := &Summary{Tables: 1}
	for h := 0; h < hands; h++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		seated := t.seated()
		if len(seated) < 2 {
			t.logger.Debug("Table finished", "hands", sum.HandsPlayed, "players", len(seated))
			break
		}

		result, err := t.playHand(seated)
		if err != nil {
			return sum, fmt.Errorf("table %s hand %d: %w", t.id, h+1, err)
		}
		sum.add(result)
		played.Add(1)
		t.button = (t.button + 1) % len(seated)
	}
	return sum, nil
}

// seated returns players with chips; busted players sit out.
func (t *table) seated() []*game.Player {
	var out []*game.Player
	for _, p := range t.players {
		if p.Chips > 0 {
			out = append(out, p)
		}
	}
	return out
}

func (t *table) chips(players []*game.Player) int {
	total := 0
	for _, p := range players {
		total += p.Chips
	}
	return total
}

func (t *table) playHand(seated []*game.Player) (handResult, error) {
	logger := t.logger.With("hand", uuid.NewString()[:8])
	startChips := t.chips(seated)

	n := len(seated)
	button := t.button % n
	sbSeat, bbSeat := (button+1)%n, (button+2)%n
	if n == 2 {
		sbSeat, bbSeat = button, (button+1)%n
	}

	t.deck.Reset()
	for _, p := range seated {
		p.ResetForHand()
		p.HoleCards = t.deck.Deal(2)
	}

	pots := game.NewPotManager(t.cfg.SmallBlind, t.cfg.BigBlind, game.WithLogger(logger))
	sb, bb := seated[sbSeat], seated[bbSeat]
	pots.PostSmallBlind(sb, sb.PostBlind(t.cfg.SmallBlind))
	pots.PostBigBlind(bb, bb.PostBlind(t.cfg.BigBlind))

	var board []poker.Card
	for street := game.Preflop; street <= game.River; street++ {
		var err error
		if board, err = t.deck.RunOut(board, street.BoardCards()); err != nil {
			return handResult{}, err
		}

		first := (button + 1) % n
		if street == game.Preflop {
			first = (bbSeat + 1) % n
		}
		if err := t.bettingRound(logger, seated, pots, street, first); err != nil {
			return handResult{}, fmt.Errorf("%s: %w", street, err)
		}

		pots.CloseRoundBetting()
		for _, p := range seated {
			p.ClearBet()
		}
		if err := game.CheckConservation(pots.Pots(), seated); err != nil {
			return handResult{}, fmt.Errorf("after %s: %w", street, err)
		}
		if inHand(seated) <= 1 {
			break
		}
	}

	// Run out the board so every remaining hand can be ranked.
	board, err := t.deck.RunOut(board, poker.BoardSize)
	if err != nil {
		return handResult{}, err
	}
	var showdown []*game.Player
	for _, p := range seated {
		if !p.InHand() {
			continue
		}
		if err := p.Evaluate(board); err != nil {
			return handResult{}, err
		}
		showdown = append(showdown, p)
	}

	winners, err := pots.CalculateWinners(showdown)
	if err != nil {
		return handResult{}, err
	}

	result := handResult{pot: pots.Total(), sidePots: len(winners) - 1}
	for i := range winners {
		w := &winners[i]
		if err := w.PayWinners(); err != nil {
			return handResult{}, err
		}
		if len(w.Winners) > 1 {
			result.splitPots++
		}
		result.oddChips += w.OddChips()
		logger.Debug("Pot awarded", "result", w.String())
	}
	if len(showdown) > 1 {
		for _, p := range showdown {
			result.showdown = append(result.showdown, p.Result.Category)
		}
	}

	if end := t.chips(seated); end != startChips {
		return handResult{}, fmt.Errorf("%w: table held %d chips before the hand and %d after",
			game.ErrChipConservation, startChips, end)
	}
	return result, nil
}

func (t *table) bettingRound(logger *log.Logger, seated []*game.Player, pots *game.PotManager, street game.Street, first int) error {
	round := game.NewBettingRound(pots)
	for i := 0; !round.IsComplete(seated) && inHand(seated) > 1; i++ {
		if i >= maxActionsPerRound {
			return ErrBettingStalled
		}
		p := seated[(first+i)%len(seated)]
		if !round.NeedsAction(p) {
			continue
		}
		action, raiseTo := t.policy.decide(p, round, pots, street)
		chips := round.Apply(p, action, raiseTo)
		logger.Debug("Action", "street", street, "player", p.Name, "action", action, "chips", chips)
	}
	return nil
}

func inHand(players []*game.Player) int {
	n := 0
	for _, p := range players {
		if p.InHand() {
			n++
		}
	}
	return n
}
