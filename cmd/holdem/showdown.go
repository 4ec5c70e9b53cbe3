package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/holdem-showdown/internal/game"
	"github.com/lox/holdem-showdown/internal/report"
	"github.com/lox/holdem-showdown/poker"
)

// ShowdownCmd puts every player all in preflop, in seat order, and settles
// the resulting pots.
type ShowdownCmd struct {
	Board   string   `short:"b" required:"" help:"Five board cards"`
	Players []string `arg:"" help:"Players as name:cards:chips, e.g. alice:AhKd:500"`
}

func (c *ShowdownCmd) Run(r *report.Report) error {
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}
	players, err := parsePlayers(c.Players)
	if err != nil {
		return err
	}

	hands := make([]string, len(players))
	for i, p := range players {
		hands[i] = poker.FormatCards(p.HoleCards)
	}
	if _, err := parseEntries(hands, board); err != nil {
		return err
	}

	winners, err := settle(board, players)
	if err != nil {
		return err
	}
	r.Showdown(board, players, winners)
	return nil
}

func parsePlayers(args []string) ([]*game.Player, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", len(args))
	}

	players := make([]*game.Player, len(args))
	for i, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("player %q: want name:cards:chips", arg)
		}
		hole, err := poker.ParseCards(parts[1])
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", parts[0], err)
		}
		if len(hole) != 2 {
			return nil, fmt.Errorf("player %s: want 2 hole cards, got %d", parts[0], len(hole))
		}
		chips, err := strconv.Atoi(parts[2])
		if err != nil || chips <= 0 {
			return nil, fmt.Errorf("player %s: invalid chips %q", parts[0], parts[2])
		}

		players[i] = game.NewPlayer(i, parts[0], chips)
		players[i].HoleCards = hole
	}
	return players, nil
}

// settle shoves every player's stack in order, then evaluates and pays out
// each pot.
func settle(board []poker.Card, players []*game.Player) ([]game.PotWinner, error) {
	pots := game.NewPotManager(0, 0)
	round := game.NewBettingRound(pots)
	for _, p := range players {
		round.Apply(p, game.AllIn, 0)
	}
	pots.CloseRoundBetting()
	for _, p := range players {
		p.ClearBet()
	}
	if err := game.CheckConservation(pots.Pots(), players); err != nil {
		return nil, err
	}

	for _, p := range players {
		if err := p.Evaluate(board); err != nil {
			return nil, err
		}
	}

	winners, err := pots.CalculateWinners(players)
	if err != nil {
		return nil, err
	}
	for i := range winners {
		if err := winners[i].PayWinners(); err != nil {
			return nil, err
		}
	}
	return winners, nil
}
