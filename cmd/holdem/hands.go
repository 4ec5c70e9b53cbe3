package main

import (
	"errors"
	"fmt"

	"github.com/lox/holdem-showdown/internal/report"
	"github.com/lox/holdem-showdown/poker"
)

var errDuplicateCard = errors.New("duplicate card")

// EvalCmd ranks a set of hands against each other.
type EvalCmd struct {
	Hands []string `arg:"" help:"Hands to rank, e.g. 'AsKd QhJs Tc 2d 3h' or 'AsKd' with --board"`
	Board string   `short:"b" help:"Five shared board cards (e.g. 'Td7s8h2c3d')"`
}

func (c *EvalCmd) Run(r *report.Report) error {
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}
	entries, err := parseEntries(c.Hands, board)
	if err != nil {
		return err
	}
	r.Rankings(entries)
	return nil
}

// CompareCmd compares two hands.
type CompareCmd struct {
	A     string `arg:"" help:"First hand"`
	B     string `arg:"" help:"Second hand"`
	Board string `short:"b" help:"Five shared board cards"`
}

func (c *CompareCmd) Run(r *report.Report) error {
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}
	entries, err := parseEntries([]string{c.A, c.B}, board)
	if err != nil {
		return err
	}
	r.Comparison(entries[0], entries[1])
	return nil
}

func parseBoard(s string) ([]poker.Card, error) {
	if s == "" {
		return nil, nil
	}
	board, err := poker.ParseCards(s)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if len(board) != 5 {
		return nil, fmt.Errorf("board must have 5 cards, got %d", len(board))
	}
	return board, nil
}

// parseEntries parses and evaluates each hand. With a board each hand is two
// hole cards, otherwise seven cards. No card may appear twice.
func parseEntries(hands []string, board []poker.Card) ([]report.Entry, error) {
	seen := make(map[poker.Card]bool)
	for _, c := range board {
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", errDuplicateCard, c)
		}
		seen[c] = true
	}

	entries := make([]report.Entry, 0, len(hands))
	for i, s := range hands {
		label := fmt.Sprintf("hand %d", i+1)
		cards, err := poker.ParseCards(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		for _, c := range cards {
			if seen[c] {
				return nil, fmt.Errorf("%s: %w: %s", label, errDuplicateCard, c)
			}
			seen[c] = true
		}

		res, err := poker.Evaluate2(cards, board)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		entries = append(entries, report.Entry{
			Label:  label,
			Cards:  append(cards, board...),
			Result: res,
		})
	}
	return entries, nil
}
