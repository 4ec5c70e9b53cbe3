// Package report renders hand rankings, showdowns and simulation summaries
// for the terminal.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/lox/holdem-showdown/internal/game"
	"github.com/lox/holdem-showdown/internal/simulator"
	"github.com/lox/holdem-showdown/poker"
)

// Entry is a labelled, evaluated hand.
type Entry struct {
	Label  string
	Cards  []poker.Card
	Result poker.HandEvalResult
}

// Report writes styled output to w. Write errors are ignored.
type Report struct {
	w      io.Writer
	styles *Styles
}

// New creates a report writing to w.
func New(w io.Writer, styles *Styles) *Report {
	return &Report{w: w, styles: styles}
}

// Cards formats cards with suit colors, e.g. "[As Kh]".
func (r *Report) Cards(cards []poker.Card) string {
	formatted := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit.IsRed() {
			formatted[i] = r.styles.CardRed.Render(c.String())
		} else {
			formatted[i] = r.styles.CardBlack.Render(c.String())
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// Rankings prints entries strongest first. Tied hands share a position.
func (r *Report) Rankings(entries []Entry) {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return b.Result.Compare(a.Result)
	})

	fmt.Fprintln(r.w, r.styles.Header.Render("HAND RANKINGS"))
	position := 0
	for i, e := range sorted {
		if i == 0 || sorted[i-1].Result.Compare(e.Result) != 0 {
			position = i + 1
		}
		label := e.Label
		if position == 1 {
			label = r.styles.Winner.Render(label)
		}
		fmt.Fprintf(r.w, "%2d. %s %s %s\n", position, label, r.Cards(e.Cards), e.Result.Describe())
	}
}

// Comparison prints two hands and which one wins.
func (r *Report) Comparison(a, b Entry) {
	fmt.Fprintf(r.w, "%s %s %s\n", a.Label, r.Cards(a.Cards), a.Result.Describe())
	fmt.Fprintf(r.w, "%s %s %s\n", b.Label, r.Cards(b.Cards), b.Result.Describe())

	switch a.Result.Compare(b.Result) {
	case 1:
		fmt.Fprintf(r.w, "%s wins\n", r.styles.Winner.Render(a.Label))
	case -1:
		fmt.Fprintf(r.w, "%s wins\n", r.styles.Winner.Render(b.Label))
	default:
		fmt.Fprintln(r.w, r.styles.Winner.Render("Tie"))
	}
}

// Showdown prints the board, every hand shown and how each pot was awarded.
func (r *Report) Showdown(board []poker.Card, players []*game.Player, winners []game.PotWinner) {
	fmt.Fprintln(r.w, r.styles.Header.Render("SHOWDOWN"))
	fmt.Fprintf(r.w, "Board: %s\n\n", r.Cards(board))

	for _, p := range players {
		switch {
		case p.Folded:
			fmt.Fprintf(r.w, "%s %s\n", p.Name, r.styles.Muted.Render("folded"))
		case p.Result != nil:
			fmt.Fprintf(r.w, "%s shows %s (%s)\n", p.Name, r.Cards(p.HoleCards), p.Result.Describe())
		}
	}

	fmt.Fprintln(r.w)
	for _, w := range winners {
		fmt.Fprintln(r.w, r.styles.Pot.Render(w.String()))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.SubHeader.Render("Chip Counts:"))
	for _, p := range players {
		fmt.Fprintf(r.w, "  %s: %d\n", p.Name, p.Chips)
	}
}

// Summary prints simulation totals and the distribution of hands shown down.
func (r *Report) Summary(s *simulator.Summary) {
	fmt.Fprintln(r.w, r.styles.Header.Render("SIMULATION SUMMARY"))
	fmt.Fprintf(r.w, "Tables:       %d\n", s.Tables)
	fmt.Fprintf(r.w, "Hands played: %d\n", s.HandsPlayed)
	fmt.Fprintf(r.w, "Showdowns:    %d (%s)\n", s.Showdowns, percent(s.Showdowns, s.HandsPlayed))
	fmt.Fprintf(r.w, "Side pots:    %d\n", s.SidePots)
	fmt.Fprintf(r.w, "Split pots:   %d (%d odd chips)\n", s.SplitPots, s.OddChips)
	fmt.Fprintf(r.w, "Biggest pot:  %d\n", s.BiggestPot)
	fmt.Fprintf(r.w, "Chips moved:  %d\n", s.ChipsMoved)
	fmt.Fprintf(r.w, "Elapsed:      %s (%.0f hands/sec)\n", s.Elapsed, s.HandsPerSecond())

	if s.Showdowns == 0 {
		return
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.SubHeader.Render("Hands at showdown:"))
	for c := poker.RoyalFlush; ; c-- {
		line := fmt.Sprintf("  %-16s %6d  %5.1f%%", c, s.Categories[c], 100*s.CategoryShare(c))
		if s.Categories[c] == 0 {
			line = r.styles.Muted.Render(line)
		}
		fmt.Fprintln(r.w, line)
		if c == poker.HighCard {
			break
		}
	}
}

func percent(n, of int) string {
	if of == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(of))
}
