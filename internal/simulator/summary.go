package simulator

import (
	"time"

	"github.com/lox/holdem-showdown/poker"
)

// Summary aggregates the results of a simulation run.
type Summary struct {
	Tables      int
	HandsPlayed int
	Showdowns   int
	SidePots    int // Pots beyond the main pot
	SplitPots   int // Pots shared by more than one winner
	OddChips    int // Chips left over after even splits
	BiggestPot  int
	ChipsMoved  int
	Categories  [poker.NumCategories]int // Hands shown down, by category
	Elapsed     time.Duration
}

// handResult is what a single hand contributes to a Summary.
type handResult struct {
	pot       int
	sidePots  int
	splitPots int
	oddChips  int
	showdown  []poker.Category
}

func (s *Summary) add(r handResult) {
	s.HandsPlayed++
	s.SidePots += r.sidePots
	s.SplitPots += r.splitPots
	s.OddChips += r.oddChips
	s.ChipsMoved += r.pot
	s.BiggestPot = max(s.BiggestPot, r.pot)
	if len(r.showdown) > 1 {
		s.Showdowns++
		for _, c := range r.showdown {
			s.Categories[c]++
		}
	}
}

func (s *Summary) merge(o *Summary) {
	if o == nil {
		return
	}
	s.Tables += o.Tables
	s.HandsPlayed += o.HandsPlayed
	s.Showdowns += o.Showdowns
	s.SidePots += o.SidePots
	s.SplitPots += o.SplitPots
	s.OddChips += o.OddChips
	s.ChipsMoved += o.ChipsMoved
	s.BiggestPot = max(s.BiggestPot, o.BiggestPot)
	for i, n := range o.Categories {
		s.Categories[i] += n
	}
}

// HandsPerSecond returns throughput, or 0 when no time was measured.
func (s *Summary) HandsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.HandsPlayed) / s.Elapsed.Seconds()
}

// CategoryShare returns the fraction of shown-down hands in category c.
func (s *Summary) CategoryShare(c poker.Category) float64 {
	total := 0
	for _, n := range s.Categories {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(s.Categories[c]) / float64(total)
}
