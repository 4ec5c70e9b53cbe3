package game

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// BoardCards returns how many community cards are showing on the street.
func (s Street) BoardCards() int {
	return [...]int{0, 3, 4, 5, 5}[s]
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// BettingRound tracks who still owes a decision on one street. Bet sizes
// come from the PotManager.
type BettingRound struct {
	pots  *PotManager
	acted map[*Player]bool
}

// NewBettingRound starts a betting round against the hand's pot manager.
func NewBettingRound(pots *PotManager) *BettingRound {
	return &BettingRound{pots: pots, acted: make(map[*Player]bool)}
}

// ToCall returns the chips p needs to match the current bet.
func (br *BettingRound) ToCall(p *Player) int {
	return max(br.pots.LastBet()-p.Bet, 0)
}

// ValidActions returns the actions open to p.
func (br *BettingRound) ValidActions(p *Player) []Action {
	if !p.CanAct() {
		return nil
	}

	actions := []Action{Fold}
	toCall := br.ToCall(p)
	minRaise := br.pots.MinimumRaiseTo() - p.Bet

	if toCall == 0 {
		actions = append(actions, Check)
	} else if toCall < p.Chips {
		actions = append(actions, Call)
	}

	if p.Chips > minRaise {
		actions = append(actions, Raise)
	}
	actions = append(actions, AllIn)
	return actions
}

// Apply commits p's action to the player and the pot manager and returns the
// chips moved. Raise amounts are the total round bet to make it, clamped to
// the legal range.
func (br *BettingRound) Apply(p *Player, action Action, raiseTo int) int {
	br.acted[p] = true

	switch action {
	case Fold:
		p.Fold()
		return 0
	case Check:
		return 0
	case Call:
		chips := p.Commit(br.ToCall(p))
		br.pots.AddCall(p, chips)
		return chips
	case Raise:
		raiseTo = max(raiseTo, br.pots.MinimumRaiseTo())
		chips := p.Commit(raiseTo - p.Bet)
		br.raise(p, chips)
		return chips
	case AllIn:
		chips := p.Commit(p.Chips)
		if p.Bet > br.pots.LastBet() {
			br.raise(p, chips)
		} else {
			br.pots.AddCall(p, chips)
		}
		return chips
	}
	return 0
}

// raise reopens the action for everyone else.
func (br *BettingRound) raise(p *Player, chips int) {
	br.pots.AddRaise(p, chips)
	for other := range br.acted {
		if other != p {
			delete(br.acted, other)
		}
	}
}

// NeedsAction reports whether p still owes a decision this round.
func (br *BettingRound) NeedsAction(p *Player) bool {
	if !p.CanAct() {
		return false
	}
	return !br.acted[p] || p.Bet != br.pots.LastBet()
}

// IsComplete reports whether every player who can act has acted and matched
// the current bet.
func (br *BettingRound) IsComplete(players []*Player) bool {
	canAct := 0
	for _, p := range players {
		if p.CanAct() {
			canAct++
		}
	}

	for _, p := range players {
		if !br.NeedsAction(p) {
			continue
		}
		// A lone player facing no bet has nothing left to decide.
		if canAct == 1 && br.ToCall(p) == 0 {
			continue
		}
		return false
	}
	return true
}
