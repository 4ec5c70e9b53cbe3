package poker

// HoleTier is a coarse preflop strength bucket for two hole cards.
type HoleTier uint8

const (
	TierTrash HoleTier = iota
	TierWeak
	TierMedium
	TierStrong
	TierPremium
)

func (t HoleTier) String() string {
	return [...]string{"Trash", "Weak", "Medium", "Strong", "Premium"}[t]
}

// ClassifyHole buckets hole cards.
// Premium: JJ+, AK. Strong: TT, AQ, AJ. Medium: 77-99, suited broadway.
// Weak: 22-66, suited connectors and one-gappers. Trash: everything else.
func ClassifyHole(a, b Card) HoleTier {
	low, high := a.Rank, b.Rank
	if low > high {
		low, high = high, low
	}
	pair := low == high
	suited := a.Suit == b.Suit

	switch {
	case pair && low >= Jack, low == King && high == Ace:
		return TierPremium
	case pair && low == Ten, high == Ace && (low == Queen || low == Jack):
		return TierStrong
	case pair && low >= Seven, suited && low >= Ten:
		return TierMedium
	case pair, suited && high-low <= 2:
		return TierWeak
	}
	return TierTrash
}
