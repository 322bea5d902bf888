package component

// PartTier — ранг детали для рецепта базы.
type PartTier int

const (
	TierBlue PartTier = iota
	TierRed
	TierGreen
)

func (t PartTier) String() string {
	switch t {
	case TierBlue:
		return "Blue"
	case TierRed:
		return "Red"
	case TierGreen:
		return "Green"
	}
	return "Unknown"
}

// Part — неизменяемая деталь, выпавшая из врага.
type Part struct {
	Tier         PartTier
	Size         Vec2
	CreationTime float64
}
