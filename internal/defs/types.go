// internal/defs/types.go
package defs

import "go-base-defense/internal/component"

// TierThreshold — ступень накопительного броска: ранг выбирается,
// если бросок меньше Below.
type TierThreshold struct {
	Tier  component.PartTier `json:"tier"`
	Below float64            `json:"below"`
}

// TierRoll — упорядоченная таблица ступеней. Последняя ступень служит
// запасным вариантом, поэтому выбор всегда определён.
type TierRoll []TierThreshold

// Pick выбирает ранг по броску draw из [0, 1).
func (r TierRoll) Pick(draw float64) component.PartTier {
	for _, step := range r {
		if draw < step.Below {
			return step.Tier
		}
	}
	if len(r) == 0 {
		return component.TierBlue
	}
	return r[len(r)-1].Tier
}
