package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-base-defense/internal/component"
)

func TestTierRoll_Pick(t *testing.T) {
	roll := RecipeRollFor(5)
	assert.Equal(t, component.TierGreen, roll.Pick(0))
	assert.Equal(t, component.TierGreen, roll.Pick(0.29))
	assert.Equal(t, component.TierRed, roll.Pick(0.3))
	assert.Equal(t, component.TierRed, roll.Pick(0.49))
	assert.Equal(t, component.TierBlue, roll.Pick(0.5))
	assert.Equal(t, component.TierBlue, roll.Pick(0.999))

	assert.Equal(t, component.TierRed, RecipeRollFor(6).Pick(0.999), "last step is the fallback")
	assert.Equal(t, component.TierBlue, TierRoll(nil).Pick(0.5))
}

func TestRecipeRollFor_OutOfTable(t *testing.T) {
	assert.Equal(t, RecipeRolls[1], RecipeRollFor(0))
	assert.Equal(t, HighLevelRecipeRoll, RecipeRollFor(7))
	assert.Equal(t, HighLevelRecipeRoll, RecipeRollFor(40))
}

func TestBulletStatsFor(t *testing.T) {
	tests := []struct {
		level int64
		want  BulletStats
	}{
		{0, BulletStats{Speed: 300, Damage: 50}},
		{1, BulletStats{Speed: 300, Damage: 50}},
		{4, BulletStats{Speed: 450, Damage: 80}},
		{6, BulletStats{Speed: 550, Damage: 100}},
		{7, BulletStats{Speed: 600, Damage: 100}},
		{12, BulletStats{Speed: 600, Damage: 100}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BulletStatsFor(tt.level), "level %d", tt.level)
	}
}

func TestBaseMaxHealthFor(t *testing.T) {
	assert.Equal(t, int64(500), BaseMaxHealthFor(1, 500))
	assert.Equal(t, int64(1000), BaseMaxHealthFor(2, 500))
	assert.Equal(t, int64(2500), BaseMaxHealthFor(5, 500))
	assert.Equal(t, int64(3000), BaseMaxHealthFor(9, 500))
}

func TestInitialVariants(t *testing.T) {
	assert.Equal(t, []component.EnemyKind{component.KindPawn}, InitialVariants())
}
