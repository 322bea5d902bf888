// internal/defs/enemies.go
package defs

import "go-base-defense/internal/component"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Kind   component.EnemyKind `json:"-"`
	Name   string              `json:"name"`
	Health int64               `json:"health"`
	Speed  float64             `json:"speed"`
	Size   component.Vec2      `json:"size"`
	Sprite string              `json:"sprite"`
	Scale  float64             `json:"scale"`
	// SpinRate — косметическое вращение в радианах за кадр; 0 — смотрит по курсу.
	SpinRate float64 `json:"spin_rate"`
}

// EnemyLibrary is the library of all enemy definitions, keyed by kind.
var EnemyLibrary = map[component.EnemyKind]EnemyDefinition{
	component.KindPawn:       {Kind: component.KindPawn, Name: "Pawn", Health: 50, Speed: 25, Size: component.Vec2{X: 10, Y: 10}, Sprite: SpritePawn, Scale: 0.15},
	component.KindStinger:    {Kind: component.KindStinger, Name: "Stinger", Health: 50, Speed: 40, Size: component.Vec2{X: 10, Y: 10}, Sprite: SpriteStinger, Scale: 0.2},
	component.KindSplitter:   {Kind: component.KindSplitter, Name: "Splitter", Health: 100, Speed: 20, Size: component.Vec2{X: 15, Y: 15}, Sprite: SpriteSplitter, Scale: 0.3, SpinRate: 0.0233},
	component.KindRogue:      {Kind: component.KindRogue, Name: "Rogue", Health: 200, Speed: 25, Size: component.Vec2{X: 15, Y: 15}, Sprite: SpriteRogue, Scale: 0.3, SpinRate: 0.0349},
	component.KindBishop:     {Kind: component.KindBishop, Name: "Bishop", Health: 300, Speed: 15, Size: component.Vec2{X: 20, Y: 20}, Sprite: SpriteBishop, Scale: 0.4, SpinRate: -0.0349},
	component.KindPropagator: {Kind: component.KindPropagator, Name: "Propagator", Health: 500, Speed: 5, Size: component.Vec2{X: 25, Y: 25}, Sprite: SpritePropagator, Scale: 0.5, SpinRate: -0.0175},
	component.KindNeonate:    {Kind: component.KindNeonate, Name: "Neonate", Health: 50, Speed: 20, Size: component.Vec2{X: 10, Y: 10}, Sprite: SpriteNeonate, Scale: 0.2},
}

// SplitterChild описывает потомков Splitter данного поколения.
type SplitterChild struct {
	Health int64
	Speed  float64
	Size   component.Vec2
	Scale  float64
}

// SplitterChildren — потомки по поколению родителя. Поколение 2+ не делится.
var SplitterChildren = map[int]SplitterChild{
	0: {Health: 100, Speed: 20, Size: component.Vec2{X: 10, Y: 10}, Scale: 0.25},
	1: {Health: 100, Speed: 25, Size: component.Vec2{X: 5, Y: 5}, Scale: 0.2},
}

// SplitterChildCount — сколько потомков появляется при делении.
const SplitterChildCount = 2

// SplitterChildOffset — смещение точки появления потомков от места гибели.
var SplitterChildOffset = component.Vec2{X: 10, Y: 10}

// NeonateOffsets — фиксированные направления выводка Propagator.
var NeonateOffsets = [4]component.Vec2{{X: 5, Y: 0}, {X: -5, Y: 0}, {X: 0, Y: 5}, {X: 0, Y: -5}}

// DeaconDefinition — параметры спутника Bishop.
var DeaconDefinition = struct {
	Speed      float64
	SeekSpeed  float64
	Size       component.Vec2
	Scale      float64
	HealAmount int64
	SpeedBoost float64
	SpawnCount int
}{
	Speed:      20,
	SeekSpeed:  10,
	Size:       component.Vec2{X: 10, Y: 10},
	Scale:      0.2,
	HealAmount: 10,
	SpeedBoost: 1,
	SpawnCount: 2,
}

// JitterFor — амплитуда случайного отклонения курса для архетипа.
func JitterFor(kind component.EnemyKind) float64 {
	switch kind {
	case component.KindPawn:
		return 0.4
	case component.KindStinger, component.KindNeonate:
		return 0.5
	}
	return 0
}
