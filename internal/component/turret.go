// internal/component/turret.go
package component

import "go-base-defense/internal/types"

// TargetMode — политика выбора цели турелью.
type TargetMode int

const (
	// TargetStored — стреляет по удерживаемой цели, пока она жива и в радиусе.
	TargetStored TargetMode = iota
	// TargetFirstInRange — каждый выстрел по первому найденному врагу в радиусе.
	TargetFirstInRange
)

// Turret — автономная пушка, построенная базой.
type Turret struct {
	Target types.EntityID // слабая ссылка; может указывать на удалённую сущность
	Mode   TargetMode
}

// BaseBuilding — декоративная постройка, открытая уровнем базы.
type BaseBuilding struct {
	Level int64
}
