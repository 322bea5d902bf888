package defs

import "go-base-defense/internal/component"

// WaveDefinition описывает изменение директора волн на пороговой волне.
type WaveDefinition struct {
	EnemyCount int                 // новое значение счётчика врагов
	Unlock     component.EnemyKind // вариант, добавляемый в конец пула
	DropOldest bool                // удалить самый старый вариант перед добавлением
}

// WavePatterns определяет пороговые волны. Ключ карты — номер волны.
var WavePatterns = map[int]WaveDefinition{
	6:  {EnemyCount: 6, Unlock: component.KindStinger},
	15: {EnemyCount: 7, Unlock: component.KindRogue},
	20: {EnemyCount: 8, Unlock: component.KindSplitter},
	25: {EnemyCount: 9, Unlock: component.KindBishop, DropOldest: true},
	30: {EnemyCount: 10, Unlock: component.KindPropagator, DropOldest: true},
}

const (
	// InitialEnemyCount — счётчик до первой волны.
	InitialEnemyCount = 5
	// CeilingEnemyCount — счётчик на всех непороговых волнах.
	CeilingEnemyCount = 11
	// MaxWeightedVariants — сколько вариантов пула участвуют в розыгрыше.
	MaxWeightedVariants = 4
)

// InitialVariants — пул, открытый с начала сессии.
func InitialVariants() []component.EnemyKind {
	return []component.EnemyKind{component.KindPawn}
}
