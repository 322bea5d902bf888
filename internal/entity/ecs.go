// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-base-defense/internal/component"
	"go-base-defense/internal/types"
)

type ECS struct {
	GameTime      float64 // время симуляции: только кадры без паузы
	SessionTime   float64 // время сессии, включая паузу
	generations   []uint32
	alive         []bool
	free          []uint32
	Transforms    map[types.EntityID]*component.Transform
	Sprites       map[types.EntityID]*component.Sprite
	Enemies       map[types.EntityID]*component.Enemy
	Deacons       map[types.EntityID]*component.Deacon
	Projectiles   map[types.EntityID]*component.Projectile
	Parts         map[types.EntityID]*component.Part
	Turrets       map[types.EntityID]*component.Turret
	BaseBuildings map[types.EntityID]*component.BaseBuilding
	Players       map[types.EntityID]*component.Player
	Bases         map[types.EntityID]*component.Base

	// Синглтоны сессии. Дескрипторы могут устареть; доступ через Base()/Player().
	BaseID   types.EntityID
	PlayerID types.EntityID
	Wave     *component.Wave
	Timers   *component.SessionTimers
	Over     bool // база разрушена, итог уже отправлен
}

func NewECS() *ECS {
	return &ECS{
		// слот 0 зарезервирован, чтобы types.NoEntity никогда не был живым
		generations:   []uint32{0},
		alive:         []bool{false},
		Transforms:    make(map[types.EntityID]*component.Transform),
		Sprites:       make(map[types.EntityID]*component.Sprite),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Deacons:       make(map[types.EntityID]*component.Deacon),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Parts:         make(map[types.EntityID]*component.Part),
		Turrets:       make(map[types.EntityID]*component.Turret),
		BaseBuildings: make(map[types.EntityID]*component.BaseBuilding),
		Players:       make(map[types.EntityID]*component.Player),
		Bases:         make(map[types.EntityID]*component.Base),
	}
}

// NewEntity выдаёт дескриптор, переиспользуя освобождённые слоты.
func (ecs *ECS) NewEntity() types.EntityID {
	if n := len(ecs.free); n > 0 {
		index := ecs.free[n-1]
		ecs.free = ecs.free[:n-1]
		ecs.alive[index] = true
		return types.NewEntityID(index, ecs.generations[index])
	}
	index := uint32(len(ecs.generations))
	ecs.generations = append(ecs.generations, 1)
	ecs.alive = append(ecs.alive, true)
	return types.NewEntityID(index, 1)
}

// Alive сообщает, выдан ли дескриптор и не удалена ли сущность.
func (ecs *ECS) Alive(id types.EntityID) bool {
	index := id.Index()
	if index == 0 || int(index) >= len(ecs.generations) {
		return false
	}
	return ecs.alive[index] && ecs.generations[index] == id.Generation()
}

// DestroyEntity удаляет все компоненты и инвалидирует дескриптор.
// Повторный вызов с тем же дескриптором ничего не делает.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	if !ecs.Alive(id) {
		return
	}
	delete(ecs.Transforms, id)
	delete(ecs.Sprites, id)
	delete(ecs.Enemies, id)
	delete(ecs.Deacons, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Parts, id)
	delete(ecs.Turrets, id)
	delete(ecs.BaseBuildings, id)
	delete(ecs.Players, id)
	delete(ecs.Bases, id)

	index := id.Index()
	ecs.generations[index]++
	ecs.alive[index] = false
	ecs.free = append(ecs.free, index)
}

// Clear удаляет все сущности; используется при выходе из сессии.
func (ecs *ECS) Clear() {
	for index := 1; index < len(ecs.generations); index++ {
		ecs.DestroyEntity(types.NewEntityID(uint32(index), ecs.generations[index]))
	}
	ecs.GameTime = 0
	ecs.SessionTime = 0
	ecs.BaseID = types.NoEntity
	ecs.PlayerID = types.NoEntity
	ecs.Wave = nil
	ecs.Timers = nil
	ecs.Over = false
}

// Base возвращает базу сессии, если она существует.
func (ecs *ECS) Base() (*component.Base, *component.Transform, bool) {
	base, ok := ecs.Bases[ecs.BaseID]
	if !ok {
		return nil, nil, false
	}
	t, ok := ecs.Transforms[ecs.BaseID]
	if !ok {
		return nil, nil, false
	}
	return base, t, true
}

// Player возвращает игрока сессии, если он существует.
func (ecs *ECS) Player() (*component.Player, *component.Transform, bool) {
	player, ok := ecs.Players[ecs.PlayerID]
	if !ok {
		return nil, nil, false
	}
	t, ok := ecs.Transforms[ecs.PlayerID]
	if !ok {
		return nil, nil, false
	}
	return player, t, true
}

// Count — число живых сущностей.
func (ecs *ECS) Count() int {
	return len(ecs.generations) - 1 - len(ecs.free)
}

// SortedIDs возвращает ключи карты компонентов в порядке индексов слотов,
// чтобы обход не зависел от случайного порядка карт Go.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Index() != ids[j].Index() {
			return ids[i].Index() < ids[j].Index()
		}
		return ids[i].Generation() < ids[j].Generation()
	})
	return ids
}
