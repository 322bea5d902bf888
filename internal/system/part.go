// internal/system/part.go
package system

import (
	"go-base-defense/internal/config"
	"go-base-defense/internal/entity"
)

// PartSystem вращает лежащие детали и убирает просроченные.
type PartSystem struct {
	ecs *entity.ECS
}

func NewPartSystem(ecs *entity.ECS) *PartSystem {
	return &PartSystem{ecs: ecs}
}

func (s *PartSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Parts) {
		part := s.ecs.Parts[id]
		if s.ecs.GameTime-part.CreationTime > config.PartLifetime {
			s.ecs.DestroyEntity(id)
			continue
		}
		if t, ok := s.ecs.Transforms[id]; ok {
			t.Rotation += config.PartSpinRate
		}
	}
}
