// internal/entity/ecs.go
package entity

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
)

type ECS struct {
	NextID       types.EntityID
	Positions    map[types.EntityID]*component.Position
	Velocities   map[types.EntityID]*component.Velocity
	RouteFollows map[types.EntityID]*component.RouteFollow
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Positions:    make(map[types.EntityID]*component.Position),
		Velocities:   make(map[types.EntityID]*component.Velocity),
		RouteFollows: make(map[types.EntityID]*component.RouteFollow),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.RouteFollows, id)
}
