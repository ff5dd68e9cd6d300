// internal/system/movement.go
package system

import (
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/pkg/grid"
)

// RouteProvider определяет методы, которые MovementSystem требует от
// координатора маршрута. Это помогает избежать циклических зависимостей.
type RouteProvider interface {
	CurrentRoute() []grid.Coordinate
	ResyncFollower(worldX, worldY float64) int
}

// MovementSystem ведёт последователей по текущему маршруту и
// ресинхронизирует их при его переопубликации.
type MovementSystem struct {
	ecs      *entity.ECS
	routes   RouteProvider
	cellSize float64
}

func NewMovementSystem(ecs *entity.ECS, routes RouteProvider, cellSize float64, dispatcher *event.Dispatcher) *MovementSystem {
	s := &MovementSystem{ecs: ecs, routes: routes, cellSize: cellSize}
	if dispatcher != nil {
		dispatcher.Subscribe(event.RouteChanged, s)
	}
	return s
}

// SpawnFollower создаёт сущность на первой клетке маршрута.
func (s *MovementSystem) SpawnFollower(speed float64) (types.EntityID, bool) {
	route := s.routes.CurrentRoute()
	if len(route) == 0 {
		return 0, false
	}

	id := s.ecs.NewEntity()
	x, y := route[0].ToWorld(s.cellSize)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.RouteFollows[id] = &component.RouteFollow{Waypoints: route, CurrentIndex: 0}
	return id, true
}

// Update продвигает каждого последователя к его текущему вейпоинту.
func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		follow, hasFollow := s.ecs.RouteFollows[id]
		if !hasVel || !hasFollow || follow.ReachedEnd {
			continue
		}
		if follow.CurrentIndex >= len(follow.Waypoints) {
			follow.ReachedEnd = true
			continue
		}

		target := follow.Waypoints[follow.CurrentIndex]
		tx, ty := target.ToWorld(s.cellSize)

		dx := tx - pos.X
		dy := ty - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)

		moveDistance := vel.Speed * deltaTime
		if dist <= moveDistance {
			pos.X = tx
			pos.Y = ty
			follow.CurrentIndex++
			if follow.CurrentIndex >= len(follow.Waypoints) {
				follow.ReachedEnd = true
			}
		} else {
			pos.X += (dx / dist) * moveDistance
			pos.Y += (dy / dist) * moveDistance
		}
	}
}

// OnEvent реализует event.Listener: при переопубликации маршрута каждый
// последователь получает новый список вейпоинтов и индекс ближайшей к нему
// точки нового маршрута — вместо отката к началу.
func (s *MovementSystem) OnEvent(e event.Event) {
	if e.Type != event.RouteChanged {
		return
	}
	route, ok := e.Data.([]grid.Coordinate)
	if !ok || len(route) == 0 {
		return
	}

	for id, follow := range s.ecs.RouteFollows {
		if follow.ReachedEnd {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		waypoints := make([]grid.Coordinate, len(route))
		copy(waypoints, route)
		follow.Waypoints = waypoints
		follow.CurrentIndex = s.routes.ResyncFollower(pos.X, pos.Y)
	}
}
