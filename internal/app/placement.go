// internal/app/placement.go
package app

import (
	"errors"

	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"

	"github.com/google/uuid"
)

var (
	// ErrWouldBlockRoute — размещение отрезало бы выход от входа.
	ErrWouldBlockRoute = errors.New("placement would block the route")
	// ErrNotBuildable — клетка непроходима по дизайну (рельеф) либо
	// является входом или выходом; препятствия на таких клетках не ставятся.
	ErrNotBuildable = errors.New("cell is not buildable")
)

// PlacementValidator отвечает на вопрос "если занять клетку X прямо сейчас,
// останется ли маршрут?" без побочных эффектов: спекулятивная правка
// делается только на снапшоте.
type PlacementValidator struct {
	finder *grid.PathFinder
	entry  grid.Coordinate
	exit   grid.Coordinate
}

func NewPlacementValidator(finder *grid.PathFinder, entry, exit grid.Coordinate) *PlacementValidator {
	return &PlacementValidator{finder: finder, entry: entry, exit: exit}
}

// CanOccupy сообщает, допустимо ли занять клетку target на сетке g.
// Живая сетка не мутируется ни при каком исходе, поэтому вызывающий может
// безнаказанно перебирать кандидатов (например, при перетаскивании превью).
func (v *PlacementValidator) CanOccupy(g *grid.Grid, target grid.Coordinate) bool {
	cell, err := g.CellAt(target)
	if err != nil {
		return false
	}
	if cell.Occupied || !cell.Walkable {
		return false
	}
	// Вход и выход закреплены: на них строить нельзя, иначе поиск
	// потерял бы конечную точку.
	if target == v.entry || target == v.exit {
		return false
	}

	speculative := g.Snapshot()
	if err := speculative.SetOccupant(target, nil); err != nil {
		return false
	}
	return v.finder.RouteExists(speculative, v.entry, v.exit)
}

// CanOccupy — фасадный шорткат для внешнего вызывающего (UI/экономика).
func (b *Board) CanOccupy(target grid.Coordinate) bool {
	return b.Validator.CanOccupy(b.Grid, target)
}

// CommitOccupancy занимает клетку и пересчитывает маршрут. Метод защитно
// перепроверяет размещение, даже если вызывающий уже спросил CanOccupy:
// коммит без валидации не должен уметь отрезать выход.
func (b *Board) CommitOccupancy(target grid.Coordinate) (*Obstacle, error) {
	cell, err := b.Grid.CellAt(target)
	if err != nil {
		return nil, err
	}
	if cell.Occupied {
		return nil, grid.ErrAlreadyOccupied
	}
	if !cell.Walkable || target == b.Entry || target == b.Exit {
		return nil, ErrNotBuildable
	}
	if !b.Validator.CanOccupy(b.Grid, target) {
		return nil, ErrWouldBlockRoute
	}

	obs := &Obstacle{ID: uuid.New(), Cell: target}
	if err := b.Grid.SetOccupant(target, obs); err != nil {
		return nil, err
	}
	b.obstacles[target] = obs

	b.EventDispatcher.Dispatch(event.Event{Type: event.ObstaclePlaced, Data: target})
	// Размещение прошло валидацию, так что пересчёт обязан найти маршрут;
	// координатор сам репортует, если это не так.
	_ = b.Coordinator.Recompute(b.Grid)
	return obs, nil
}

// RemoveOccupancy освобождает клетку и пересчитывает маршрут.
// Снятие с незанятой клетки — no-op без событий.
func (b *Board) RemoveOccupancy(target grid.Coordinate) error {
	cell, err := b.Grid.CellAt(target)
	if err != nil {
		return err
	}
	if !cell.Occupied {
		return nil
	}

	b.Grid.ClearOccupant(target)
	delete(b.obstacles, target)

	b.EventDispatcher.Dispatch(event.Event{Type: event.ObstacleRemoved, Data: target})
	_ = b.Coordinator.Recompute(b.Grid)
	return nil
}
