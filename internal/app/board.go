// internal/app/board.go
package app

import (
	"fmt"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"

	"github.com/google/uuid"
)

// Obstacle — размещённый на сетке объект. Для сетки это opaque-ссылка;
// Board различает препятствия по UUID.
type Obstacle struct {
	ID   uuid.UUID
	Cell grid.Coordinate
}

// Board владеет живой сеткой и связывает валидацию размещения с
// пересчётом маршрута. Все мутации сетки проходят только через Board.
type Board struct {
	Grid            *grid.Grid
	Finder          *grid.PathFinder
	Validator       *PlacementValidator
	Coordinator     *RouteCoordinator
	EventDispatcher *event.Dispatcher

	Entry grid.Coordinate
	Exit  grid.Coordinate

	obstacles map[grid.Coordinate]*Obstacle
}

// NewBoard конструирует компоненты в порядке зависимостей
// (сетка → поисковик → валидатор → координатор) и считает стартовый
// маршрут до того, как кто-либо сможет его запросить.
func NewBoard(width, height int, cellSize float64, entry, exit grid.Coordinate, allowDiagonals bool, diagonalCost float64) (*Board, error) {
	g := grid.NewGrid(width, height, cellSize)
	if !g.InBounds(entry) || !g.InBounds(exit) {
		return nil, fmt.Errorf("entry %v / exit %v: %w", entry, exit, grid.ErrInvalidEndpoint)
	}

	finder := grid.NewPathFinder(allowDiagonals, diagonalCost)
	dispatcher := event.NewDispatcher()

	b := &Board{
		Grid:            g,
		Finder:          finder,
		Validator:       NewPlacementValidator(finder, entry, exit),
		Coordinator:     NewRouteCoordinator(finder, entry, exit, cellSize, dispatcher),
		EventDispatcher: dispatcher,
		Entry:           entry,
		Exit:            exit,
		obstacles:       make(map[grid.Coordinate]*Obstacle),
	}

	if err := b.Coordinator.Recompute(b.Grid); err != nil {
		return nil, fmt.Errorf("initial route: %w", err)
	}
	return b, nil
}

// NewBoardFromDefinition собирает доску по описанию из boards.json.
func NewBoardFromDefinition(def defs.BoardDefinition) (*Board, error) {
	entry := grid.Coordinate{X: def.Entry.X, Y: def.Entry.Y}
	exit := grid.Coordinate{X: def.Exit.X, Y: def.Exit.Y}

	b, err := NewBoard(def.Width, def.Height, def.CellSize, entry, exit, def.Search.AllowDiagonals, def.Search.DiagonalCost)
	if err != nil {
		return nil, fmt.Errorf("board %q: %w", def.ID, err)
	}

	if len(def.Terrain) > 0 {
		cells := make([]grid.Coordinate, 0, len(def.Terrain))
		for _, c := range def.Terrain {
			cells = append(cells, grid.Coordinate{X: c.X, Y: c.Y})
		}
		if err := b.CarveTerrain(cells); err != nil {
			return nil, fmt.Errorf("board %q terrain: %w", def.ID, err)
		}
	}
	return b, nil
}

// CurrentRoute возвращает последний успешно посчитанный маршрут.
func (b *Board) CurrentRoute() []grid.Coordinate {
	return b.Coordinator.CurrentRoute()
}

// ObstacleAt возвращает препятствие на клетке, если оно там есть.
func (b *Board) ObstacleAt(c grid.Coordinate) (*Obstacle, bool) {
	obs, ok := b.obstacles[c]
	return obs, ok
}

// ObstacleCount — число размещённых препятствий.
func (b *Board) ObstacleCount() int {
	return len(b.obstacles)
}
