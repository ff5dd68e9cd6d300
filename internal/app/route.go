// internal/app/route.go
package app

import (
	"fmt"
	"log"
	"sync"

	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"
)

// RouteCoordinator владеет единственным текущим маршрутом от входа к выходу
// и поддерживает его согласованным с сеткой после закоммиченных мутаций.
// Публикация маршрута атомарна: читатель видит либо старый маршрут целиком,
// либо новый целиком.
type RouteCoordinator struct {
	finder     *grid.PathFinder
	entry      grid.Coordinate
	exit       grid.Coordinate
	cellSize   float64
	dispatcher *event.Dispatcher

	mu    sync.RWMutex
	route []grid.Coordinate
}

func NewRouteCoordinator(finder *grid.PathFinder, entry, exit grid.Coordinate, cellSize float64, dispatcher *event.Dispatcher) *RouteCoordinator {
	return &RouteCoordinator{
		finder:     finder,
		entry:      entry,
		exit:       exit,
		cellSize:   cellSize,
		dispatcher: dispatcher,
	}
}

// Recompute пересчитывает маршрут по живой сетке и переопубликовывает его.
// Если маршрута больше нет, прежний маршрут сохраняется как last-known-good:
// такого не должно случаться, когда все коммиты прошли через валидатор,
// но координатор обязан оставаться корректным и при вызове "мимо" него.
func (rc *RouteCoordinator) Recompute(g *grid.Grid) error {
	route, err := rc.finder.FindPath(g, rc.entry, rc.exit)
	if err != nil {
		log.Printf("WARNING: route recalculation failed (%v), keeping previous route", err)
		if rc.dispatcher != nil {
			rc.dispatcher.Dispatch(event.Event{Type: event.RouteRecalcFailed, Data: err})
		}
		return fmt.Errorf("recalculation failed: %w", err)
	}

	rc.mu.Lock()
	rc.route = route
	rc.mu.Unlock()

	if rc.dispatcher != nil {
		rc.dispatcher.Dispatch(event.Event{Type: event.RouteChanged, Data: rc.CurrentRoute()})
	}
	return nil
}

// CurrentRoute возвращает копию последнего успешно посчитанного маршрута.
// Пустой срез — маршрут ещё ни разу не был посчитан.
func (rc *RouteCoordinator) CurrentRoute() []grid.Coordinate {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	out := make([]grid.Coordinate, len(rc.route))
	copy(out, rc.route)
	return out
}

// ResyncFollower находит ближайшую к (worldX, worldY) точку нового маршрута —
// перпендикулярной проекцией на каждый сегмент с клампом к его концам —
// и возвращает индекс вейпоинта, к которому сущности продолжать движение.
// Так последователи не откатываются к началу маршрута после мутации.
func (rc *RouteCoordinator) ResyncFollower(worldX, worldY float64) int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	if len(rc.route) < 2 {
		return 0
	}

	bestIndex := 1
	bestDistSq := -1.0

	for i := 0; i < len(rc.route)-1; i++ {
		ax, ay := rc.route[i].ToWorld(rc.cellSize)
		bx, by := rc.route[i+1].ToWorld(rc.cellSize)

		dx, dy := bx-ax, by-ay
		segLenSq := dx*dx + dy*dy

		t := 0.0
		if segLenSq > 0 {
			t = ((worldX-ax)*dx + (worldY-ay)*dy) / segLenSq
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}

		px, py := ax+dx*t, ay+dy*t
		distSq := (worldX-px)*(worldX-px) + (worldY-py)*(worldY-py)

		if bestDistSq < 0 || distSq < bestDistSq {
			bestDistSq = distSq
			bestIndex = i + 1
		}
	}
	return bestIndex
}
