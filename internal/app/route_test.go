package app

import (
	"testing"

	"go-grid-defense/internal/event"
	"go-grid-defense/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingListener копит полученные события для проверок.
type recordingListener struct {
	events []event.Event
}

func (l *recordingListener) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *recordingListener) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestRecompute_PublishesRoute(t *testing.T) {
	t.Parallel()
	g := grid.NewGrid(5, 1, 10.0)
	dispatcher := event.NewDispatcher()
	listener := &recordingListener{}
	dispatcher.Subscribe(event.RouteChanged, listener)

	rc := NewRouteCoordinator(grid.NewPathFinder(false, 0), grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 4, Y: 0}, 10.0, dispatcher)
	assert.Empty(t, rc.CurrentRoute(), "no route before first recompute")

	require.NoError(t, rc.Recompute(g))
	assert.Len(t, rc.CurrentRoute(), 5)
	assert.Equal(t, 1, listener.count(event.RouteChanged))
}

func TestRecompute_FailureKeepsLastKnownGood(t *testing.T) {
	t.Parallel()
	g := grid.NewGrid(5, 1, 10.0)
	dispatcher := event.NewDispatcher()
	listener := &recordingListener{}
	dispatcher.Subscribe(event.RouteChanged, listener)
	dispatcher.Subscribe(event.RouteRecalcFailed, listener)

	rc := NewRouteCoordinator(grid.NewPathFinder(false, 0), grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 4, Y: 0}, 10.0, dispatcher)
	require.NoError(t, rc.Recompute(g))
	good := rc.CurrentRoute()

	// Мутация "мимо" валидатора: координатор обязан пережить её корректно.
	require.NoError(t, g.SetOccupant(grid.Coordinate{X: 2, Y: 0}, nil))

	err := rc.Recompute(g)
	assert.ErrorIs(t, err, grid.ErrNoRoute)
	assert.Equal(t, good, rc.CurrentRoute(), "last-known-good route retained")
	assert.Equal(t, 1, listener.count(event.RouteChanged))
	assert.Equal(t, 1, listener.count(event.RouteRecalcFailed))
}

func TestCurrentRoute_ReturnsCopy(t *testing.T) {
	t.Parallel()
	g := grid.NewGrid(4, 1, 10.0)
	rc := NewRouteCoordinator(grid.NewPathFinder(false, 0), grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 3, Y: 0}, 10.0, nil)
	require.NoError(t, rc.Recompute(g))

	stolen := rc.CurrentRoute()
	stolen[0] = grid.Coordinate{X: 9, Y: 9}

	assert.Equal(t, grid.Coordinate{X: 0, Y: 0}, rc.CurrentRoute()[0], "reader must not corrupt the published route")
}

func TestResyncFollower_DoesNotResetToStart(t *testing.T) {
	t.Parallel()
	b := newTestBoard(t, 5, 3, grid.Coordinate{X: 0, Y: 1}, grid.Coordinate{X: 4, Y: 1})
	require.Len(t, b.CurrentRoute(), 5)

	// Последователь на полпути между (1,1) и (2,1).
	px, py := 20.0, 15.0

	_, err := b.CommitOccupancy(grid.Coordinate{X: 2, Y: 1})
	require.NoError(t, err)
	newRoute := b.CurrentRoute()
	require.Len(t, newRoute, 7, "detour around (2,1)")

	idx := b.Coordinator.ResyncFollower(px, py)
	require.Greater(t, idx, 0, "follower must not be snapped back to the route start")
	require.Less(t, idx, len(newRoute))

	// Возобновляемый вейпоинт достижим из точки последователя, не пересекая
	// свежепоставленное препятствие: это (1,1) — общая клетка старого и
	// нового маршрутов.
	assert.Equal(t, grid.Coordinate{X: 1, Y: 1}, newRoute[idx])
}

func TestResyncFollower_ClampsToSegmentEnds(t *testing.T) {
	t.Parallel()
	g := grid.NewGrid(4, 1, 10.0)
	rc := NewRouteCoordinator(grid.NewPathFinder(false, 0), grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 3, Y: 0}, 10.0, nil)
	require.NoError(t, rc.Recompute(g))

	// Точка далеко за выходом: проекция клампится к последнему сегменту.
	idx := rc.ResyncFollower(1000, 5)
	assert.Equal(t, 3, idx)

	// Точка до входа: первый сегмент, движение к вейпоинту 1.
	idx = rc.ResyncFollower(-1000, 5)
	assert.Equal(t, 1, idx)
}

func TestResyncFollower_EmptyRoute(t *testing.T) {
	t.Parallel()
	rc := NewRouteCoordinator(grid.NewPathFinder(false, 0), grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 3, Y: 0}, 10.0, nil)
	assert.Equal(t, 0, rc.ResyncFollower(5, 5))
}
