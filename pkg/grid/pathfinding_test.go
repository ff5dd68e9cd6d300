package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidRoute проверяет, что маршрут состоит из смежных проходимых
// клеток без повторов и соединяет start с end.
func assertValidRoute(t *testing.T, g *Grid, route []Coordinate, start, end Coordinate, allowDiagonals bool) {
	t.Helper()
	require.NotEmpty(t, route)
	assert.Equal(t, start, route[0])
	assert.Equal(t, end, route[len(route)-1])

	seen := make(map[Coordinate]struct{}, len(route))
	for i, c := range route {
		_, dup := seen[c]
		assert.False(t, dup, "route repeats cell %v", c)
		seen[c] = struct{}{}
		assert.True(t, g.IsWalkable(c) || c == start, "route crosses unwalkable cell %v", c)

		if i == 0 {
			continue
		}
		dx := abs(c.X - route[i-1].X)
		dy := abs(c.Y - route[i-1].Y)
		if allowDiagonals {
			assert.True(t, dx <= 1 && dy <= 1 && dx+dy > 0, "step %v -> %v not 8-adjacent", route[i-1], c)
		} else {
			assert.Equal(t, 1, dx+dy, "step %v -> %v not 4-adjacent", route[i-1], c)
		}
	}
}

func TestFindPath_StraightCorridor(t *testing.T) {
	t.Parallel()
	g := NewGrid(5, 1, 19.0)
	pf := NewPathFinder(false, 0)

	route, err := pf.FindPath(g, Coordinate{0, 0}, Coordinate{4, 0})
	require.NoError(t, err)

	want := []Coordinate{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if diff := cmp.Diff(want, route); diff != "" {
		t.Errorf("route mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPath_DetourAroundObstacle(t *testing.T) {
	t.Parallel()
	g := NewGrid(3, 3, 19.0)
	require.NoError(t, g.SetOccupant(Coordinate{1, 1}, nil))
	pf := NewPathFinder(false, 0)

	start, end := Coordinate{0, 1}, Coordinate{2, 1}
	route, err := pf.FindPath(g, start, end)
	require.NoError(t, err)

	// Обход через (1,0) или (1,2): 5 клеток, стоимость 4.
	assert.Len(t, route, 5)
	assertValidRoute(t, g, route, start, end, false)
	assert.NotContains(t, route, Coordinate{1, 1})
}

func TestFindPath_DiagonalTieBreak(t *testing.T) {
	t.Parallel()
	g := NewGrid(3, 3, 19.0)
	pf := NewPathFinder(true, 1.4)

	start, end := Coordinate{0, 0}, Coordinate{2, 2}
	route, err := pf.FindPath(g, start, end)
	require.NoError(t, err)

	// Два диагональных шага стоят 2.8 — дешевле любого ортогонального
	// маршрута стоимостью 4.
	want := []Coordinate{{0, 0}, {1, 1}, {2, 2}}
	if diff := cmp.Diff(want, route); diff != "" {
		t.Errorf("route mismatch (-want +got):\n%s", diff)
	}
	assertValidRoute(t, g, route, start, end, true)
}

func TestFindPath_NoRoute(t *testing.T) {
	t.Parallel()
	g := NewGrid(3, 1, 19.0)
	require.NoError(t, g.SetOccupant(Coordinate{1, 0}, nil))
	pf := NewPathFinder(false, 0)

	_, err := pf.FindPath(g, Coordinate{0, 0}, Coordinate{2, 0})
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.False(t, pf.RouteExists(g, Coordinate{0, 0}, Coordinate{2, 0}))
}

func TestFindPath_InvalidEndpoints(t *testing.T) {
	t.Parallel()
	g := NewGrid(3, 3, 19.0)
	g.SetUnwalkable(Coordinate{2, 2})
	pf := NewPathFinder(false, 0)

	tests := []struct {
		name       string
		start, end Coordinate
	}{
		{"start out of bounds", Coordinate{-1, 0}, Coordinate{2, 0}},
		{"end out of bounds", Coordinate{0, 0}, Coordinate{3, 0}},
		{"end unwalkable", Coordinate{0, 0}, Coordinate{2, 2}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := pf.FindPath(g, tc.start, tc.end)
			assert.ErrorIs(t, err, ErrInvalidEndpoint)
			assert.False(t, pf.RouteExists(g, tc.start, tc.end))
		})
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	t.Parallel()
	g := NewGrid(8, 8, 19.0)
	for _, c := range []Coordinate{{2, 1}, {2, 2}, {2, 3}, {5, 4}, {5, 5}, {5, 6}, {3, 6}} {
		g.SetUnwalkable(c)
	}
	pf := NewPathFinder(false, 0)

	first, err := pf.FindPath(g, Coordinate{0, 0}, Coordinate{7, 7})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := pf.FindPath(g, Coordinate{0, 0}, Coordinate{7, 7})
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d diverged (-first +again):\n%s", i, diff)
		}
	}
}

func TestFindPath_StartEqualsEnd(t *testing.T) {
	t.Parallel()
	g := NewGrid(3, 3, 19.0)
	pf := NewPathFinder(false, 0)

	route, err := pf.FindPath(g, Coordinate{1, 1}, Coordinate{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{1, 1}}, route)
}

func TestFindPath_DoesNotRetainState(t *testing.T) {
	t.Parallel()
	pf := NewPathFinder(false, 0)

	open := NewGrid(4, 1, 19.0)
	blocked := open.Snapshot()
	require.NoError(t, blocked.SetOccupant(Coordinate{2, 0}, nil))

	// Чередуем сетки: результат зависит только от переданного снапшота.
	for i := 0; i < 3; i++ {
		assert.True(t, pf.RouteExists(open, Coordinate{0, 0}, Coordinate{3, 0}))
		assert.False(t, pf.RouteExists(blocked, Coordinate{0, 0}, Coordinate{3, 0}))
	}
}
