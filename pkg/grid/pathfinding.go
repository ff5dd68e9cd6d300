// pkg/grid/pathfinding.go
package grid

import (
	"container/heap"
)

// PathFinder выполняет поиск A* по сетке. Конфигурация фиксируется при
// создании и разделяется всеми вызовами; сам поиск не хранит состояния
// между вызовами, поэтому параллельные вызовы с разными снапшотами безопасны.
type PathFinder struct {
	allowDiagonals bool
	diagonalCost   float64
}

// NewPathFinder создаёт поисковик. diagonalCost имеет смысл только при
// allowDiagonals; стоимость ортогонального шага всегда 1.0.
func NewPathFinder(allowDiagonals bool, diagonalCost float64) *PathFinder {
	return &PathFinder{
		allowDiagonals: allowDiagonals,
		diagonalCost:   diagonalCost,
	}
}

// Node — узел поиска, живёт только в рамках одного вызова FindPath.
type Node struct {
	Pos    Coordinate
	GCost  float64
	HCost  float64
	Parent *Node
	index  int // позиция в куче
}

// FCost — полная оценка стоимости узла.
func (n *Node) FCost() float64 { return n.GCost + n.HCost }

// FindPath находит кратчайший маршрут от start до end включительно.
// Возвращает ErrInvalidEndpoint, если start/end вне сетки или end непроходим,
// и ErrNoRoute, если фронтир исчерпан без достижения цели.
func (pf *PathFinder) FindPath(g *Grid, start, end Coordinate) ([]Coordinate, error) {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, ErrInvalidEndpoint
	}
	if !g.IsWalkable(end) {
		return nil, ErrInvalidEndpoint
	}

	goal := pf.search(g, start, end)
	if goal == nil {
		return nil, ErrNoRoute
	}
	return reconstructRoute(goal), nil
}

// RouteExists — тот же поиск, но без восстановления маршрута.
// Используется валидатором размещения, которому нужна только достижимость.
func (pf *PathFinder) RouteExists(g *Grid, start, end Coordinate) bool {
	if !g.InBounds(start) || !g.InBounds(end) || !g.IsWalkable(end) {
		return false
	}
	return pf.search(g, start, end) != nil
}

// search возвращает конечный узел с цепочкой Parent до start, либо nil.
func (pf *PathFinder) search(g *Grid, start, end Coordinate) *Node {
	open := &nodeHeap{}
	heap.Init(open)

	startNode := &Node{Pos: start, GCost: 0, HCost: pf.heuristic(start, end)}
	heap.Push(open, startNode)

	openByPos := map[Coordinate]*Node{start: startNode}
	closed := make(map[Coordinate]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*Node)
		delete(openByPos, current.Pos)

		if current.Pos == end {
			return current
		}
		closed[current.Pos] = struct{}{}

		pf.relaxNeighbors(g, current, end, open, openByPos, closed)
	}
	return nil
}

func (pf *PathFinder) relaxNeighbors(g *Grid, current *Node, end Coordinate, open *nodeHeap, openByPos map[Coordinate]*Node, closed map[Coordinate]struct{}) {
	expand := func(dirs []Coordinate, stepCost float64) {
		for _, dir := range dirs {
			next := current.Pos.Add(dir)
			if !g.IsWalkable(next) {
				continue
			}
			if _, settled := closed[next]; settled {
				continue
			}

			gCost := current.GCost + stepCost
			if neighbor, seen := openByPos[next]; seen {
				if gCost < neighbor.GCost {
					neighbor.GCost = gCost
					neighbor.Parent = current
					heap.Fix(open, neighbor.index)
				}
				continue
			}

			neighbor := &Node{
				Pos:    next,
				GCost:  gCost,
				HCost:  pf.heuristic(next, end),
				Parent: current,
			}
			heap.Push(open, neighbor)
			openByPos[next] = neighbor
		}
	}

	expand(CardinalDirections, 1.0)
	if pf.allowDiagonals {
		expand(DiagonalDirections, pf.diagonalCost)
	}
}

func (pf *PathFinder) heuristic(from, to Coordinate) float64 {
	if pf.allowDiagonals {
		return float64(from.ChebyshevDistance(to))
	}
	return float64(from.ManhattanDistance(to))
}

// reconstructRoute разворачивает цепочку Parent в маршрут start..end.
func reconstructRoute(goal *Node) []Coordinate {
	length := 0
	for n := goal; n != nil; n = n.Parent {
		length++
	}
	route := make([]Coordinate, length)
	for n, i := goal, length-1; n != nil; n, i = n.Parent, i-1 {
		route[i] = n.Pos
	}
	return route
}

// nodeHeap — куча открытых узлов. При равных FCost предпочитаем меньший
// HCost: это смещает поиск к цели и делает результат детерминированным.
type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	fi, fj := h[i].FCost(), h[j].FCost()
	if fi == fj {
		return h[i].HCost < h[j].HCost
	}
	return fi < fj
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *nodeHeap) Push(x any) {
	n := x.(*Node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}
