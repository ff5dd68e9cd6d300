// pkg/grid/grid.go
package grid

// Cell хранит состояние одной клетки. Инвариант: Occupied => !Walkable.
// Обратное неверно: клетка может быть непроходимой "по дизайну" (рельеф),
// не будучи занятой размещённым объектом.
type Cell struct {
	Walkable bool
	Occupied bool
	Occupant any // opaque-ссылка на размещённый объект, nil если клетки нет
}

// Grid — единственный источник истины о занятости клеток.
// Размеры неизменяемы после создания; мутируется только содержимое клеток.
type Grid struct {
	width    int
	height   int
	cellSize float64
	cells    []Cell
}

// NewGrid создаёт сетку width x height, все клетки проходимы и свободны.
func NewGrid(width, height int, cellSize float64) *Grid {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Walkable: true}
	}
	return &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cells:    cells,
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// CellSize возвращает размер клетки для конвертации в мировые координаты.
func (g *Grid) CellSize() float64 { return g.cellSize }

// InBounds проверяет, что координата лежит внутри сетки.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// CellAt возвращает клетку по координате.
func (g *Grid) CellAt(c Coordinate) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, ErrOutOfBounds
	}
	return g.cells[c.Y*g.width+c.X], nil
}

// IsWalkable сообщает, проходима ли клетка. Координаты вне сетки непроходимы.
func (g *Grid) IsWalkable(c Coordinate) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[c.Y*g.width+c.X].Walkable
}

// SetOccupant занимает клетку объектом: Occupied = true, Walkable = false.
// Вызывающий обязан провалидировать размещение заранее; повторное занятие —
// ошибка ErrAlreadyOccupied без каких-либо изменений состояния.
func (g *Grid) SetOccupant(c Coordinate, occupant any) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	idx := c.Y*g.width + c.X
	if g.cells[idx].Occupied {
		return ErrAlreadyOccupied
	}
	g.cells[idx] = Cell{Walkable: false, Occupied: true, Occupant: occupant}
	return nil
}

// ClearOccupant освобождает клетку. Если клетка не была занята — ничего не делает.
func (g *Grid) ClearOccupant(c Coordinate) {
	if !g.InBounds(c) {
		return
	}
	idx := c.Y*g.width + c.X
	if !g.cells[idx].Occupied {
		return
	}
	g.cells[idx] = Cell{Walkable: true}
}

// SetUnwalkable помечает клетку непроходимым рельефом. Занятость не трогает.
func (g *Grid) SetUnwalkable(c Coordinate) {
	if !g.InBounds(c) {
		return
	}
	idx := c.Y*g.width + c.X
	g.cells[idx].Walkable = false
}

// Snapshot делает глубокую копию сетки с независимым хранилищем.
// Спекулятивные правки копии никогда не затрагивают живую сетку.
func (g *Grid) Snapshot() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:    g.width,
		height:   g.height,
		cellSize: g.cellSize,
		cells:    cells,
	}
}
