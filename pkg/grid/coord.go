// pkg/grid/coord.go
package grid

// Coordinate представляет клетку сетки в целочисленных координатах (X — колонка, Y — строка).
type Coordinate struct {
	X, Y int
}

// CardinalDirections defines the 4 orthogonal directions, starting from East
// and going counter-clockwise.
var CardinalDirections = []Coordinate{
	{X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1},
}

// DiagonalDirections defines the 4 diagonal directions.
var DiagonalDirections = []Coordinate{
	{X: 1, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1},
}

// Add возвращает сумму двух координат
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Subtract возвращает разность двух координат
func (c Coordinate) Subtract(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y}
}

// ManhattanDistance вычисляет манхэттенское расстояние |dx|+|dy|.
// Допустимая эвристика, когда диагональные шаги запрещены.
func (c Coordinate) ManhattanDistance(to Coordinate) int {
	return abs(c.X-to.X) + abs(c.Y-to.Y)
}

// ChebyshevDistance вычисляет расстояние Чебышёва max(|dx|,|dy|).
// Допустимая эвристика, когда диагональные шаги разрешены.
func (c Coordinate) ChebyshevDistance(to Coordinate) int {
	dx := abs(c.X - to.X)
	dy := abs(c.Y - to.Y)
	return max(dx, dy)
}

// ToWorld конвертирует координату клетки в мировые координаты (центр клетки)
func (c Coordinate) ToWorld(cellSize float64) (x, y float64) {
	x = (float64(c.X) + 0.5) * cellSize
	y = (float64(c.Y) + 0.5) * cellSize
	return
}

// WorldToCoordinate конвертирует мировые координаты в координату клетки
func WorldToCoordinate(x, y, cellSize float64) Coordinate {
	return Coordinate{X: int(x / cellSize), Y: int(y / cellSize)}
}
