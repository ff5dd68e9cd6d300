// component/movement.go
package component

import "go-grid-defense/pkg/grid"

// Position — компонент позиции (мировые координаты)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64
}

// RouteFollow — компонент следования по маршруту
type RouteFollow struct {
	Waypoints    []grid.Coordinate
	CurrentIndex int
	ReachedEnd   bool
}
