// internal/config/config.go
package config

const (
	DefaultBoardWidth  = 24
	DefaultBoardHeight = 16
	CellSize           = 19.0

	// Стоимость диагонального шага при 8-связной сетке.
	// Ортогональный шаг всегда стоит 1.0.
	DiagonalCost   = 1.4
	AllowDiagonals = false

	TickDuration = 1.0 / 60.0

	FollowerSpeed = 80.0 // мировых единиц в секунду

	CarveBudget   = 20 // максимум клеток рельефа за одну генерацию
	CarveMaxTries = 200
)
