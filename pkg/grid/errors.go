// pkg/grid/errors.go
package grid

import "errors"

var (
	// ErrOutOfBounds — координата за пределами сетки.
	ErrOutOfBounds = errors.New("coordinate out of grid bounds")
	// ErrAlreadyOccupied — клетка уже занята объектом.
	ErrAlreadyOccupied = errors.New("cell already occupied")
	// ErrInvalidEndpoint — вход или выход маршрута невалиден (за пределами
	// сетки либо выход непроходим). Ошибка конфигурации, не рантайма.
	ErrInvalidEndpoint = errors.New("invalid route endpoint")
	// ErrNoRoute — поиск исчерпал фронтир, не достигнув цели.
	ErrNoRoute = errors.New("no route exists")
)
