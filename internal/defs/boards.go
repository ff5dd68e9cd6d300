// internal/defs/boards.go
package defs

// CoordDef is a grid coordinate as it appears in board definition files.
type CoordDef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SearchDef configures the pathfinder for a board.
type SearchDef struct {
	AllowDiagonals bool    `json:"allow_diagonals"`
	DiagonalCost   float64 `json:"diagonal_cost,omitempty"`
}

// BoardDefinition holds all the static data for a specific board layout.
type BoardDefinition struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	CellSize float64    `json:"cell_size"`
	Entry    CoordDef   `json:"entry"`
	Exit     CoordDef   `json:"exit"`
	Terrain  []CoordDef `json:"terrain,omitempty"` // клетки, непроходимые по дизайну
	Search   SearchDef  `json:"search"`
}
