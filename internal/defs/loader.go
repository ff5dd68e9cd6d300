// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// BoardLibrary is a map to hold all board definitions, keyed by their ID.
var BoardLibrary map[string]BoardDefinition

// LoadBoardDefinitions reads the board configuration file and populates the BoardLibrary.
func LoadBoardDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read board definitions file: %w", err)
	}

	var boardDefs []BoardDefinition
	if err := json.Unmarshal(file, &boardDefs); err != nil {
		return fmt.Errorf("failed to unmarshal board definitions: %w", err)
	}

	BoardLibrary = make(map[string]BoardDefinition)
	for _, def := range boardDefs {
		if err := validateBoardDefinition(def); err != nil {
			return fmt.Errorf("board %q: %w", def.ID, err)
		}
		BoardLibrary[def.ID] = def
	}

	fmt.Printf("Loaded %d board definitions\n", len(BoardLibrary))
	return nil
}

func validateBoardDefinition(def BoardDefinition) error {
	if def.Width <= 0 || def.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", def.Width, def.Height)
	}
	if def.CellSize <= 0 {
		return fmt.Errorf("invalid cell size %v", def.CellSize)
	}
	inBounds := func(c CoordDef) bool {
		return c.X >= 0 && c.X < def.Width && c.Y >= 0 && c.Y < def.Height
	}
	if !inBounds(def.Entry) {
		return fmt.Errorf("entry %+v outside %dx%d board", def.Entry, def.Width, def.Height)
	}
	if !inBounds(def.Exit) {
		return fmt.Errorf("exit %+v outside %dx%d board", def.Exit, def.Width, def.Height)
	}
	if def.Search.AllowDiagonals && def.Search.DiagonalCost < 1.0 {
		return fmt.Errorf("diagonal cost %v must be >= 1.0", def.Search.DiagonalCost)
	}
	return nil
}
