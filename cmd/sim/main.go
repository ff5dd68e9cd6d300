// cmd/sim/main.go
package main

import (
	"flag"
	"log"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

func main() {
	boardsPath := flag.String("boards", "assets/boards.json", "path to board definitions")
	boardID := flag.String("board", "BOARD_OPEN_FIELD", "board definition to simulate")
	seed := flag.Int64("seed", 0, "PRNG seed (0 = time-based)")
	ticks := flag.Int("ticks", 1200, "simulation ticks to run")
	placements := flag.Int("placements", 12, "obstacles to place during the run")
	flag.Parse()

	board := loadBoard(*boardsPath, *boardID)

	rng := utils.NewPRNGService(*seed)
	carved := board.GenerateTerrain(rng, config.CarveBudget)
	log.Printf("board %dx%d, carved %d terrain cells, initial route %d cells",
		board.Grid.Width(), board.Grid.Height(), len(carved), len(board.CurrentRoute()))

	ecs := entity.NewECS()
	movement := system.NewMovementSystem(ecs, board.Coordinator, board.Grid.CellSize(), board.EventDispatcher)

	placed := 0
	for tick := 0; tick < *ticks; tick++ {
		// Каждые 60 тиков пробуем поставить препятствие в случайной клетке.
		if tick%60 == 0 && placed < *placements {
			if target, ok := pickPlacement(board, rng); ok {
				if _, err := board.CommitOccupancy(target); err != nil {
					log.Printf("placement at %v rejected: %v", target, err)
				} else {
					placed++
					log.Printf("tick %4d: obstacle at %v, route now %d cells",
						tick, target, len(board.CurrentRoute()))
				}
			}
		}

		if tick%90 == 0 {
			movement.SpawnFollower(config.FollowerSpeed)
		}
		movement.Update(config.TickDuration)
	}

	log.Printf("done: %d obstacles placed, final route %d cells", board.ObstacleCount(), len(board.CurrentRoute()))
}

// loadBoard собирает доску из файла определений; если файла или записи нет,
// откатывается к дефолтной доске из config.
func loadBoard(path, id string) *app.Board {
	if err := defs.LoadBoardDefinitions(path); err != nil {
		log.Printf("%v; using the default board", err)
		return defaultBoard()
	}
	def, ok := defs.BoardLibrary[id]
	if !ok {
		log.Printf("unknown board %q; using the default board", id)
		return defaultBoard()
	}
	board, err := app.NewBoardFromDefinition(def)
	if err != nil {
		log.Fatal(err)
	}
	return board
}

func defaultBoard() *app.Board {
	board, err := app.NewBoard(
		config.DefaultBoardWidth, config.DefaultBoardHeight, config.CellSize,
		grid.Coordinate{X: 0, Y: config.DefaultBoardHeight / 2},
		grid.Coordinate{X: config.DefaultBoardWidth - 1, Y: config.DefaultBoardHeight / 2},
		config.AllowDiagonals, config.DiagonalCost,
	)
	if err != nil {
		log.Fatal(err)
	}
	return board
}

// pickPlacement перебирает случайных кандидатов, пока валидатор не одобрит
// одного. Отказ валидатора ничего не стоит: живая сетка не мутируется.
func pickPlacement(board *app.Board, rng *utils.PRNGService) (grid.Coordinate, bool) {
	for try := 0; try < 32; try++ {
		target := grid.Coordinate{
			X: rng.Intn(board.Grid.Width()),
			Y: rng.Intn(board.Grid.Height()),
		}
		if board.CanOccupy(target) {
			return target, true
		}
	}
	return grid.Coordinate{}, false
}
