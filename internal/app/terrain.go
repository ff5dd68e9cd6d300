// internal/app/terrain.go
package app

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

// CarveTerrain помечает клетки непроходимым рельефом (design-time, без
// занятости) и обязательно пересчитывает маршрут.
func (b *Board) CarveTerrain(cells []grid.Coordinate) error {
	for _, c := range cells {
		if c == b.Entry || c == b.Exit {
			continue
		}
		b.Grid.SetUnwalkable(c)
	}
	b.EventDispatcher.Dispatch(event.Event{Type: event.TerrainCarved, Data: cells})
	return b.Coordinator.Recompute(b.Grid)
}

// pocketSizeWeights задаёт веса размеров карманов рельефа: одиночные клетки
// чаще, тройки реже.
var pocketSizeWeights = []int{5, 3, 2}

// GenerateTerrain вырезает случайные карманы рельефа, пока не исчерпает
// бюджет клеток. Каждый карман сперва применяется к снапшоту; если после
// него вход и выход оказываются разъединены, карман отбрасывается — живая
// сетка получает только проверенные правки.
func (b *Board) GenerateTerrain(rng *utils.PRNGService, budget int) []grid.Coordinate {
	if budget <= 0 {
		budget = config.CarveBudget
	}

	var carved []grid.Coordinate
	for tries := 0; len(carved) < budget && tries < config.CarveMaxTries; tries++ {
		pocket := b.randomPocket(rng, budget-len(carved))
		if len(pocket) == 0 {
			continue
		}

		speculative := b.Grid.Snapshot()
		for _, c := range pocket {
			speculative.SetUnwalkable(c)
		}
		if !b.Finder.RouteExists(speculative, b.Entry, b.Exit) {
			continue
		}

		for _, c := range pocket {
			b.Grid.SetUnwalkable(c)
		}
		carved = append(carved, pocket...)
	}

	if len(carved) > 0 {
		b.EventDispatcher.Dispatch(event.Event{Type: event.TerrainCarved, Data: carved})
		// Рельеф прошёл проверку достижимости, пересчёт не может не найти маршрут.
		_ = b.Coordinator.Recompute(b.Grid)
	}
	return carved
}

// randomPocket выбирает случайную свободную клетку и достраивает карман
// из её соседей до взвешенно выбранного размера.
func (b *Board) randomPocket(rng *utils.PRNGService, maxSize int) []grid.Coordinate {
	size := rng.ChooseWeighted(pocketSizeWeights) + 1
	if size > maxSize {
		size = maxSize
	}

	seed := grid.Coordinate{
		X: rng.Intn(b.Grid.Width()),
		Y: rng.Intn(b.Grid.Height()),
	}
	if !b.carveable(seed) {
		return nil
	}

	pocket := []grid.Coordinate{seed}
	current := seed
	for len(pocket) < size {
		dir := grid.CardinalDirections[rng.Intn(len(grid.CardinalDirections))]
		next := current.Add(dir)
		if !b.carveable(next) {
			break
		}
		pocket = append(pocket, next)
		current = next
	}
	return pocket
}

func (b *Board) carveable(c grid.Coordinate) bool {
	if c == b.Entry || c == b.Exit {
		return false
	}
	cell, err := b.Grid.CellAt(c)
	if err != nil {
		return false
	}
	return cell.Walkable && !cell.Occupied
}
