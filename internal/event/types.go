// internal/event/types.go
package event

const (
	ObstaclePlaced    EventType = "ObstaclePlaced"    // Препятствие размещено
	ObstacleRemoved   EventType = "ObstacleRemoved"   // Препятствие убрано
	RouteChanged      EventType = "RouteChanged"      // Маршрут переопубликован
	RouteRecalcFailed EventType = "RouteRecalcFailed" // Пересчёт не нашёл маршрута
	TerrainCarved     EventType = "TerrainCarved"
)
