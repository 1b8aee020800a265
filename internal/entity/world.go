// internal/entity/world.go
package entity

import (
	"forest-guardians/internal/component"
	"forest-guardians/internal/types"
	"forest-guardians/pkg/board"
)

// World — всё изменяемое состояние одной симуляции.
// Башни и враги хранятся срезами: порядок обхода влияет на выбор цели.
type World struct {
	GameTime float64
	NextID   types.EntityID
	Board    *board.Board
	Towers   []*component.Tower
	Enemies  []*component.Enemy
	Economy  *component.Economy
}

func NewWorld(b *board.Board, resources int, health float64) *World {
	return &World{
		NextID:  1,
		Board:   b,
		Economy: &component.Economy{Resources: resources, EcosystemHealth: health},
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Tower returns the tower with the given id, or nil.
func (w *World) Tower(id types.EntityID) *component.Tower {
	for _, t := range w.Towers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Enemy returns the enemy with the given id, or nil.
func (w *World) Enemy(id types.EntityID) *component.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// AddTower places t on its tile.
func (w *World) AddTower(t *component.Tower) {
	if tile := w.Board.Tile(t.TileID); tile != nil {
		tile.Occupied = true
		tile.TowerID = t.ID
	}
	w.Towers = append(w.Towers, t)
}

// RemoveTower deletes the tower and frees its tile. It reports whether the tower existed.
func (w *World) RemoveTower(id types.EntityID) bool {
	for i, t := range w.Towers {
		if t.ID != id {
			continue
		}
		if tile := w.Board.Tile(t.TileID); tile != nil && tile.TowerID == id {
			tile.Occupied = false
			tile.TowerID = 0
		}
		w.Towers = append(w.Towers[:i], w.Towers[i+1:]...)
		return true
	}
	return false
}

// LiveEnemies counts enemies that are still on the board.
func (w *World) LiveEnemies() int {
	return len(w.Enemies)
}
