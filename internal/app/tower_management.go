// internal/app/tower_management.go
package app

import (
	"fmt"

	"forest-guardians/internal/component"
	"forest-guardians/internal/defs"
	"forest-guardians/internal/event"
	"forest-guardians/internal/types"
	"forest-guardians/pkg/board"
)

// BuildTower places a level-1 tower of a base element on a free grass tile.
func (g *Game) BuildTower(tileID board.TileID, element defs.Element) (types.EntityID, error) {
	def, ok := defs.BaseStatsFor(element)
	if !ok {
		return 0, fmt.Errorf("%w: %v towers cannot be built", ErrInvalidPlacement, element)
	}
	tile := g.World.Board.Tile(tileID)
	if tile == nil {
		return 0, fmt.Errorf("%w: unknown tile %d", ErrInvalidPlacement, tileID)
	}
	if tile.Occupied || tile.Type != board.Grass {
		return 0, fmt.Errorf("%w: tile %d is %s (occupied: %v)", ErrInvalidPlacement, tileID, tile.Type, tile.Occupied)
	}
	if !g.Ledger.TryDebit(g.buildCost(element)) {
		return 0, ErrInsufficientResources
	}

	tower := &component.Tower{
		ID:       g.World.NewEntity(),
		Element:  element,
		Name:     def.Name,
		Level:    1,
		TileID:   tile.ID,
		Position: tile.Position,
		Combat: component.Combat{
			Damage:      def.Damage,
			AttackSpeed: def.AttackSpeed,
			Range:       def.Range,
		},
		Modifiers: def.Modifiers,
	}
	tower.AddEffect(def.Effect)
	g.World.AddTower(tower)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		TowerID: tower.ID,
		Name:    tower.Name,
		Level:   tower.Level,
	}})
	return tower.ID, nil
}

// buildCost returns the price of a tower of the given element.
func (g *Game) buildCost(element defs.Element) int {
	if element == defs.ElementLife {
		return g.Balance.Towers.LifeCost
	}
	return g.Balance.Towers.Cost
}

// UpgradeTower raises a tower by one level, up to the level cap.
func (g *Game) UpgradeTower(id types.EntityID) error {
	tower := g.World.Tower(id)
	if tower == nil {
		return fmt.Errorf("%w: tower %d", ErrNotFound, id)
	}
	balance := g.Balance.Towers
	if tower.Level >= balance.MaxLevel {
		return ErrMaxLevelReached
	}
	if !g.Ledger.TryDebit(balance.UpgradeCost) {
		return ErrInsufficientResources
	}

	tower.Level++
	tower.Combat.Damage *= balance.UpgradeDamageMul
	tower.Combat.AttackSpeed *= balance.UpgradeSpeedMul
	tower.Combat.Range += balance.UpgradeRangeBonus

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		TowerID: tower.ID,
		Name:    tower.Name,
		Level:   tower.Level,
	}})
	return nil
}

// FuseTowers replaces towers a and b with their evolution, placed on a's tile.
// b's tile is freed.
func (g *Game) FuseTowers(a, b types.EntityID) (types.EntityID, error) {
	if a == b {
		return 0, fmt.Errorf("%w: tower %d cannot fuse with itself", ErrInvalidFusion, a)
	}
	towerA, towerB := g.World.Tower(a), g.World.Tower(b)
	if towerA == nil {
		return 0, fmt.Errorf("%w: tower %d", ErrNotFound, a)
	}
	if towerB == nil {
		return 0, fmt.Errorf("%w: tower %d", ErrNotFound, b)
	}
	if !g.Ledger.TryDebit(g.Balance.Towers.FusionCost) {
		return 0, ErrInsufficientResources
	}

	fused := g.FusionSystem.Fuse(towerA, towerB)
	fused.ID = g.World.NewEntity()
	fused.TileID = towerA.TileID
	fused.Position = towerA.Position

	g.World.RemoveTower(a)
	g.World.RemoveTower(b)
	g.World.AddTower(fused)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowersFused, Data: event.FusionData{
		SourceA: a,
		SourceB: b,
		Result:  fused.ID,
		Name:    fused.Name,
	}})
	return fused.ID, nil
}
