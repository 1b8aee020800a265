package system

import "forest-guardians/internal/entity"

// AuraSystem обрабатывает логику башен-аур.
type AuraSystem struct {
	world *entity.World
}

func NewAuraSystem(world *entity.World) *AuraSystem {
	return &AuraSystem{world: world}
}

// Update пересчитывает бафф каждой башни заново. Бафф не суммируется:
// при нескольких аурах в радиусе остаётся значение последней по порядку.
func (s *AuraSystem) Update() {
	for _, tower := range s.world.Towers {
		tower.AuraBuff = 0
	}
	for _, source := range s.world.Towers {
		if !source.Modifiers.HasAura() {
			continue
		}
		for _, target := range s.world.Towers {
			if target == source {
				continue
			}
			if source.Position.Distance(target.Position) <= source.Modifiers.AuraRange {
				target.AuraBuff = source.Modifiers.AuraBuff
			}
		}
	}
}
