package system

import (
	"math"

	"forest-guardians/internal/component"
	"forest-guardians/internal/config"
	"forest-guardians/internal/defs"
)

// FusionSystem объединяет две башни в эволюционировавшую.
type FusionSystem struct {
	balance config.TowerBalance
}

func NewFusionSystem(balance config.TowerBalance) *FusionSystem {
	return &FusionSystem{balance: balance}
}

// Fuse computes the tower produced by fusing a and b. The result does not depend on the
// argument order except for its tile, which the caller takes from a. ID, tile and position
// are left for the caller to fill. Only effect labels are inherited from the sources;
// numeric modifiers come from the evolution bonus alone.
func (s *FusionSystem) Fuse(a, b *component.Tower) *component.Tower {
	evo := defs.LookupEvolution(a.Element, b.Element)
	evoDef, _ := defs.EvolutionDef(evo)

	fused := &component.Tower{
		Element:   defs.ElementFused,
		Name:      defs.FusedName(evo, a.Element, a.Name, b.Name),
		Evolution: evo,
		Level:     max(a.Level, b.Level) + s.balance.FusionLevelBonus,
		Combat: component.Combat{
			Damage:      (a.Combat.Damage + b.Combat.Damage) * s.balance.FusionDamageMul,
			AttackSpeed: (a.Combat.AttackSpeed + b.Combat.AttackSpeed) * s.balance.FusionSpeedMul,
			Range:       math.Max(a.Combat.Range, b.Combat.Range) + s.balance.FusionRangeBonus,
		},
		Modifiers: evoDef.Bonus,
	}

	for _, source := range []*component.Tower{a, b} {
		for _, label := range source.Effects {
			fused.AddEffect(label)
		}
	}
	fused.AddEffect(evoDef.Effect)
	return fused
}
