// internal/system/status_effect.go
package system

import "forest-guardians/internal/component"

// StatusEffectSystem управляет жизненным циклом эффектов на врагах.
type StatusEffectSystem struct{}

func NewStatusEffectSystem() *StatusEffectSystem {
	return &StatusEffectSystem{}
}

// Apply advances the effects of one enemy by deltaTime: damage over time first,
// then life drain, then the freeze and confusion timers.
func (s *StatusEffectSystem) Apply(enemy *component.Enemy, deltaTime float64) {
	status := &enemy.Status

	if len(status.Dots) > 0 {
		kept := status.Dots[:0]
		for _, dot := range status.Dots {
			enemy.Health -= dot.DamagePerSecond * deltaTime
			dot.Duration -= deltaTime
			if dot.Duration > 0 {
				kept = append(kept, dot)
			}
		}
		status.Dots = kept
	}

	if enemy.LifeDrain > 0 && enemy.Alive() {
		enemy.Health += enemy.LifeDrain * enemy.MaxHealth * deltaTime
		if enemy.Health > enemy.MaxHealth {
			enemy.Health = enemy.MaxHealth
		}
	}

	if status.Frozen {
		status.FrozenTimer -= deltaTime
		if status.FrozenTimer <= 0 {
			status.Frozen = false
			status.FrozenTimer = 0
		}
	}
	if status.Confused {
		status.ConfusedTimer -= deltaTime
		if status.ConfusedTimer <= 0 {
			status.Confused = false
			status.ConfusedTimer = 0
		}
	}
}
