package component

import (
	"forest-guardians/internal/types"
	"forest-guardians/pkg/board"
)

// Enemy представляет вражескую сущность, идущую по пути.
type Enemy struct {
	ID        types.EntityID
	DefID     string
	Name      string
	Health    float64
	MaxHealth float64
	Speed     float64
	Armor     float64
	Damage    int // урон экосистеме при достижении конца пути
	Reward    int
	PathIndex int // индекс последней достигнутой точки пути
	Position  board.Vec
	Status    StatusEffects

	SpawnsMinions bool
	AreaOnDeath   bool
	LifeDrain     float64
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// HealthFraction is the share of max health left, in [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 || e.Health <= 0 {
		return 0
	}
	if e.Health >= e.MaxHealth {
		return 1
	}
	return e.Health / e.MaxHealth
}
