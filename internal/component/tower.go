// component/tower.go
package component

import (
	"math"

	"forest-guardians/internal/defs"
	"forest-guardians/internal/types"
	"forest-guardians/pkg/board"
)

// Tower — стационарный защитник, стоящий ровно на одной клетке травы.
type Tower struct {
	ID        types.EntityID
	Element   defs.Element
	Name      string
	Evolution defs.Evolution // EvolutionNone для обычных башен
	Level     int
	TileID    board.TileID
	Position  board.Vec
	Combat    Combat
	Modifiers defs.Modifiers
	Effects   []string // подписи эффектов, накопленные через слияния
	AuraBuff  float64  // выставляется аурой на текущий тик
}

// HasEffect reports whether label is already among the tower's effects.
func (t *Tower) HasEffect(label string) bool {
	for _, e := range t.Effects {
		if e == label {
			return true
		}
	}
	return false
}

// AttackInterval is the time between two attacks, in seconds.
// A tower without attack speed never attacks.
func (t *Tower) AttackInterval() float64 {
	if t.Combat.AttackSpeed <= 0 {
		return math.Inf(1)
	}
	return 1 / t.Combat.AttackSpeed
}

// AddEffect appends label unless it is empty or already present.
func (t *Tower) AddEffect(label string) {
	if label == "" || t.HasEffect(label) {
		return
	}
	t.Effects = append(t.Effects, label)
}
