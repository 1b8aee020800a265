// internal/component/visual.go
package component

import "forest-guardians/pkg/board"

// AttackLine — след выстрела башни, живёт Duration секунд.
type AttackLine struct {
	From, To board.Vec
	Critical bool
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64
}

// Burst — расходящееся кольцо взрыва при гибели врага.
type Burst struct {
	Center    board.Vec
	MaxRadius float64
	Timer     float64
	Duration  float64
}

// Progress returns how far the burst has expanded, in [0, 1].
func (b *Burst) Progress() float64 {
	if b.Duration <= 0 {
		return 1
	}
	return min(b.Timer/b.Duration, 1)
}
