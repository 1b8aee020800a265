// internal/component/status_effect.go
package component

// StatusEffects holds the timed effects applied to an enemy by towers.
type StatusEffects struct {
	Frozen        bool
	FrozenTimer   float64
	Confused      bool
	ConfusedTimer float64
	Dots          []DotEffect
}

// DotEffect is one damage-over-time instance. Instances stack.
type DotEffect struct {
	DamagePerSecond float64
	Duration        float64 // сколько ещё секунд действует
}

// Freeze (re)starts the freeze timer.
func (s *StatusEffects) Freeze(duration float64) {
	s.Frozen = true
	s.FrozenTimer = duration
}

// Confuse (re)starts the confusion timer.
func (s *StatusEffects) Confuse(duration float64) {
	s.Confused = true
	s.ConfusedTimer = duration
}
