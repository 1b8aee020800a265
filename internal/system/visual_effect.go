// internal/system/visual_effect.go
package system

import (
	"forest-guardians/internal/component"
	"forest-guardians/internal/event"
)

// VisualEffectSystem собирает короткоживущие эффекты из событий симуляции:
// линии атак и кольца взрывов. На саму симуляцию не влияет.
type VisualEffectSystem struct {
	lineLife    float64
	burstLife   float64
	burstRadius float64
	lines       []*component.AttackLine
	bursts      []*component.Burst
}

func NewVisualEffectSystem(lineLife, burstLife, burstRadius float64) *VisualEffectSystem {
	return &VisualEffectSystem{
		lineLife:    lineLife,
		burstLife:   burstLife,
		burstRadius: burstRadius,
	}
}

// Subscribe registers the system for the events it visualises.
func (s *VisualEffectSystem) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(s, event.TowerAttacked, event.DeathBurst)
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.AttackData:
		s.lines = append(s.lines, &component.AttackLine{
			From:     data.From,
			To:       data.To,
			Critical: data.Critical,
			Duration: s.lineLife,
		})
	case event.BurstData:
		s.bursts = append(s.bursts, &component.Burst{
			Center:    data.Position,
			MaxRadius: s.burstRadius,
			Duration:  s.burstLife,
		})
	}
}

// Update обновляет таймеры и удаляет завершившиеся эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	lines := s.lines[:0]
	for _, l := range s.lines {
		l.Timer += deltaTime
		if l.Timer < l.Duration {
			lines = append(lines, l)
		}
	}
	clear(s.lines[len(lines):])
	s.lines = lines

	bursts := s.bursts[:0]
	for _, b := range s.bursts {
		b.Timer += deltaTime
		if b.Timer < b.Duration {
			bursts = append(bursts, b)
		}
	}
	clear(s.bursts[len(bursts):])
	s.bursts = bursts
}

func (s *VisualEffectSystem) Lines() []*component.AttackLine { return s.lines }

func (s *VisualEffectSystem) Bursts() []*component.Burst { return s.bursts }

// Clear drops every active effect, e.g. after a reset.
func (s *VisualEffectSystem) Clear() {
	s.lines = nil
	s.bursts = nil
}
