package system

import (
	"testing"

	"forest-guardians/internal/event"
	"forest-guardians/pkg/board"
)

func TestVisualEffectsExpire(t *testing.T) {
	d := event.NewDispatcher()
	fx := NewVisualEffectSystem(0.15, 0.5, 10)
	fx.Subscribe(d)

	d.Dispatch(event.Event{Type: event.TowerAttacked, Data: event.AttackData{From: board.Vec{X: 1}, To: board.Vec{X: 4}}})
	d.Dispatch(event.Event{Type: event.DeathBurst, Data: event.BurstData{Position: board.Vec{Z: 2}}})

	if len(fx.Lines()) != 1 || len(fx.Bursts()) != 1 {
		t.Fatalf("lines=%d bursts=%d, want 1 and 1", len(fx.Lines()), len(fx.Bursts()))
	}

	fx.Update(0.25)
	if len(fx.Lines()) != 0 {
		t.Errorf("attack line survived past its lifetime")
	}
	if len(fx.Bursts()) != 1 {
		t.Fatalf("burst expired early")
	}
	if p := fx.Bursts()[0].Progress(); !almostEqual(p, 0.5) {
		t.Errorf("burst progress = %v, want 0.5", p)
	}

	fx.Update(0.3)
	if len(fx.Bursts()) != 0 {
		t.Errorf("burst survived past its lifetime")
	}
}

func TestVisualEffectsIgnoreOtherPayloads(t *testing.T) {
	fx := NewVisualEffectSystem(1, 1, 1)
	fx.OnEvent(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{}})
	if len(fx.Lines()) != 0 || len(fx.Bursts()) != 0 {
		t.Error("unrelated event produced an effect")
	}
}
