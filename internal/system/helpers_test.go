package system

import (
	"testing"

	"forest-guardians/internal/component"
	"forest-guardians/internal/config"
	"forest-guardians/internal/entity"
	"forest-guardians/internal/event"
	"forest-guardians/pkg/board"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	world      *entity.World
	ledger     *Ledger
	dispatcher *event.Dispatcher
	events     *recorder
	balance    config.Balance
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	b, err := board.Generate(config.BoardSize, config.TileSize)
	if err != nil {
		t.Fatalf("board.Generate: %v", err)
	}
	balance := config.DefaultBalance()
	world := entity.NewWorld(b, balance.Economy.StartingResources, balance.Economy.StartingHealth)
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.SubscribeAll(rec,
		event.WaveStarted, event.WaveEnded, event.EnemySpawned, event.EnemyKilled,
		event.EnemyEscaped, event.DeathBurst, event.Defeat, event.TowerAttacked)
	return &fixture{
		world:      world,
		ledger:     NewLedger(world.Economy, balance.Economy.MaxHealth, dispatcher),
		dispatcher: dispatcher,
		events:     rec,
		balance:    balance,
	}
}

// addEnemy places an enemy at path waypoint idx.
func (f *fixture) addEnemy(idx int, e component.Enemy) *component.Enemy {
	e.ID = f.world.NewEntity()
	e.PathIndex = idx
	e.Position = f.world.Board.Path[idx]
	if e.MaxHealth == 0 {
		e.MaxHealth = e.Health
	}
	enemy := &e
	f.world.Enemies = append(f.world.Enemies, enemy)
	return enemy
}

func (f *fixture) addTower(pos board.Vec, c component.Combat) *component.Tower {
	tower := &component.Tower{ID: f.world.NewEntity(), Level: 1, Position: pos, Combat: c}
	f.world.Towers = append(f.world.Towers, tower)
	return tower
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
