package system

import (
	"testing"

	"forest-guardians/internal/component"
	"forest-guardians/internal/event"
)

func newMovement(f *fixture) *MovementSystem {
	return NewMovementSystem(f.world, f.ledger, NewStatusEffectSystem(), f.balance.Enemies, f.dispatcher)
}

func TestMovementStepsTowardNextWaypoint(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(0, component.Enemy{Health: 10, Speed: 1})
	start := enemy.Position

	newMovement(f).Update(0.1)

	if got := start.Distance(enemy.Position); !almostEqual(got, 0.1) {
		t.Errorf("moved %v, want 0.1", got)
	}
	next := f.world.Board.Path[1]
	if enemy.Position.Distance(next) >= start.Distance(next) {
		t.Errorf("enemy moved away from the next waypoint: %+v", enemy.Position)
	}
}

func TestMovementNeverOvershoots(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(0, component.Enemy{Health: 10, Speed: 100})
	movement := newMovement(f)

	movement.Update(0.1)
	if enemy.Position != f.world.Board.Path[1] || enemy.PathIndex != 0 {
		t.Fatalf("position=%+v index=%d, want exactly on waypoint 1 with index 0", enemy.Position, enemy.PathIndex)
	}
	movement.Update(0.1)
	if enemy.PathIndex != 1 {
		t.Errorf("index = %d, want 1", enemy.PathIndex)
	}
}

func TestZeroSpeedEnemyNeverEscapes(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(0, component.Enemy{Health: 10, Speed: 0})
	movement := newMovement(f)

	for i := 0; i < 1000; i++ {
		movement.Update(0.1)
	}
	if enemy.PathIndex != 0 || enemy.Position != f.world.Board.Path[0] {
		t.Errorf("index=%d position=%+v, want stuck at the entry", enemy.PathIndex, enemy.Position)
	}
	if len(f.world.Enemies) != 1 || f.ledger.EcosystemHealth() != 100 {
		t.Errorf("enemies=%d health=%v, want 1 and 100", len(f.world.Enemies), f.ledger.EcosystemHealth())
	}
}

func TestEscapeDamagesEcosystemOnce(t *testing.T) {
	f := newFixture(t)
	last := len(f.world.Board.Path) - 1
	enemy := f.addEnemy(last-1, component.Enemy{Health: 10, Speed: 1, Damage: 3})
	enemy.Position = f.world.Board.Path[last]
	movement := newMovement(f)

	movement.Update(0.1)
	movement.Update(0.1)

	if got := f.ledger.EcosystemHealth(); got != 97 {
		t.Errorf("ecosystem = %v, want 97", got)
	}
	if len(f.world.Enemies) != 0 {
		t.Errorf("escaped enemy still listed")
	}
	if n := f.events.count(event.EnemyEscaped); n != 1 {
		t.Errorf("EnemyEscaped = %d, want 1", n)
	}
}

func TestEscapeIgnoresHealth(t *testing.T) {
	f := newFixture(t)
	last := len(f.world.Board.Path) - 1
	f.addEnemy(last, component.Enemy{Health: -5, MaxHealth: 10, Damage: 4, Reward: 50})

	newMovement(f).Update(0.1)

	if f.ledger.EcosystemHealth() != 96 || f.ledger.Resources() != 100 {
		t.Errorf("health=%v resources=%d, want 96 and no reward", f.ledger.EcosystemHealth(), f.ledger.Resources())
	}
}

func TestFrozenEnemyHoldsPositionButCanDie(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(0, component.Enemy{Health: 10, Speed: 1})
	enemy.Status.Freeze(2)
	start := enemy.Position
	movement := newMovement(f)

	movement.Update(0.1)
	if enemy.Position != start {
		t.Fatalf("frozen enemy moved to %+v", enemy.Position)
	}
	if !almostEqual(enemy.Status.FrozenTimer, 1.9) {
		t.Errorf("freeze timer = %v, want 1.9", enemy.Status.FrozenTimer)
	}

	enemy.Health = 0
	movement.Update(0.1)
	if len(f.world.Enemies) != 0 || f.ledger.Resources() != 100+enemy.Reward {
		t.Errorf("frozen dead enemy not removed")
	}
}

func TestDamageOverTimeKillsBeforeCombat(t *testing.T) {
	f := newFixture(t)
	enemy := f.addEnemy(0, component.Enemy{Health: 1, Speed: 0, Reward: 7})
	enemy.Status.Dots = []component.DotEffect{{DamagePerSecond: 20, Duration: 3}}

	newMovement(f).Update(0.1)

	if len(f.world.Enemies) != 0 {
		t.Fatalf("enemy survived its damage over time")
	}
	if f.ledger.Resources() != 107 {
		t.Errorf("resources = %d, want 107", f.ledger.Resources())
	}
}

func TestDeathSpawnsMinionsAfterPass(t *testing.T) {
	f := newFixture(t)
	parent := f.addEnemy(3, component.Enemy{
		Health: 0, MaxHealth: 80, Speed: 1, Armor: 5, Damage: 5, Reward: 30,
		SpawnsMinions: true, AreaOnDeath: true,
	})
	survivor := f.addEnemy(1, component.Enemy{Health: 10})

	newMovement(f).Update(0.1)

	enemies := f.world.Enemies
	if len(enemies) != 4 || enemies[0] != survivor {
		t.Fatalf("got %d enemies, want the survivor followed by 3 minions", len(enemies))
	}
	for _, m := range enemies[1:] {
		if m.DefID != "minion" || m.PathIndex != parent.PathIndex || m.Position != parent.Position {
			t.Errorf("minion placement = %+v", m)
		}
		if !almostEqual(m.Health, 24) || m.Health != m.MaxHealth || m.Armor != 4 || m.Damage != 2 || m.Reward != 6 || !almostEqual(m.Speed, 1.2) {
			t.Errorf("minion stats = health %v armor %v damage %d reward %d speed %v", m.Health, m.Armor, m.Damage, m.Reward, m.Speed)
		}
	}
	if f.ledger.Resources() != 130 {
		t.Errorf("resources = %d, want 130", f.ledger.Resources())
	}
	if f.ledger.EcosystemHealth() != 98 {
		t.Errorf("ecosystem = %v, want 98 after the death burst", f.ledger.EcosystemHealth())
	}
	if n := f.events.count(event.DeathBurst); n != 1 {
		t.Errorf("DeathBurst = %d, want 1", n)
	}
}

func TestStatusTimersAndLifeDrain(t *testing.T) {
	enemy := &component.Enemy{Health: 50, MaxHealth: 100, LifeDrain: 0.02}
	enemy.Status.Confuse(0.15)
	enemy.Status.Dots = []component.DotEffect{{DamagePerSecond: 10, Duration: 0.1}}
	status := NewStatusEffectSystem()

	status.Apply(enemy, 0.1)
	// −1 от DoT, +0.2 от вытягивания жизни.
	if !almostEqual(enemy.Health, 49.2) {
		t.Errorf("health = %v, want 49.2", enemy.Health)
	}
	if len(enemy.Status.Dots) != 0 {
		t.Errorf("expired dot kept: %+v", enemy.Status.Dots)
	}
	if !enemy.Status.Confused {
		t.Fatal("confusion ended early")
	}
	status.Apply(enemy, 0.1)
	if enemy.Status.Confused {
		t.Error("confusion did not expire")
	}

	enemy.Health = 99.99
	status.Apply(enemy, 1)
	if enemy.Health != 100 {
		t.Errorf("drain overheal: %v", enemy.Health)
	}
}

func TestConfusionPerturbsDirection(t *testing.T) {
	f := newFixture(t)
	f.world.GameTime = 0.1
	straight := f.addEnemy(0, component.Enemy{Health: 10, Speed: 1})
	confused := f.addEnemy(0, component.Enemy{Health: 10, Speed: 1})
	confused.Status.Confuse(3)

	newMovement(f).Update(0.1)

	if straight.Position == confused.Position {
		t.Error("confused enemy moved straight")
	}
	start := f.world.Board.Path[0]
	if got := start.Distance(confused.Position); !almostEqual(got, 0.1) {
		t.Errorf("confused step = %v, want 0.1", got)
	}
}
