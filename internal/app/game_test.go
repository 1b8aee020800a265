package app

import (
	"errors"
	"testing"

	"forest-guardians/internal/component"
	"forest-guardians/internal/config"
	"forest-guardians/internal/defs"
	"forest-guardians/internal/event"
	"forest-guardians/pkg/board"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(config.DefaultBalance(), 1)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func tileAt(t *testing.T, g *Game, x, z int) board.TileID {
	t.Helper()
	tile := g.World.Board.TileAt(x, z)
	if tile == nil {
		t.Fatalf("no tile at (%d, %d)", x, z)
	}
	return tile.ID
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestNewGameRejectsInvalidBalance(t *testing.T) {
	balance := config.DefaultBalance()
	balance.Waves.SpawnInterval = 0
	if _, err := NewGame(balance, 1); err == nil {
		t.Fatal("NewGame accepted a zero spawn interval")
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	if snap.Resources != 100 || snap.EcosystemHealth != 100 || snap.Wave != 0 || snap.WaveInProgress || snap.Defeat {
		t.Errorf("initial snapshot = %+v", snap)
	}
	if len(snap.Path) != 40 || len(snap.Tiles) != 225 {
		t.Errorf("path=%d tiles=%d, want 40 and 225", len(snap.Path), len(snap.Tiles))
	}
}

func TestBuildTowerDebitsCost(t *testing.T) {
	g := newTestGame(t)

	id, err := g.BuildTower(tileAt(t, g, 0, 0), defs.ElementWater)
	if err != nil {
		t.Fatalf("BuildTower(Water): %v", err)
	}
	if g.Ledger.Resources() != 75 {
		t.Errorf("resources = %d, want 75", g.Ledger.Resources())
	}
	tile := g.World.Board.TileAt(0, 0)
	if !tile.Occupied || tile.TowerID != id {
		t.Errorf("tile = %+v, want occupied by %d", tile, id)
	}
	tower := g.World.Tower(id)
	if tower.Level != 1 || tower.Combat.Damage != 2 || tower.Combat.Range != 5 || tower.Modifiers.SlowFactor != 0.5 {
		t.Errorf("tower = %+v", tower)
	}
	if tower.Position != tile.Position {
		t.Errorf("tower position %+v, tile %+v", tower.Position, tile.Position)
	}

	if _, err := g.BuildTower(tileAt(t, g, 0, 1), defs.ElementLife); err != nil {
		t.Fatalf("BuildTower(Life): %v", err)
	}
	if g.Ledger.Resources() != 40 {
		t.Errorf("resources after Life = %d, want 40", g.Ledger.Resources())
	}
}

func TestBuildTowerInsufficientResources(t *testing.T) {
	g := newTestGame(t)
	g.World.Economy.Resources = 20

	_, err := g.BuildTower(tileAt(t, g, 0, 0), defs.ElementWater)
	if !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("err = %v, want ErrInsufficientResources", err)
	}
	if g.Ledger.Resources() != 20 {
		t.Errorf("resources = %d, want 20", g.Ledger.Resources())
	}
	if len(g.World.Towers) != 0 || g.World.Board.TileAt(0, 0).Occupied {
		t.Error("rejected build changed the board")
	}
}

func TestBuildTowerInvalidPlacement(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.BuildTower(tileAt(t, g, 0, 0), defs.ElementFire); err != nil {
		t.Fatalf("BuildTower: %v", err)
	}

	tests := []struct {
		name    string
		tile    board.TileID
		element defs.Element
	}{
		{"path tile", tileAt(t, g, 2, 2), defs.ElementFire},
		{"water tile", tileAt(t, g, 1, 7), defs.ElementFire},
		{"occupied tile", tileAt(t, g, 0, 0), defs.ElementFire},
		{"unknown tile", -1, defs.ElementFire},
		{"fused element", tileAt(t, g, 1, 1), defs.ElementFused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := g.Ledger.Resources()
			_, err := g.BuildTower(tt.tile, tt.element)
			if !errors.Is(err, ErrInvalidPlacement) {
				t.Errorf("err = %v, want ErrInvalidPlacement", err)
			}
			if g.Ledger.Resources() != before {
				t.Errorf("resources changed to %d", g.Ledger.Resources())
			}
		})
	}
}

func TestUpgradeFireTower(t *testing.T) {
	g := newTestGame(t)
	g.World.Economy.Resources = 1000
	id, err := g.BuildTower(tileAt(t, g, 0, 0), defs.ElementFire)
	if err != nil {
		t.Fatalf("BuildTower: %v", err)
	}
	tower := g.World.Tower(id)

	steps := []struct {
		damage, speed, rng float64
	}{
		{4.5, 1.2, 6},
		{6.75, 1.44, 7},
	}
	for i, want := range steps {
		if err := g.UpgradeTower(id); err != nil {
			t.Fatalf("upgrade %d: %v", i+1, err)
		}
		c := tower.Combat
		if !almostEqual(c.Damage, want.damage) || !almostEqual(c.AttackSpeed, want.speed) || c.Range != want.rng {
			t.Errorf("after upgrade %d: %+v, want %+v", i+1, c, want)
		}
	}
	if tower.Level != 3 || g.Ledger.Resources() != 1000-25-100 {
		t.Errorf("level=%d resources=%d", tower.Level, g.Ledger.Resources())
	}

	before := tower.Combat
	if err := g.UpgradeTower(id); !errors.Is(err, ErrMaxLevelReached) {
		t.Fatalf("third upgrade err = %v, want ErrMaxLevelReached", err)
	}
	if tower.Combat != before || tower.Level != 3 || g.Ledger.Resources() != 875 {
		t.Error("rejected upgrade changed state")
	}
}

func TestUpgradeErrors(t *testing.T) {
	g := newTestGame(t)
	if err := g.UpgradeTower(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown tower err = %v, want ErrNotFound", err)
	}

	id, err := g.BuildTower(tileAt(t, g, 0, 0), defs.ElementAir)
	if err != nil {
		t.Fatalf("BuildTower: %v", err)
	}
	g.World.Economy.Resources = 49
	if err := g.UpgradeTower(id); !errors.Is(err, ErrInsufficientResources) {
		t.Errorf("err = %v, want ErrInsufficientResources", err)
	}
	if g.World.Tower(id).Level != 1 || g.Ledger.Resources() != 49 {
		t.Error("rejected upgrade changed state")
	}
}

func TestFuseWaterAndFireInEitherOrder(t *testing.T) {
	for _, waterFirst := range []bool{true, false} {
		g := newTestGame(t)
		g.World.Economy.Resources = 500
		tileA, tileB := tileAt(t, g, 0, 0), tileAt(t, g, 0, 1)
		first, second := defs.ElementWater, defs.ElementFire
		if !waterFirst {
			first, second = second, first
		}
		a, _ := g.BuildTower(tileA, first)
		b, _ := g.BuildTower(tileB, second)
		if err := g.UpgradeTower(b); err != nil {
			t.Fatalf("UpgradeTower: %v", err)
		}

		fusedID, err := g.FuseTowers(a, b)
		if err != nil {
			t.Fatalf("FuseTowers: %v", err)
		}
		fused := g.World.Tower(fusedID)
		if fused.Evolution != defs.EvolutionSteam || !fused.Modifiers.AreaEffect {
			t.Errorf("waterFirst=%v: evolution=%v area=%v, want Steam with area", waterFirst, fused.Evolution, fused.Modifiers.AreaEffect)
		}
		if fused.Level != 3 {
			t.Errorf("level = %d, want 3", fused.Level)
		}
		if fused.TileID != tileA || g.World.Board.Tile(tileA).TowerID != fusedID {
			t.Errorf("fused tower not on tile A")
		}
		if g.World.Board.Tile(tileB).Occupied {
			t.Error("tile B still occupied")
		}
		if g.World.Tower(a) != nil || g.World.Tower(b) != nil || len(g.World.Towers) != 1 {
			t.Error("source towers not removed")
		}
		if g.Ledger.Resources() != 500-50-50-75 {
			t.Errorf("resources = %d, want 325", g.Ledger.Resources())
		}
	}
}

func TestFuseErrors(t *testing.T) {
	g := newTestGame(t)
	a, _ := g.BuildTower(tileAt(t, g, 0, 0), defs.ElementEarth)
	b, _ := g.BuildTower(tileAt(t, g, 0, 1), defs.ElementAir)

	if _, err := g.FuseTowers(a, a); !errors.Is(err, ErrInvalidFusion) {
		t.Errorf("self fusion err = %v, want ErrInvalidFusion", err)
	}
	if _, err := g.FuseTowers(a, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown tower err = %v, want ErrNotFound", err)
	}
	if g.Ledger.Resources() != 50 {
		t.Fatalf("resources = %d, want 50", g.Ledger.Resources())
	}
	if _, err := g.FuseTowers(a, b); !errors.Is(err, ErrInsufficientResources) {
		t.Errorf("err = %v, want ErrInsufficientResources", err)
	}
	if len(g.World.Towers) != 2 || g.Ledger.Resources() != 50 {
		t.Error("rejected fusion changed state")
	}
}

func TestStartFirstWave(t *testing.T) {
	g := newTestGame(t)
	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	snap := g.Snapshot()
	if snap.Wave != 1 || !snap.WaveInProgress || snap.Resources != 130 {
		t.Errorf("snapshot = wave %d inProgress %v resources %d, want 1/true/130", snap.Wave, snap.WaveInProgress, snap.Resources)
	}
	if err := g.StartWave(); !errors.Is(err, ErrWaveInProgress) {
		t.Errorf("second StartWave err = %v, want ErrWaveInProgress", err)
	}

	for i := 0; i < 45; i++ {
		g.Update(0.1)
	}
	if len(g.World.Enemies) != 5 {
		t.Errorf("enemies after 4.5s = %d, want 5", len(g.World.Enemies))
	}
	for i := 0; i < 15; i++ {
		g.Update(0.1)
	}
	if g.WaveSystem.Spawning() || !g.World.Economy.WaveInProgress {
		t.Errorf("spawning=%v inProgress=%v, want false/true", g.WaveSystem.Spawning(), g.World.Economy.WaveInProgress)
	}
	if err := g.StartWave(); !errors.Is(err, ErrWaveInProgress) {
		t.Errorf("StartWave with live enemies err = %v, want ErrWaveInProgress", err)
	}
}

func TestCombatThroughGame(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.BuildTower(tileAt(t, g, 3, 6), defs.ElementFire)
	tower := g.World.Tower(id)
	tower.Combat.Damage = 10

	enemy := &component.Enemy{ID: g.World.NewEntity(), Health: 100, MaxHealth: 100, Armor: 5, Position: g.World.Board.Path[0]}
	g.World.Enemies = append(g.World.Enemies, enemy)

	// Первая атака на 11-м тике: сумма десяти 0.1 чуть меньше 1.
	for i := 0; i < 15; i++ {
		g.Update(0.1)
	}
	if enemy.Health != 95 {
		t.Errorf("health = %v, want 95", enemy.Health)
	}
}

func TestZeroSpeedEnemyNeverEscapes(t *testing.T) {
	g := newTestGame(t)
	enemy := &component.Enemy{ID: g.World.NewEntity(), Health: 10, MaxHealth: 10, Damage: 5, Position: g.World.Board.Path[0]}
	g.World.Enemies = append(g.World.Enemies, enemy)

	for _, dt := range []float64{0.001, 0.05, 0.1, 3} {
		for i := 0; i < 200; i++ {
			g.Update(dt)
		}
	}
	if enemy.PathIndex != 0 || len(g.World.Enemies) != 1 || g.Ledger.EcosystemHealth() != 100 {
		t.Errorf("index=%d enemies=%d health=%v", enemy.PathIndex, len(g.World.Enemies), g.Ledger.EcosystemHealth())
	}
}

func TestEscapeDamagesOnce(t *testing.T) {
	g := newTestGame(t)
	path := g.World.Board.Path
	last := len(path) - 1
	enemy := &component.Enemy{ID: g.World.NewEntity(), Health: 10, MaxHealth: 10, Speed: 1, Damage: 7, PathIndex: last - 1, Position: path[last]}
	g.World.Enemies = append(g.World.Enemies, enemy)

	for i := 0; i < 5; i++ {
		g.Update(0.1)
	}
	if g.Ledger.EcosystemHealth() != 93 {
		t.Errorf("ecosystem = %v, want 93", g.Ledger.EcosystemHealth())
	}
	if len(g.World.Enemies) != 0 {
		t.Error("escaped enemy still present")
	}
}

func TestDefeatHaltsSimulation(t *testing.T) {
	g := newTestGame(t)
	var defeats int
	g.EventDispatcher.Subscribe(event.Defeat, event.ListenerFunc(func(event.Event) { defeats++ }))

	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	g.World.Economy.EcosystemHealth = 3
	path := g.World.Board.Path
	last := len(path) - 1
	g.World.Enemies = append(g.World.Enemies, &component.Enemy{
		ID: g.World.NewEntity(), Health: 10, MaxHealth: 10, Damage: 5, PathIndex: last, Position: path[last],
	})

	g.Update(0.1)
	snap := g.Snapshot()
	if !snap.Defeat || snap.DefeatWave != 1 || snap.EcosystemHealth != 0 {
		t.Fatalf("snapshot = defeat %v wave %d health %v", snap.Defeat, snap.DefeatWave, snap.EcosystemHealth)
	}
	if snap.WaveInProgress {
		t.Error("snapshot reports a running wave after defeat")
	}

	clock := g.World.GameTime
	enemies := len(g.World.Enemies)
	for i := 0; i < 50; i++ {
		g.Update(0.1)
	}
	if g.World.GameTime != clock || len(g.World.Enemies) != enemies {
		t.Error("simulation advanced after defeat")
	}
	if defeats != 1 {
		t.Errorf("Defeat dispatched %d times, want 1", defeats)
	}
	if err := g.StartWave(); !errors.Is(err, ErrDefeated) {
		t.Errorf("StartWave after defeat err = %v, want ErrDefeated", err)
	}

	if err := g.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	snap = g.Snapshot()
	if snap.Defeat || snap.Wave != 0 || snap.EcosystemHealth != 100 || len(snap.Enemies) != 0 {
		t.Errorf("snapshot after reset = %+v", snap)
	}
}

func TestUpdateClampsDeltaTime(t *testing.T) {
	g := newTestGame(t)
	g.Update(5)
	if !almostEqual(g.World.GameTime, config.MaxDeltaTime) {
		t.Errorf("clock = %v, want %v", g.World.GameTime, config.MaxDeltaTime)
	}
	g.Update(-1)
	if !almostEqual(g.World.GameTime, config.MaxDeltaTime) {
		t.Error("negative delta advanced the clock")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.BuildTower(tileAt(t, g, 0, 0), defs.ElementWater)
	snap := g.Snapshot()
	snap.Towers[0].Effects[0] = "changed"
	snap.Path[0] = board.Vec{}

	if g.World.Tower(id).Effects[0] != "Slows enemies" {
		t.Error("snapshot shares effect labels with the tower")
	}
	if g.World.Board.Path[0] == (board.Vec{}) {
		t.Error("snapshot shares the path")
	}
}
