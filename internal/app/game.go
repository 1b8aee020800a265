// internal/app/game.go
package app

import (
	"fmt"

	"forest-guardians/internal/config"
	"forest-guardians/internal/entity"
	"forest-guardians/internal/event"
	"forest-guardians/internal/system"
	"forest-guardians/internal/utils"
	"forest-guardians/pkg/board"
	"forest-guardians/pkg/logger"
)

// Game holds the simulation state and drives its systems. It is not safe for
// concurrent use; see Session for a goroutine-owned wrapper.
type Game struct {
	Balance            config.Balance
	World              *entity.World
	Ledger             *system.Ledger
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	AuraSystem         *system.AuraSystem
	WaveSystem         *system.WaveSystem
	FusionSystem       *system.FusionSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
}

// NewGame validates the balance, generates the board and wires the systems.
// A seed of 0 picks a time-based seed. Board generation failure is fatal.
func NewGame(balance config.Balance, seed int64) (*Game, error) {
	if err := balance.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance: %w", err)
	}
	g := &Game{
		Balance:         balance,
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(seed),
	}
	if err := g.init(); err != nil {
		return nil, err
	}

	g.EventDispatcher.SubscribeAll(&eventLogger{},
		event.WaveStarted, event.WaveEnded, event.TowerPlaced, event.TowerUpgraded,
		event.TowersFused, event.EnemyKilled, event.EnemyEscaped, event.DeathBurst, event.Defeat)

	logger.WithComponent("game").WithField("seed", g.Rng.Seed()).Info("simulation initialised")
	return g, nil
}

// init builds a fresh world and systems. Listeners of the dispatcher survive.
func (g *Game) init() error {
	b, err := board.Generate(config.BoardSize, config.TileSize)
	if err != nil {
		return fmt.Errorf("failed to generate board: %w", err)
	}

	eco := g.Balance.Economy
	world := entity.NewWorld(b, eco.StartingResources, eco.StartingHealth)
	ledger := system.NewLedger(world.Economy, eco.MaxHealth, g.EventDispatcher)

	g.World = world
	g.Ledger = ledger
	g.StatusEffectSystem = system.NewStatusEffectSystem()
	g.MovementSystem = system.NewMovementSystem(world, ledger, g.StatusEffectSystem, g.Balance.Enemies, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(world, ledger, g.Rng, g.Balance.Combat, g.EventDispatcher)
	g.AuraSystem = system.NewAuraSystem(world)
	g.WaveSystem = system.NewWaveSystem(world, ledger, g.Rng, g.Balance.Waves, g.Balance.Enemies, g.EventDispatcher)
	g.FusionSystem = system.NewFusionSystem(g.Balance.Towers)
	return nil
}

// Update progresses the simulation by one tick. deltaTime is clamped to
// config.MaxDeltaTime. After defeat the simulation no longer advances.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 || g.World.Economy.Defeat {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.World.GameTime += deltaTime

	g.MovementSystem.Update(deltaTime)
	if g.World.Economy.Defeat {
		return
	}
	g.CombatSystem.Update(deltaTime)
	g.AuraSystem.Update()
	g.WaveSystem.Update(deltaTime)
}

// StartWave begins the next wave.
func (g *Game) StartWave() error {
	econ := g.World.Economy
	if econ.Defeat {
		return ErrDefeated
	}
	if econ.WaveInProgress || g.WaveSystem.Spawning() {
		return ErrWaveInProgress
	}
	g.WaveSystem.StartWave()
	return nil
}

// Reset discards the whole simulation state and starts over on a fresh board.
// The random sequence continues; it is not rewound.
func (g *Game) Reset() error {
	if err := g.init(); err != nil {
		return err
	}
	logger.WithComponent("game").Info("simulation reset")
	return nil
}
