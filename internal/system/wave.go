// internal/system/wave.go
package system

import (
	"math"

	"forest-guardians/internal/component"
	"forest-guardians/internal/config"
	"forest-guardians/internal/defs"
	"forest-guardians/internal/entity"
	"forest-guardians/internal/event"
	"forest-guardians/internal/utils"
	"forest-guardians/pkg/logger"
)

// waveRun — состояние выпуска врагов текущей волны.
type waveRun struct {
	total     int
	spawned   int
	nextSpawn float64 // секунд до следующего выпуска
}

// WaveSystem is the wave scheduler: Idle while run is nil, Spawning otherwise.
type WaveSystem struct {
	world           *entity.World
	ledger          *Ledger
	rng             *utils.PRNGService
	balance         config.WaveBalance
	enemyBalance    config.EnemyBalance
	eventDispatcher *event.Dispatcher
	run             *waveRun
}

func NewWaveSystem(world *entity.World, ledger *Ledger, rng *utils.PRNGService,
	balance config.WaveBalance, enemyBalance config.EnemyBalance, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		ledger:          ledger,
		rng:             rng,
		balance:         balance,
		enemyBalance:    enemyBalance,
		eventDispatcher: eventDispatcher,
	}
}

// Spawning reports whether enemies of the current wave are still being emitted.
func (s *WaveSystem) Spawning() bool {
	return s.run != nil
}

// Remaining returns how many enemies of the current run are still to be emitted.
func (s *WaveSystem) Remaining() int {
	if s.run == nil {
		return 0
	}
	return s.run.total - s.run.spawned
}

// StartWave begins the next wave: grants the wave reward and emits the first enemy at once.
// The caller checks that no wave is running.
func (s *WaveSystem) StartWave() {
	econ := s.world.Economy
	econ.Wave++
	econ.WaveInProgress = true

	s.run = &waveRun{total: econ.Wave * s.balance.EnemiesPerWave}
	s.ledger.Credit(s.balance.RewardBase + econ.Wave*s.balance.RewardPerWave)

	logger.WithComponent("waves").WithField("wave", econ.Wave).
		WithField("enemies", s.run.total).Debug("wave started")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: econ.Wave}})

	s.emit()
}

// Update ends the wave when the board is empty, then emits due enemies.
func (s *WaveSystem) Update(deltaTime float64) {
	econ := s.world.Economy
	if econ.WaveInProgress && s.world.LiveEnemies() == 0 {
		// Может сработать посреди выпуска, если все выпущенные уже погибли.
		econ.WaveInProgress = false
		s.ledger.HealEcosystem(s.balance.ClearHeal)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Wave: econ.Wave}})
	}

	if s.run == nil {
		return
	}
	s.run.nextSpawn -= deltaTime
	for s.run != nil && s.run.nextSpawn <= 0 {
		s.emit()
	}
}

// Reset drops the current run.
func (s *WaveSystem) Reset() {
	s.run = nil
}

// emit releases one enemy, or finishes the run when all of them are out.
// Completion comes one interval after the last enemy, as the next scheduled emission.
func (s *WaveSystem) emit() {
	run := s.run
	if run.spawned >= run.total {
		s.world.Economy.WaveInProgress = s.world.LiveEnemies() > 0
		s.run = nil
		return
	}
	enemy := s.newEnemy(s.chooseEnemy())
	s.world.Enemies = append(s.world.Enemies, enemy)
	run.spawned++
	run.nextSpawn += s.balance.SpawnInterval

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
		EnemyID: enemy.ID,
		DefID:   enemy.DefID,
	}})
}

type spawnChoice struct {
	def   defs.EnemyDefinition
	scale float64
}

// chooseEnemy forks between a special enemy and one from the base pool of the wave.
func (s *WaveSystem) chooseEnemy() spawnChoice {
	wave := s.world.Economy.Wave
	if wave >= s.balance.SpecialMinWave {
		chance := math.Min(s.balance.SpecialChanceCap, float64(wave)*s.balance.SpecialChancePerWave)
		if s.rng.Chance(chance) {
			def := defs.SpecialEnemies[s.rng.Intn(len(defs.SpecialEnemies))]
			return spawnChoice{def: def, scale: 1 + float64(wave-s.balance.SpecialMinWave)*s.balance.SpecialScalePerWave}
		}
	}
	pool := defs.BasePool(wave)
	def := pool[s.rng.Intn(len(pool))]
	return spawnChoice{def: def, scale: 1 + float64(wave)*s.balance.BaseScalePerWave}
}

func (s *WaveSystem) newEnemy(choice spawnChoice) *component.Enemy {
	def := choice.def
	wave := s.world.Economy.Wave
	health := math.Floor(def.Health * choice.scale)
	return &component.Enemy{
		ID:            s.world.NewEntity(),
		DefID:         def.ID,
		Name:          def.Name,
		Health:        health,
		MaxHealth:     health,
		Speed:         def.BaseSpeed(wave) * s.enemyBalance.SpeedScale,
		Armor:         def.Armor,
		Damage:        int(math.Floor(float64(def.Damage) * choice.scale)),
		Reward:        int(math.Floor(float64(def.Reward) * math.Sqrt(choice.scale))),
		Position:      s.world.Board.Path[0],
		SpawnsMinions: def.SpawnsMinions,
		AreaOnDeath:   def.AreaOnDeath,
		LifeDrain:     def.LifeDrain,
	}
}
