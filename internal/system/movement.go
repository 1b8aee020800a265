// internal/system/movement.go
package system

import (
	"math"

	"forest-guardians/internal/component"
	"forest-guardians/internal/config"
	"forest-guardians/internal/defs"
	"forest-guardians/internal/entity"
	"forest-guardians/internal/event"
)

// MovementSystem двигает врагов по пути, применяет статусы и убирает
// сбежавших и погибших врагов.
type MovementSystem struct {
	world           *entity.World
	ledger          *Ledger
	status          *StatusEffectSystem
	balance         config.EnemyBalance
	eventDispatcher *event.Dispatcher
	pending         []*component.Enemy // миньоны, созданные в текущем проходе
}

func NewMovementSystem(world *entity.World, ledger *Ledger, status *StatusEffectSystem,
	balance config.EnemyBalance, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		world:           world,
		ledger:          ledger,
		status:          status,
		balance:         balance,
		eventDispatcher: eventDispatcher,
	}
}

func (s *MovementSystem) Update(deltaTime float64) {
	path := s.world.Board.Path
	last := len(path) - 1
	kept := make([]*component.Enemy, 0, len(s.world.Enemies))

	for _, enemy := range s.world.Enemies {
		s.status.Apply(enemy, deltaTime)

		if !enemy.Status.Frozen {
			s.advance(enemy, deltaTime)
			if enemy.PathIndex >= last {
				s.escape(enemy)
				continue
			}
		}

		if !enemy.Alive() {
			s.kill(enemy)
			continue
		}
		kept = append(kept, enemy)
	}

	s.world.Enemies = append(kept, s.pending...)
	s.pending = s.pending[:0]
}

// advance moves the enemy toward the next waypoint. Within the waypoint tolerance the
// enemy only advances its index; otherwise it never overshoots the waypoint.
func (s *MovementSystem) advance(enemy *component.Enemy, deltaTime float64) {
	path := s.world.Board.Path
	if enemy.PathIndex >= len(path)-1 {
		return
	}
	target := path[enemy.PathIndex+1]
	offset := target.Sub(enemy.Position)
	distance := offset.Len()
	if distance < s.balance.WaypointTolerance {
		enemy.PathIndex++
		return
	}

	direction := offset.Scale(1 / distance)
	if enemy.Status.Confused {
		direction = direction.Rotate(s.confusionAngle())
	}
	step := math.Min(enemy.Speed*deltaTime, distance)
	enemy.Position = enemy.Position.Add(direction.Scale(step))
}

// confusionAngle oscillates with the simulation clock, so replays stay deterministic.
func (s *MovementSystem) confusionAngle() float64 {
	return math.Sin(s.world.GameTime*s.balance.ConfuseFrequency) * s.balance.ConfuseAmplitude
}

func (s *MovementSystem) escape(enemy *component.Enemy) {
	s.ledger.DamageEcosystem(float64(enemy.Damage))
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyData{
		EnemyID: enemy.ID,
		DefID:   enemy.DefID,
		Damage:  enemy.Damage,
	}})
}

func (s *MovementSystem) kill(enemy *component.Enemy) {
	s.ledger.Credit(enemy.Reward)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{
		EnemyID: enemy.ID,
		DefID:   enemy.DefID,
		Reward:  enemy.Reward,
	}})

	if enemy.SpawnsMinions {
		for i := 0; i < s.balance.MinionCount; i++ {
			s.pending = append(s.pending, s.newMinion(enemy))
		}
	}
	if enemy.AreaOnDeath {
		damage := int(math.Floor(float64(enemy.Damage) * s.balance.DeathBurstFactor))
		s.ledger.DamageEcosystem(float64(damage))
		s.eventDispatcher.Dispatch(event.Event{Type: event.DeathBurst, Data: event.BurstData{
			EnemyID:  enemy.ID,
			Position: enemy.Position,
			Damage:   damage,
		}})
	}
}

// newMinion derives a weaker enemy from a dying parent, placed where the parent died.
func (s *MovementSystem) newMinion(parent *component.Enemy) *component.Enemy {
	health := parent.MaxHealth * s.balance.MinionHealth
	minion := &component.Enemy{
		ID:        s.world.NewEntity(),
		DefID:     defs.Minion.ID,
		Name:      defs.Minion.Name,
		Health:    health,
		MaxHealth: health,
		Speed:     parent.Speed * s.balance.MinionSpeed,
		Armor:     math.Max(0, parent.Armor-1),
		Damage:    int(math.Floor(float64(parent.Damage) * s.balance.MinionDamage)),
		Reward:    int(math.Floor(float64(parent.Reward) * s.balance.MinionReward)),
		PathIndex: parent.PathIndex,
		Position:  parent.Position,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
		EnemyID: minion.ID,
		DefID:   minion.DefID,
	}})
	return minion
}
