package system

import (
	"forest-guardians/internal/component"
	"forest-guardians/internal/config"
	"forest-guardians/internal/entity"
	"forest-guardians/internal/event"
	"forest-guardians/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world           *entity.World
	ledger          *Ledger
	rng             *utils.PRNGService
	balance         config.CombatBalance
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, ledger *Ledger, rng *utils.PRNGService,
	balance config.CombatBalance, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		ledger:          ledger,
		rng:             rng,
		balance:         balance,
		eventDispatcher: eventDispatcher,
	}
}

// Update runs one attack pass over all towers in placement order.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, tower := range s.world.Towers {
		tower.Combat.Cooldown += deltaTime
		if tower.Combat.Cooldown < tower.AttackInterval() {
			continue
		}
		// Без цели кулдаун продолжает копиться.
		target := s.findNearestEnemyInRange(tower)
		if target == nil {
			continue
		}
		s.attack(tower, target)
	}
}

// findNearestEnemyInRange returns the living enemy closest to the tower. On equal
// distance the enemy met first in the list wins.
func (s *CombatSystem) findNearestEnemyInRange(tower *component.Tower) *component.Enemy {
	var nearest *component.Enemy
	minDistance := 0.0
	for _, enemy := range s.world.Enemies {
		if !enemy.Alive() {
			continue
		}
		distance := tower.Position.Distance(enemy.Position)
		if distance > tower.Combat.Range {
			continue
		}
		if nearest == nil || distance < minDistance {
			nearest = enemy
			minDistance = distance
		}
	}
	return nearest
}

func (s *CombatSystem) attack(tower *component.Tower, target *component.Enemy) {
	tower.Combat.Cooldown = 0
	mods := tower.Modifiers

	damage := tower.Combat.Damage
	critical := s.rng.Chance(mods.CritChance)
	if critical {
		multiplier := mods.CritMultiplier
		if multiplier == 0 {
			multiplier = s.balance.DefaultCritMultiplier
		}
		damage *= multiplier
	}
	damage = MitigateDamage(damage, target.Armor, mods.ArmorReduction, s.balance.ArmorFactor)
	target.Health -= damage

	// Порядок применения модификаторов фиксирован.
	if mods.SlowFactor > 0 && !target.Status.Frozen {
		target.Speed *= mods.SlowFactor
	}
	if s.rng.Chance(mods.FreezeChance) {
		target.Status.Freeze(s.balance.FreezeDuration)
	}
	if s.rng.Chance(mods.ConfuseChance) {
		target.Status.Confuse(s.balance.ConfuseDuration)
	}
	if mods.DamageOverTime {
		target.Status.Dots = append(target.Status.Dots, component.DotEffect{
			DamagePerSecond: tower.Combat.Damage * s.balance.DotDamageFactor,
			Duration:        s.balance.DotDuration,
		})
	}
	if mods.AreaEffect {
		splash := damage * s.balance.AreaDamageFactor
		for _, other := range s.world.Enemies {
			if other == target || !other.Alive() {
				continue
			}
			if other.Position.Distance(target.Position) <= s.balance.AreaRadius {
				other.Health -= splash
			}
		}
	}
	if mods.HealFactor > 0 {
		s.ledger.HealEcosystem(mods.HealFactor)
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerAttacked, Data: event.AttackData{
		TowerID:  tower.ID,
		EnemyID:  target.ID,
		From:     tower.Position,
		To:       target.Position,
		Damage:   damage,
		Critical: critical,
	}})
}

// MitigateDamage applies armor: damage·(1 − armor·factor), with armor first lowered by
// reduction when the tower has one. Armor of 1/factor or more yields negative damage.
func MitigateDamage(damage, armor, reduction, factor float64) float64 {
	effective := armor
	if reduction > 0 {
		effective = armor - reduction
		if effective < 0 {
			effective = 0
		}
	}
	return damage * (1 - effective*factor)
}
