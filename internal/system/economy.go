// internal/system/economy.go
package system

import (
	"forest-guardians/internal/component"
	"forest-guardians/internal/event"
	"forest-guardians/internal/utils"
	"forest-guardians/pkg/logger"
)

// Ledger — единственная точка изменения ресурсов и здоровья экосистемы.
type Ledger struct {
	state           *component.Economy
	maxHealth       float64
	eventDispatcher *event.Dispatcher
}

func NewLedger(state *component.Economy, maxHealth float64, eventDispatcher *event.Dispatcher) *Ledger {
	return &Ledger{
		state:           state,
		maxHealth:       maxHealth,
		eventDispatcher: eventDispatcher,
	}
}

// TryDebit withdraws amount if the balance covers it. A rejected debit changes nothing.
func (l *Ledger) TryDebit(amount int) bool {
	if amount < 0 || l.state.Resources < amount {
		return false
	}
	l.state.Resources -= amount
	return true
}

func (l *Ledger) Credit(amount int) {
	if amount <= 0 {
		return
	}
	l.state.Resources += amount
}

// DamageEcosystem lowers health, clamping at zero. The first time health reaches zero
// the ledger records the defeat, ends the running wave and dispatches event.Defeat.
func (l *Ledger) DamageEcosystem(amount float64) {
	if amount <= 0 || l.state.Defeat {
		return
	}
	l.state.EcosystemHealth -= amount
	if l.state.EcosystemHealth > 0 {
		return
	}
	l.state.EcosystemHealth = 0
	l.state.Defeat = true
	l.state.WaveInProgress = false
	l.state.DefeatWave = l.state.Wave
	logger.WithComponent("ledger").WithField("wave", l.state.Wave).Debug("ecosystem destroyed")
	l.eventDispatcher.Dispatch(event.Event{Type: event.Defeat, Data: event.WaveData{Wave: l.state.Wave}})
}

// HealEcosystem raises health up to the maximum. A destroyed ecosystem stays destroyed.
func (l *Ledger) HealEcosystem(amount float64) {
	if amount <= 0 || l.state.Defeat {
		return
	}
	l.state.EcosystemHealth = utils.Clamp(l.state.EcosystemHealth+amount, 0, l.maxHealth)
}

func (l *Ledger) Resources() int           { return l.state.Resources }
func (l *Ledger) EcosystemHealth() float64 { return l.state.EcosystemHealth }
func (l *Ledger) Defeated() bool           { return l.state.Defeat }
