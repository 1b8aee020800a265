package app

import (
	"forest-guardians/internal/event"
	"forest-guardians/pkg/logger"

	"github.com/sirupsen/logrus"
)

// eventLogger пишет события симуляции в структурированный лог.
type eventLogger struct{}

func (l *eventLogger) OnEvent(e event.Event) {
	entry := logger.WithComponent("events").WithField("event", string(e.Type))
	switch data := e.Data.(type) {
	case event.WaveData:
		entry = entry.WithField("wave", data.Wave)
	case event.TowerData:
		entry = entry.WithFields(logrus.Fields{"tower": data.TowerID, "name": data.Name, "level": data.Level})
	case event.FusionData:
		entry = entry.WithFields(logrus.Fields{"tower": data.Result, "sources": []uint64{uint64(data.SourceA), uint64(data.SourceB)}, "name": data.Name})
	case event.EnemyData:
		entry = entry.WithFields(logrus.Fields{"enemy": data.EnemyID, "type": data.DefID, "damage": data.Damage, "reward": data.Reward})
	case event.BurstData:
		entry = entry.WithFields(logrus.Fields{"enemy": data.EnemyID, "damage": data.Damage})
	}

	switch e.Type {
	case event.WaveStarted, event.WaveEnded, event.TowersFused:
		entry.Info("simulation event")
	case event.Defeat:
		entry.Warn("ecosystem destroyed")
	default:
		entry.Debug("simulation event")
	}
}
