// internal/event/types.go
package event

import (
	"forest-guardians/internal/types"
	"forest-guardians/pkg/board"
)

const (
	WaveStarted   EventType = "WaveStarted"   // Data: WaveData
	WaveEnded     EventType = "WaveEnded"     // Data: WaveData
	TowerPlaced   EventType = "TowerPlaced"   // Data: TowerData
	TowerUpgraded EventType = "TowerUpgraded" // Data: TowerData
	TowersFused   EventType = "TowersFused"   // Data: FusionData
	TowerAttacked EventType = "TowerAttacked" // Data: AttackData
	EnemySpawned  EventType = "EnemySpawned"  // Data: EnemyData
	EnemyKilled   EventType = "EnemyKilled"   // Data: EnemyData
	EnemyEscaped  EventType = "EnemyEscaped"  // Data: EnemyData
	DeathBurst    EventType = "DeathBurst"    // Data: BurstData
	Defeat        EventType = "Defeat"        // Data: WaveData
)

type WaveData struct {
	Wave int
}

type TowerData struct {
	TowerID types.EntityID
	Name    string
	Level   int
}

type FusionData struct {
	SourceA, SourceB types.EntityID
	Result           types.EntityID
	Name             string
}

type AttackData struct {
	TowerID  types.EntityID
	EnemyID  types.EntityID
	From, To board.Vec
	Damage   float64
	Critical bool
}

type EnemyData struct {
	EnemyID types.EntityID
	DefID   string
	Damage  int
	Reward  int
}

type BurstData struct {
	EnemyID  types.EntityID
	Position board.Vec
	Damage   int
}
