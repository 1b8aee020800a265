package interfaces

import (
	"context"

	"forest-guardians/internal/app"
	"forest-guardians/internal/defs"
	"forest-guardians/internal/types"
	"forest-guardians/pkg/board"
)

// Engine — команды и запросы, доступные внешним клиентам симуляции.
// Реализуется app.Session.
type Engine interface {
	BuildTower(ctx context.Context, tileID board.TileID, element defs.Element) (types.EntityID, error)
	UpgradeTower(ctx context.Context, id types.EntityID) error
	FuseTowers(ctx context.Context, a, b types.EntityID) (types.EntityID, error)
	StartWave(ctx context.Context) error
	Reset(ctx context.Context) error
	Snapshot() app.Snapshot
}

var _ Engine = (*app.Session)(nil)
