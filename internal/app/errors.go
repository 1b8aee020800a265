package app

import "errors"

// Ошибки команд. Отклонённая команда не меняет состояние.
var (
	ErrInvalidPlacement      = errors.New("invalid placement")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrMaxLevelReached       = errors.New("max level reached")
	ErrInvalidFusion         = errors.New("invalid fusion")
	ErrNotFound              = errors.New("not found")
	ErrWaveInProgress        = errors.New("wave in progress")
	ErrDefeated              = errors.New("ecosystem destroyed")
)
