// internal/types/id.go
package types

// EntityID идентифицирует башню или врага. Ноль означает «нет сущности».
type EntityID uint64
