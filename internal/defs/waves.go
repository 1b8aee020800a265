package defs

// BasePool returns the base enemy types available in the given wave:
// the first ceil(wave/2) entries, never fewer than one and never more than all of them.
func BasePool(wave int) []EnemyDefinition {
	n := (wave + 1) / 2
	if n < 1 {
		n = 1
	}
	if n > len(BaseEnemies) {
		n = len(BaseEnemies)
	}
	return BaseEnemies[:n]
}
