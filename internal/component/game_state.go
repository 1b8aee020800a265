package component

// Economy — глобальное состояние ресурсов и здоровья экосистемы.
// Изменяется только через system.Ledger.
type Economy struct {
	Resources       int
	EcosystemHealth float64
	Wave            int
	WaveInProgress  bool
	Defeat          bool
	DefeatWave      int
}
