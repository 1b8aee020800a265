package app

import (
	"forest-guardians/internal/component"
	"forest-guardians/internal/defs"
	"forest-guardians/internal/types"
	"forest-guardians/pkg/board"
)

// Snapshot is a read-only copy of the simulation state for renderers and clients.
type Snapshot struct {
	Time            float64     `json:"time"`
	Resources       int         `json:"resources"`
	EcosystemHealth float64     `json:"ecosystem_health"`
	Wave            int         `json:"wave"`
	WaveInProgress  bool        `json:"wave_in_progress"`
	Spawning        bool        `json:"spawning"`
	Defeat          bool        `json:"defeat"`
	DefeatWave      int         `json:"defeat_wave,omitempty"`
	BoardSize       int         `json:"board_size"`
	TileSize        float64     `json:"tile_size"`
	Tiles           []TileView  `json:"tiles"`
	Path            []board.Vec `json:"path"`
	Towers          []TowerView `json:"towers"`
	Enemies         []EnemyView `json:"enemies"`
}

type TileView struct {
	ID       board.TileID   `json:"id"`
	X        int            `json:"x"`
	Z        int            `json:"z"`
	Type     string         `json:"type"`
	Occupied bool           `json:"occupied"`
	TowerID  types.EntityID `json:"tower_id,omitempty"`
}

type TowerView struct {
	ID          types.EntityID `json:"id"`
	Element     string         `json:"element"`
	Name        string         `json:"name"`
	Evolution   string         `json:"evolution,omitempty"`
	Level       int            `json:"level"`
	Damage      float64        `json:"damage"`
	AttackSpeed float64        `json:"attack_speed"`
	Range       float64        `json:"range"`
	Cooldown    float64        `json:"cooldown"`
	TileID      board.TileID   `json:"tile_id"`
	Position    board.Vec      `json:"position"`
	Modifiers   defs.Modifiers `json:"modifiers"`
	Effects     []string       `json:"effects"`
	AuraBuff    float64        `json:"aura_buff,omitempty"`
}

type EnemyView struct {
	ID             types.EntityID `json:"id"`
	Type           string         `json:"type"`
	Name           string         `json:"name"`
	Position       board.Vec      `json:"position"`
	PathIndex      int            `json:"path_index"`
	Health         float64        `json:"health"`
	MaxHealth      float64        `json:"max_health"`
	HealthFraction float64        `json:"health_fraction"`
	Speed          float64        `json:"speed"`
	Armor          float64        `json:"armor"`
	Frozen         bool           `json:"frozen"`
	Confused       bool           `json:"confused"`
	Dots           int            `json:"dots,omitempty"`
}

// Snapshot copies the current state. The result shares nothing with the simulation.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	econ := w.Economy
	s := Snapshot{
		Time:            w.GameTime,
		Resources:       econ.Resources,
		EcosystemHealth: econ.EcosystemHealth,
		Wave:            econ.Wave,
		WaveInProgress:  econ.WaveInProgress,
		Spawning:        g.WaveSystem.Spawning(),
		Defeat:          econ.Defeat,
		DefeatWave:      econ.DefeatWave,
		BoardSize:       w.Board.Size,
		TileSize:        w.Board.TileSize,
		Tiles:           make([]TileView, 0, len(w.Board.Tiles)),
		Path:            append([]board.Vec(nil), w.Board.Path...),
		Towers:          make([]TowerView, 0, len(w.Towers)),
		Enemies:         make([]EnemyView, 0, len(w.Enemies)),
	}
	for _, t := range w.Board.Tiles {
		s.Tiles = append(s.Tiles, TileView{
			ID:       t.ID,
			X:        t.X,
			Z:        t.Z,
			Type:     t.Type.String(),
			Occupied: t.Occupied,
			TowerID:  t.TowerID,
		})
	}
	for _, t := range w.Towers {
		s.Towers = append(s.Towers, towerView(t))
	}
	for _, e := range w.Enemies {
		s.Enemies = append(s.Enemies, enemyView(e))
	}
	return s
}

func towerView(t *component.Tower) TowerView {
	v := TowerView{
		ID:          t.ID,
		Element:     t.Element.String(),
		Name:        t.Name,
		Level:       t.Level,
		Damage:      t.Combat.Damage,
		AttackSpeed: t.Combat.AttackSpeed,
		Range:       t.Combat.Range,
		Cooldown:    t.Combat.Cooldown,
		TileID:      t.TileID,
		Position:    t.Position,
		Modifiers:   t.Modifiers,
		Effects:     append([]string(nil), t.Effects...),
		AuraBuff:    t.AuraBuff,
	}
	if t.Evolution != defs.EvolutionNone {
		v.Evolution = t.Evolution.String()
	}
	return v
}

func enemyView(e *component.Enemy) EnemyView {
	return EnemyView{
		ID:             e.ID,
		Type:           e.DefID,
		Name:           e.Name,
		Position:       e.Position,
		PathIndex:      e.PathIndex,
		Health:         e.Health,
		MaxHealth:      e.MaxHealth,
		HealthFraction: e.HealthFraction(),
		Speed:          e.Speed,
		Armor:          e.Armor,
		Frozen:         e.Status.Frozen,
		Confused:       e.Status.Confused,
		Dots:           len(e.Status.Dots),
	}
}
