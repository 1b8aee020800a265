// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
// Base enemies move at SpeedPerWave·wave; special enemies have a fixed Speed.
type EnemyDefinition struct {
	ID            string
	Name          string
	Health        float64
	Speed         float64
	SpeedPerWave  float64
	Armor         float64
	Damage        int // урон экосистеме при достижении конца пути
	Reward        int
	SpawnsMinions bool
	AreaOnDeath   bool
	LifeDrain     float64 // доля макс. здоровья, восстанавливаемая в секунду
	Color         color.RGBA
	RadiusFactor  float64
}

// BaseSpeed returns the speed of the enemy for the given wave, before the balance speed scale.
func (d EnemyDefinition) BaseSpeed(wave int) float64 {
	if d.SpeedPerWave > 0 {
		return d.SpeedPerWave * float64(wave)
	}
	return d.Speed
}

// BaseEnemies are ordered from weakest to strongest; early waves only draw from the head.
var BaseEnemies = []EnemyDefinition{
	{ID: "polluter", Name: "Polluter", Health: 10, SpeedPerWave: 0.1, Armor: 0, Damage: 1, Reward: 5,
		Color: color.RGBA{102, 102, 102, 255}, RadiusFactor: 0.8},
	{ID: "logger", Name: "Logger", Health: 15, SpeedPerWave: 0.08, Armor: 1, Damage: 2, Reward: 8,
		Color: color.RGBA{139, 69, 19, 255}, RadiusFactor: 0.8},
	{ID: "burner", Name: "Burner", Health: 20, SpeedPerWave: 0.12, Armor: 0, Damage: 3, Reward: 10,
		Color: color.RGBA{204, 51, 0, 255}, RadiusFactor: 0.8},
	{ID: "toxic", Name: "Toxic", Health: 25, SpeedPerWave: 0.06, Armor: 2, Damage: 2, Reward: 12,
		Color: color.RGBA{102, 204, 0, 255}, RadiusFactor: 0.9},
	{ID: "industrial", Name: "Industrial", Health: 40, SpeedPerWave: 0.05, Armor: 3, Damage: 4, Reward: 20,
		Color: color.RGBA{51, 51, 51, 255}, RadiusFactor: 1},
}

// SpecialEnemies appear from the special wave on; each carries a distinct set of behavior flags.
var SpecialEnemies = []EnemyDefinition{
	{ID: "landfill", Name: "Landfill", Health: 80, Speed: 0.04, Armor: 5, Damage: 5, Reward: 30,
		SpawnsMinions: true,
		Color:         color.RGBA{153, 102, 51, 255}, RadiusFactor: 1.3},
	{ID: "tanker", Name: "Oil Tanker", Health: 60, Speed: 0.07, Armor: 2, Damage: 8, Reward: 35,
		AreaOnDeath: true,
		Color:       color.RGBA{0, 0, 0, 255}, RadiusFactor: 1.1},
	{ID: "deforester", Name: "Deforester", Health: 100, Speed: 0.08, Armor: 3, Damage: 10, Reward: 40,
		LifeDrain: 0.02,
		Color:     color.RGBA{255, 102, 0, 255}, RadiusFactor: 1.3},
	{ID: "mining_rig", Name: "Mining Rig", Health: 120, Speed: 0.05, Armor: 4, Damage: 12, Reward: 45,
		SpawnsMinions: true, AreaOnDeath: true,
		Color: color.RGBA{90, 90, 110, 255}, RadiusFactor: 1.4},
}

// Minion is the template for enemies split off a dying SpawnsMinions enemy.
// Stats are derived from the parent at spawn time.
var Minion = EnemyDefinition{
	ID: "minion", Name: "Minion",
	Color: color.RGBA{180, 140, 90, 255}, RadiusFactor: 0.6,
}

// LookupEnemy finds a definition by ID among base, special and minion types.
func LookupEnemy(id string) (EnemyDefinition, bool) {
	if id == Minion.ID {
		return Minion, true
	}
	for _, list := range [][]EnemyDefinition{BaseEnemies, SpecialEnemies} {
		for _, d := range list {
			if d.ID == id {
				return d, true
			}
		}
	}
	return EnemyDefinition{}, false
}
