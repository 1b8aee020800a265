// internal/config/balance.go
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds every tunable number of the simulation.
// DefaultBalance reproduces the reference game; a YAML file may override any subset.
type Balance struct {
	Economy EconomyBalance `yaml:"economy"`
	Towers  TowerBalance   `yaml:"towers"`
	Combat  CombatBalance  `yaml:"combat"`
	Enemies EnemyBalance   `yaml:"enemies"`
	Waves   WaveBalance    `yaml:"waves"`
}

type EconomyBalance struct {
	StartingResources int     `yaml:"starting_resources"`
	StartingHealth    float64 `yaml:"starting_health"`
	MaxHealth         float64 `yaml:"max_health"`
}

type TowerBalance struct {
	Cost              int     `yaml:"cost"`
	LifeCost          int     `yaml:"life_cost"`
	UpgradeCost       int     `yaml:"upgrade_cost"`
	MaxLevel          int     `yaml:"max_level"`
	UpgradeDamageMul  float64 `yaml:"upgrade_damage_mul"`
	UpgradeSpeedMul   float64 `yaml:"upgrade_speed_mul"`
	UpgradeRangeBonus float64 `yaml:"upgrade_range_bonus"`
	FusionCost        int     `yaml:"fusion_cost"`
	FusionLevelBonus  int     `yaml:"fusion_level_bonus"`
	FusionRangeBonus  float64 `yaml:"fusion_range_bonus"`
	FusionDamageMul   float64 `yaml:"fusion_damage_mul"`
	FusionSpeedMul    float64 `yaml:"fusion_speed_mul"`
}

type CombatBalance struct {
	ArmorFactor           float64 `yaml:"armor_factor"`
	DefaultCritMultiplier float64 `yaml:"default_crit_multiplier"`
	FreezeDuration        float64 `yaml:"freeze_duration"`
	ConfuseDuration       float64 `yaml:"confuse_duration"`
	DotDamageFactor       float64 `yaml:"dot_damage_factor"`
	DotDuration           float64 `yaml:"dot_duration"`
	AreaRadius            float64 `yaml:"area_radius"`
	AreaDamageFactor      float64 `yaml:"area_damage_factor"`
}

type EnemyBalance struct {
	SpeedScale        float64 `yaml:"speed_scale"`
	WaypointTolerance float64 `yaml:"waypoint_tolerance"`
	ConfuseAmplitude  float64 `yaml:"confuse_amplitude"`
	ConfuseFrequency  float64 `yaml:"confuse_frequency"`
	MinionCount       int     `yaml:"minion_count"`
	MinionHealth      float64 `yaml:"minion_health"`
	MinionSpeed       float64 `yaml:"minion_speed"`
	MinionDamage      float64 `yaml:"minion_damage"`
	MinionReward      float64 `yaml:"minion_reward"`
	DeathBurstFactor  float64 `yaml:"death_burst_factor"`
}

type WaveBalance struct {
	EnemiesPerWave       int     `yaml:"enemies_per_wave"`
	SpawnInterval        float64 `yaml:"spawn_interval"`
	RewardBase           int     `yaml:"reward_base"`
	RewardPerWave        int     `yaml:"reward_per_wave"`
	ClearHeal            float64 `yaml:"clear_heal"`
	SpecialMinWave       int     `yaml:"special_min_wave"`
	SpecialChancePerWave float64 `yaml:"special_chance_per_wave"`
	SpecialChanceCap     float64 `yaml:"special_chance_cap"`
	BaseScalePerWave     float64 `yaml:"base_scale_per_wave"`
	SpecialScalePerWave  float64 `yaml:"special_scale_per_wave"`
}

func DefaultBalance() Balance {
	return Balance{
		Economy: EconomyBalance{
			StartingResources: 100,
			StartingHealth:    100,
			MaxHealth:         100,
		},
		Towers: TowerBalance{
			Cost:              25,
			LifeCost:          35,
			UpgradeCost:       50,
			MaxLevel:          3,
			UpgradeDamageMul:  1.5,
			UpgradeSpeedMul:   1.2,
			UpgradeRangeBonus: 1,
			FusionCost:        75,
			FusionLevelBonus:  1,
			FusionRangeBonus:  2,
			FusionDamageMul:   1.5,
			FusionSpeedMul:    0.6,
		},
		Combat: CombatBalance{
			ArmorFactor:           0.1,
			DefaultCritMultiplier: 2,
			FreezeDuration:        2,
			ConfuseDuration:       3,
			DotDamageFactor:       0.2,
			DotDuration:           3,
			AreaRadius:            2,
			AreaDamageFactor:      0.5,
		},
		Enemies: EnemyBalance{
			SpeedScale:        1,
			WaypointTolerance: 0.1,
			ConfuseAmplitude:  math.Pi / 4,
			ConfuseFrequency:  10,
			MinionCount:       3,
			MinionHealth:      0.3,
			MinionSpeed:       1.2,
			MinionDamage:      0.4,
			MinionReward:      0.2,
			DeathBurstFactor:  0.5,
		},
		Waves: WaveBalance{
			EnemiesPerWave:       5,
			SpawnInterval:        1,
			RewardBase:           25,
			RewardPerWave:        5,
			ClearHeal:            5,
			SpecialMinWave:       5,
			SpecialChancePerWave: 0.05,
			SpecialChanceCap:     0.5,
			BaseScalePerWave:     0.1,
			SpecialScalePerWave:  0.1,
		},
	}
}

// LoadBalance reads a YAML file on top of DefaultBalance. An empty path returns the defaults.
func LoadBalance(path string) (Balance, error) {
	b := DefaultBalance()
	if path == "" {
		return b, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("failed to read balance file: %w", err)
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("failed to unmarshal balance file: %w", err)
	}
	if err := b.Validate(); err != nil {
		return b, fmt.Errorf("invalid balance file %s: %w", path, err)
	}
	return b, nil
}

// Validate rejects values the engine cannot run with.
func (b Balance) Validate() error {
	var errs []error
	if b.Economy.MaxHealth <= 0 {
		errs = append(errs, errors.New("economy.max_health must be positive"))
	}
	if b.Economy.StartingHealth <= 0 || b.Economy.StartingHealth > b.Economy.MaxHealth {
		errs = append(errs, errors.New("economy.starting_health must be in (0, max_health]"))
	}
	if b.Economy.StartingResources < 0 {
		errs = append(errs, errors.New("economy.starting_resources must not be negative"))
	}
	if b.Towers.Cost < 0 || b.Towers.LifeCost < 0 || b.Towers.UpgradeCost < 0 || b.Towers.FusionCost < 0 {
		errs = append(errs, errors.New("tower costs must not be negative"))
	}
	if b.Towers.MaxLevel < 1 {
		errs = append(errs, errors.New("towers.max_level must be at least 1"))
	}
	if b.Waves.SpawnInterval <= 0 {
		errs = append(errs, errors.New("waves.spawn_interval must be positive"))
	}
	if b.Waves.EnemiesPerWave < 1 {
		errs = append(errs, errors.New("waves.enemies_per_wave must be at least 1"))
	}
	if b.Enemies.SpeedScale < 0 {
		errs = append(errs, errors.New("enemies.speed_scale must not be negative"))
	}
	return errors.Join(errs...)
}
