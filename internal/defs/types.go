// internal/defs/types.go
package defs

// Modifiers — набор необязательных боевых свойств башни. Нулевое значение = свойство отсутствует.
type Modifiers struct {
	SlowFactor     float64 `json:"slow_factor,omitempty"`
	ArmorReduction float64 `json:"armor_reduction,omitempty"`
	HealFactor     float64 `json:"heal_factor,omitempty"`
	AreaEffect     bool    `json:"area_effect,omitempty"`
	DamageOverTime bool    `json:"damage_over_time,omitempty"`
	FreezeChance   float64 `json:"freeze_chance,omitempty"`
	ConfuseChance  float64 `json:"confuse_chance,omitempty"`
	CritChance     float64 `json:"crit_chance,omitempty"`
	CritMultiplier float64 `json:"crit_multiplier,omitempty"`
	AuraRange      float64 `json:"aura_range,omitempty"`
	AuraBuff       float64 `json:"aura_buff,omitempty"`
}

// HasAura reports whether the tower buffs its neighbours.
func (m Modifiers) HasAura() bool {
	return m.AuraRange > 0 && m.AuraBuff > 0
}
