package component

// Combat — боевые характеристики башни
type Combat struct {
	Damage      float64
	AttackSpeed float64 // атак в секунду
	Range       float64 // в мировых единицах
	Cooldown    float64 // накопленное время с последней атаки
}
