package defs

import (
	"fmt"
	"image/color"
)

// Evolution is the result kind of fusing two towers.
type Evolution int

const (
	EvolutionNone Evolution = iota
	EvolutionSteam
	EvolutionMud
	EvolutionLava
	EvolutionIce
	EvolutionPlasma
	EvolutionSand
	EvolutionAncestral
	EvolutionHybrid
)

func (e Evolution) String() string {
	if def, ok := evolutionDefs[e]; ok {
		return def.Name
	}
	if e == EvolutionNone {
		return ""
	}
	return fmt.Sprintf("Evolution(%d)", int(e))
}

// EvolutionDefinition describes the bonus granted by an evolution.
type EvolutionDefinition struct {
	Evolution Evolution
	Name      string
	Effect    string // пустая строка — бонуса нет
	Bonus     Modifiers
	Color     color.RGBA
}

var evolutionDefs = map[Evolution]EvolutionDefinition{
	EvolutionSteam: {
		Evolution: EvolutionSteam, Name: "Steam", Effect: "Area damage",
		Bonus: Modifiers{AreaEffect: true},
		Color: color.RGBA{204, 204, 255, 255},
	},
	EvolutionMud: {
		Evolution: EvolutionMud, Name: "Mud", Effect: "Severe slow",
		Bonus: Modifiers{SlowFactor: 0.3},
		Color: color.RGBA{136, 102, 51, 255},
	},
	EvolutionLava: {
		Evolution: EvolutionLava, Name: "Lava", Effect: "Damage over time",
		Bonus: Modifiers{DamageOverTime: true},
		Color: color.RGBA{255, 102, 0, 255},
	},
	EvolutionIce: {
		Evolution: EvolutionIce, Name: "Ice", Effect: "Temporary freeze",
		Bonus: Modifiers{FreezeChance: 0.3},
		Color: color.RGBA{170, 221, 255, 255},
	},
	EvolutionPlasma: {
		Evolution: EvolutionPlasma, Name: "Plasma", Effect: "Critical hits",
		Bonus: Modifiers{CritChance: 0.25, CritMultiplier: 2.5},
		Color: color.RGBA{255, 0, 255, 255},
	},
	EvolutionSand: {
		Evolution: EvolutionSand, Name: "Sand", Effect: "Blinds enemies",
		Bonus: Modifiers{ConfuseChance: 0.4},
		Color: color.RGBA{221, 204, 136, 255},
	},
	EvolutionAncestral: {
		Evolution: EvolutionAncestral, Name: "Ancestral", Effect: "Empowers nearby towers",
		Bonus: Modifiers{AuraRange: 5, AuraBuff: 0.3},
		Color: color.RGBA{102, 255, 102, 255},
	},
	EvolutionHybrid: {
		Evolution: EvolutionHybrid, Name: "Hybrid",
		Color: color.RGBA{255, 255, 255, 255},
	},
}

// elementPair — неупорядоченная пара, меньший элемент всегда первым.
type elementPair [2]Element

func pairOf(a, b Element) elementPair {
	if a > b {
		a, b = b, a
	}
	return elementPair{a, b}
}

// RecipeLibrary maps unordered element pairs to their evolution.
// Pairs with Life and every pair not listed are resolved by LookupEvolution.
var RecipeLibrary = map[elementPair]Evolution{
	pairOf(ElementWater, ElementFire):  EvolutionSteam,
	pairOf(ElementEarth, ElementWater): EvolutionMud,
	pairOf(ElementFire, ElementEarth):  EvolutionLava,
	pairOf(ElementAir, ElementWater):   EvolutionIce,
	pairOf(ElementAir, ElementFire):    EvolutionPlasma,
	pairOf(ElementEarth, ElementAir):   EvolutionSand,
}

// LookupEvolution resolves the evolution of fusing a and b. The result does not depend on order.
func LookupEvolution(a, b Element) Evolution {
	if evo, ok := RecipeLibrary[pairOf(a, b)]; ok {
		return evo
	}
	if a == ElementLife || b == ElementLife {
		return EvolutionAncestral
	}
	return EvolutionHybrid
}

// EvolutionDef returns the definition of evo.
func EvolutionDef(evo Evolution) (EvolutionDefinition, bool) {
	def, ok := evolutionDefs[evo]
	return def, ok
}

// FusedName names the tower produced by evo. Ancestral towers carry the name of the
// non-Life source ("Fire Ancestral"); when both sources are Life the name is "Life Ancestral".
func FusedName(evo Evolution, elemA Element, nameA string, nameB string) string {
	if evo != EvolutionAncestral {
		return evo.String()
	}
	other := nameA
	if elemA == ElementLife {
		other = nameB
	}
	return other + " Ancestral"
}

// TowerColor picks the display colour of a tower from its element and evolution names.
// Unknown names fall back to white.
func TowerColor(element, evolution string) color.RGBA {
	if evolution != "" {
		for _, def := range evolutionDefs {
			if def.Name == evolution {
				return def.Color
			}
		}
	}
	if e, err := ParseElement(element); err == nil {
		return elementDefs[e].Color
	}
	return color.RGBA{255, 255, 255, 255}
}
