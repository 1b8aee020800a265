// internal/defs/elements.go
package defs

import (
	"fmt"
	"image/color"
	"strings"
)

// Element is the tag of a tower. The five base elements can be built;
// ElementFused marks towers produced by fusion.
type Element int

const (
	ElementWater Element = iota
	ElementFire
	ElementEarth
	ElementAir
	ElementLife
	ElementFused
)

// BaseElements lists the buildable elements in menu order.
var BaseElements = []Element{ElementWater, ElementFire, ElementEarth, ElementAir, ElementLife}

func (e Element) String() string {
	switch e {
	case ElementWater:
		return "Water"
	case ElementFire:
		return "Fire"
	case ElementEarth:
		return "Earth"
	case ElementAir:
		return "Air"
	case ElementLife:
		return "Life"
	case ElementFused:
		return "Fused"
	default:
		return fmt.Sprintf("Element(%d)", int(e))
	}
}

// IsBase reports whether towers of this element can be built directly.
func (e Element) IsBase() bool {
	return e >= ElementWater && e <= ElementLife
}

// ParseElement accepts a base element name, case-insensitively.
func ParseElement(s string) (Element, error) {
	for _, e := range BaseElements {
		if strings.EqualFold(e.String(), s) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

// ElementDefinition holds the static data of a level-1 tower.
type ElementDefinition struct {
	Element     Element
	Name        string
	Effect      string // подпись эффекта, попадает в набор эффектов башни
	Damage      float64
	AttackSpeed float64 // атак в секунду
	Range       float64 // мировых единиц
	Modifiers   Modifiers
	Color       color.RGBA
}

var elementDefs = map[Element]ElementDefinition{
	ElementWater: {
		Element: ElementWater, Name: "Water", Effect: "Slows enemies",
		Damage: 2, AttackSpeed: 1, Range: 5,
		Modifiers: Modifiers{SlowFactor: 0.5},
		Color:     color.RGBA{0, 119, 255, 255},
	},
	ElementFire: {
		Element: ElementFire, Name: "Fire", Effect: "Amplified damage",
		Damage: 3, AttackSpeed: 1, Range: 5,
		Color: color.RGBA{255, 51, 0, 255},
	},
	ElementEarth: {
		Element: ElementEarth, Name: "Earth", Effect: "Reduces armor",
		Damage: 2, AttackSpeed: 1, Range: 5,
		Modifiers: Modifiers{ArmorReduction: 0.3},
		Color:     color.RGBA{136, 85, 0, 255},
	},
	ElementAir: {
		Element: ElementAir, Name: "Air", Effect: "Extended range",
		Damage: 2, AttackSpeed: 1, Range: 7,
		Color: color.RGBA{204, 255, 255, 255},
	},
	ElementLife: {
		Element: ElementLife, Name: "Life", Effect: "Heals ecosystem",
		Damage: 2, AttackSpeed: 1, Range: 5,
		Modifiers: Modifiers{HealFactor: 0.5},
		Color:     color.RGBA{51, 204, 51, 255},
	},
}

// BaseStatsFor returns the level-1 stats of a buildable element.
func BaseStatsFor(e Element) (ElementDefinition, bool) {
	def, ok := elementDefs[e]
	return def, ok
}
