// internal/ui/recipe_book.go
package ui

import (
	"fmt"
	"image/color"

	"forest-guardians/internal/app"
	"forest-guardians/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Recipe — строка книги: пара элементов и результат слияния.
type Recipe struct {
	A, B      defs.Element
	Evolution defs.Evolution
	Effect    string
}

// Recipes lists every named fusion of two base elements, Life pairs collapsed into one line.
func Recipes() []Recipe {
	var out []Recipe
	for i, a := range defs.BaseElements {
		for _, b := range defs.BaseElements[i+1:] {
			if a == defs.ElementLife || b == defs.ElementLife {
				continue
			}
			evo := defs.LookupEvolution(a, b)
			def, _ := defs.EvolutionDef(evo)
			out = append(out, Recipe{A: a, B: b, Evolution: evo, Effect: def.Effect})
		}
	}
	return out
}

// RecipeBook отображает таблицу слияний; доступные рецепты подсвечены.
type RecipeBook struct {
	IsVisible bool
	X, Y      float32
	Width     float32
	Height    float32
	fontFace  font.Face
	recipes   []Recipe
}

func NewRecipeBook(x, y, width, height float32, fontFace font.Face) *RecipeBook {
	return &RecipeBook{
		IsVisible: true,
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		fontFace:  fontFace,
		recipes:   Recipes(),
	}
}

// Toggle переключает видимость книги рецептов.
func (rb *RecipeBook) Toggle() {
	rb.IsVisible = !rb.IsVisible
}

// Draw отрисовывает книгу рецептов, если она видима. Рецепт считается доступным,
// если на поле есть башни обоих элементов.
func (rb *RecipeBook) Draw(screen *ebiten.Image, towers []app.TowerView) {
	if !rb.IsVisible {
		return
	}

	whiteColor := color.RGBA{255, 255, 255, 255}
	grayColor := color.RGBA{110, 110, 110, 255}

	vector.DrawFilledRect(screen, rb.X, rb.Y, rb.Width, rb.Height, color.RGBA{20, 20, 30, 230}, false)
	vector.StrokeRect(screen, rb.X, rb.Y, rb.Width, rb.Height, 1, color.RGBA{70, 100, 120, 255}, false)

	owned := make(map[string]int)
	for _, t := range towers {
		owned[t.Element]++
	}
	available := func(a, b defs.Element) bool {
		return owned[a.String()] > 0 && owned[b.String()] > 0
	}

	lh := float32(rb.fontFace.Metrics().Height.Ceil()) + 4
	x := int(rb.X) + 10
	y := rb.Y + lh + 4
	text.Draw(screen, "Recipes [B]", rb.fontFace, x, int(y), whiteColor)
	y += lh * 1.5

	for _, r := range rb.recipes {
		c := grayColor
		if available(r.A, r.B) {
			c = whiteColor
		}
		line := fmt.Sprintf("%s + %s = %s (%s)", r.A, r.B, r.Evolution, r.Effect)
		text.Draw(screen, line, rb.fontFace, x, int(y), c)
		y += lh
	}

	ancestral, _ := defs.EvolutionDef(defs.EvolutionAncestral)
	c := grayColor
	if owned[defs.ElementLife.String()] > 0 && len(towers) > 1 {
		c = whiteColor
	}
	text.Draw(screen, fmt.Sprintf("Life + any = %s (%s)", ancestral.Name, ancestral.Effect), rb.fontFace, x, int(y), c)
	y += lh
	text.Draw(screen, "Anything else = Hybrid", rb.fontFace, x, int(y), grayColor)
}
