// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	BgColor  color.RGBA
	Disabled bool
	Active   bool // подсвечена рамкой, например выбранный элемент
}

func NewButton(x, y, w, h int, label string, bg color.RGBA) *Button {
	return &Button{
		Rect:    image.Rect(x, y, x+w, y+h),
		Text:    label,
		BgColor: bg,
	}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked reports a hit on an enabled button.
func (b *Button) Clicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку с подписью по центру.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.BgColor
	if b.Disabled {
		bg = color.RGBA{60, 60, 60, 255}
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)

	border := color.RGBA{20, 20, 20, 255}
	width := float32(1)
	if b.Active {
		border = color.RGBA{255, 215, 0, 255}
		width = 3
	}
	vector.StrokeRect(screen, x, y, w, h, width, border, false)

	bounds := text.BoundString(face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	fg := color.RGBA{255, 255, 255, 255}
	if luminance(bg) > 150 {
		fg = color.RGBA{0, 0, 0, 255}
	}
	text.Draw(screen, b.Text, face, tx, ty, fg)
}

func luminance(c color.RGBA) int {
	return (int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000
}
