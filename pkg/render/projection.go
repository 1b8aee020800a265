package render

import (
	"math"

	"forest-guardians/pkg/board"
)

// Projection переводит мировые координаты доски в пиксели экрана и обратно.
// Ось X мира идёт вправо, ось Z вниз.
type Projection struct {
	Size     int
	TileSize float64
	Scale    float64 // пикселей на мировую единицу
	OffsetX  float64
	OffsetY  float64
}

// origin is the world coordinate of the outer edge of tile 0.
func (p Projection) origin() float64 {
	return -float64(p.Size/2)*p.TileSize - p.TileSize/2
}

// TilePixels returns the side of one tile on screen.
func (p Projection) TilePixels() float64 {
	return p.TileSize * p.Scale
}

// BoardPixels returns the side of the whole board on screen.
func (p Projection) BoardPixels() float64 {
	return float64(p.Size) * p.TilePixels()
}

func (p Projection) ToScreen(v board.Vec) (float32, float32) {
	o := p.origin()
	return float32(p.OffsetX + (v.X-o)*p.Scale), float32(p.OffsetY + (v.Z-o)*p.Scale)
}

// TileRect returns the top-left corner of tile (x, z) on screen.
func (p Projection) TileRect(x, z int) (float32, float32) {
	s := p.TilePixels()
	return float32(p.OffsetX + float64(x)*s), float32(p.OffsetY + float64(z)*s)
}

// GridAt returns the tile under a screen point, or ok=false outside the board.
func (p Projection) GridAt(px, py int) (x, z int, ok bool) {
	s := p.TilePixels()
	if s <= 0 {
		return 0, 0, false
	}
	x = int(math.Floor((float64(px) - p.OffsetX) / s))
	z = int(math.Floor((float64(py) - p.OffsetY) / s))
	if x < 0 || z < 0 || x >= p.Size || z >= p.Size {
		return 0, 0, false
	}
	return x, z, true
}
