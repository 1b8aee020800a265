// pkg/board/board.go
package board

import (
	"fmt"
	"math"

	"forest-guardians/internal/types"
)

// TileType — тип местности клетки. Не меняется после генерации.
type TileType int

const (
	Grass TileType = iota
	Path
	Water
)

func (t TileType) String() string {
	switch t {
	case Grass:
		return "grass"
	case Path:
		return "path"
	case Water:
		return "water"
	default:
		return fmt.Sprintf("TileType(%d)", int(t))
	}
}

// TileID is the flat index of a tile: x*size + z.
type TileID int

type Tile struct {
	ID       TileID
	X, Z     int
	Position Vec
	Type     TileType
	Occupied bool
	TowerID  types.EntityID
}

// Board — сетка клеток и маршрут врагов.
type Board struct {
	Size     int
	TileSize float64
	Tiles    []*Tile // индекс = TileID
	Path     []Vec
}

// Generate builds the fixed layout for a size×size grid and derives the enemy route.
// It fails with ErrBoardGeneration when the layout has no single walkable route.
func Generate(size int, tileSize float64) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: board size %d", ErrBoardGeneration, size)
	}

	b := &Board{
		Size:     size,
		TileSize: tileSize,
		Tiles:    make([]*Tile, size*size),
	}
	half := float64(size) / 2
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			id := b.idOf(x, z)
			b.Tiles[id] = &Tile{
				ID: id,
				X:  x,
				Z:  z,
				Position: Vec{
					X: (float64(x) - half) * tileSize,
					Z: (float64(z) - half) * tileSize,
				},
				Type: layoutType(size, x, z),
			}
		}
	}

	path, err := DerivePath(b)
	if err != nil {
		return nil, err
	}
	b.Path = path
	return b, nil
}

// layoutType applies the river and the L-shaped loop rules.
func layoutType(size, x, z int) TileType {
	const near = 2
	third := size / 3
	far := size - 3

	switch {
	case x == near && z >= near && z < size/2,
		z == near && x >= near && x <= far,
		x == far && z >= near && z <= far,
		z == far && x >= third && x <= far,
		x == third && z >= near+2 && z <= far:
		return Path
	case z == size/2 && x != 0 && x != size-1:
		return Water
	default:
		return Grass
	}
}

func (b *Board) idOf(x, z int) TileID {
	return TileID(x*b.Size + z)
}

// Contains reports whether (x, z) is inside the grid.
func (b *Board) Contains(x, z int) bool {
	return x >= 0 && x < b.Size && z >= 0 && z < b.Size
}

// TileAt returns the tile at grid coordinates, or nil outside the grid.
func (b *Board) TileAt(x, z int) *Tile {
	if !b.Contains(x, z) {
		return nil
	}
	return b.Tiles[b.idOf(x, z)]
}

// Tile returns the tile with the given id, or nil.
func (b *Board) Tile(id TileID) *Tile {
	if id < 0 || int(id) >= len(b.Tiles) {
		return nil
	}
	return b.Tiles[id]
}

// CountType returns the number of tiles of type t.
func (b *Board) CountType(t TileType) int {
	n := 0
	for _, tile := range b.Tiles {
		if tile.Type == t {
			n++
		}
	}
	return n
}

// GridOf converts a world position to the nearest grid cell.
func (b *Board) GridOf(p Vec) (int, int) {
	half := float64(b.Size) / 2
	x := int(math.Floor(p.X/b.TileSize + half + 0.5))
	z := int(math.Floor(p.Z/b.TileSize + half + 0.5))
	return x, z
}
