package board

import (
	"errors"
	"testing"
)

func manhattan(x1, z1, x2, z2 int) int {
	dx, dz := x1-x2, z1-z2
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	return dx + dz
}

// customBoard builds a grass board with the given cells marked as path.
func customBoard(size int, cells [][2]int) *Board {
	b := &Board{Size: size, TileSize: 1, Tiles: make([]*Tile, size*size)}
	for x := 0; x < size; x++ {
		for z := 0; z < size; z++ {
			id := b.idOf(x, z)
			b.Tiles[id] = &Tile{ID: id, X: x, Z: z, Position: Vec{float64(x), float64(z)}}
		}
	}
	for _, c := range cells {
		b.TileAt(c[0], c[1]).Type = Path
	}
	return b
}

func TestGenerateDefaultLayout(t *testing.T) {
	b, err := Generate(15, 2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	pathTiles := b.CountType(Path)
	if pathTiles != 40 {
		t.Errorf("expected 40 path tiles, got %d", pathTiles)
	}
	if len(b.Path) != pathTiles {
		t.Fatalf("path length %d != path tile count %d", len(b.Path), pathTiles)
	}

	for i := 1; i < len(b.Path); i++ {
		x1, z1 := b.GridOf(b.Path[i-1])
		x2, z2 := b.GridOf(b.Path[i])
		if manhattan(x1, z1, x2, z2) != 1 {
			t.Fatalf("waypoints %d and %d are not grid-adjacent: (%d,%d) -> (%d,%d)", i-1, i, x1, z1, x2, z2)
		}
	}

	for _, end := range []Vec{b.Path[0], b.Path[len(b.Path)-1]} {
		x, z := b.GridOf(end)
		if n := len(b.pathNeighbors(b.TileAt(x, z))); n != 1 {
			t.Errorf("endpoint (%d,%d) has %d path neighbors, want 1", x, z, n)
		}
	}

	if x, z := b.GridOf(b.Path[0]); x != 2 || z != 6 {
		t.Errorf("entry at (%d,%d), want (2,6)", x, z)
	}
	if x, z := b.GridOf(b.Path[len(b.Path)-1]); x != 5 || z != 4 {
		t.Errorf("exit at (%d,%d), want (5,4)", x, z)
	}
}

func TestGenerateTileTypes(t *testing.T) {
	b, err := Generate(15, 2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	cases := []struct {
		x, z int
		want TileType
	}{
		{0, 7, Grass},
		{14, 7, Grass},
		{1, 7, Water},
		{5, 7, Path},
		{12, 7, Path},
		{0, 0, Grass},
		{5, 3, Grass},
	}
	for _, c := range cases {
		if got := b.TileAt(c.x, c.z).Type; got != c.want {
			t.Errorf("tile (%d,%d) = %v, want %v", c.x, c.z, got, c.want)
		}
	}

	tile := b.TileAt(0, 0)
	if tile.Position != (Vec{-15, -15}) {
		t.Errorf("tile (0,0) at %+v, want {-15 -15}", tile.Position)
	}
	if b.Tile(tile.ID) != tile {
		t.Error("Tile(id) does not round-trip")
	}
}

func TestGenerateRejectsDegenerateSizes(t *testing.T) {
	for _, size := range []int{0, 4} {
		if _, err := Generate(size, 2); !errors.Is(err, ErrBoardGeneration) {
			t.Errorf("size %d: expected ErrBoardGeneration, got %v", size, err)
		}
	}
}

func TestDerivePathFailures(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
	}{
		{"closed loop has no endpoint", [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}, {2, 3}, {1, 3}, {1, 2}}},
		{"branch leaves tiles unvisited", [][2]int{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {2, 1}, {2, 0}}},
		{"disconnected segments", [][2]int{{0, 0}, {1, 0}, {3, 3}, {4, 3}}},
		{"no path tiles", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DerivePath(customBoard(5, tt.cells))
			if !errors.Is(err, ErrBoardGeneration) {
				t.Fatalf("expected ErrBoardGeneration, got %v", err)
			}
		})
	}
}

func TestDerivePathNeighborOrder(t *testing.T) {
	// Г-образный путь: вход (0,0), дальше по +x, затем по +z.
	b := customBoard(4, [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}})
	route, err := DerivePath(b)
	if err != nil {
		t.Fatalf("DerivePath: %v", err)
	}
	want := []Vec{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	if len(route) != len(want) {
		t.Fatalf("route length %d, want %d", len(route), len(want))
	}
	for i := range want {
		if route[i] != want[i] {
			t.Errorf("route[%d] = %+v, want %+v", i, route[i], want[i])
		}
	}
}
