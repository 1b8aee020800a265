// pkg/board/pathfinding.go
package board

import (
	"errors"
	"fmt"
)

// ErrBoardGeneration означает, что из клеток пути нельзя собрать один маршрут.
var ErrBoardGeneration = errors.New("board generation failure")

// neighborOffsets — порядок обхода соседей: +x, −x, +z, −z.
var neighborOffsets = [4][2]int{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// pathNeighbors returns the path tiles 4-adjacent to t, in neighbor order.
func (b *Board) pathNeighbors(t *Tile) []*Tile {
	var out []*Tile
	for _, off := range neighborOffsets {
		n := b.TileAt(t.X+off[0], t.Z+off[1])
		if n != nil && n.Type == Path {
			out = append(out, n)
		}
	}
	return out
}

// DerivePath orders every path tile into the route enemies follow.
//
// The entry is the first tile (x-major scan) with exactly one path neighbor. From there the
// walk always takes the first unvisited neighbor until none is left. A route that does not
// cover every path tile means the path branches or is disconnected.
func DerivePath(b *Board) ([]Vec, error) {
	var start *Tile
	total := 0
	for _, t := range b.Tiles {
		if t.Type != Path {
			continue
		}
		total++
		if start == nil && len(b.pathNeighbors(t)) == 1 {
			start = t
		}
	}
	if start == nil {
		return nil, fmt.Errorf("%w: no path endpoint among %d path tiles", ErrBoardGeneration, total)
	}

	visited := map[TileID]bool{start.ID: true}
	route := []Vec{start.Position}
	current := start
	for {
		var next *Tile
		for _, n := range b.pathNeighbors(current) {
			if !visited[n.ID] {
				next = n
				break
			}
		}
		if next == nil {
			break
		}
		visited[next.ID] = true
		route = append(route, next.Position)
		current = next
	}

	if len(route) < total {
		return nil, fmt.Errorf("%w: route covers %d of %d path tiles", ErrBoardGeneration, len(route), total)
	}
	return route, nil
}
