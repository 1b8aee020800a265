// pkg/board/vec.go
package board

import "math"

// Vec — точка или направление на плоскости доски (ось Y не используется).
type Vec struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Z + o.Z} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Z - o.Z} }

func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Z * k} }

// Len returns the euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Z) }

// Distance returns the euclidean distance between v and o.
func (v Vec) Distance(o Vec) float64 { return v.Sub(o).Len() }

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{
		X: v.X*cos - v.Z*sin,
		Z: v.X*sin + v.Z*cos,
	}
}
