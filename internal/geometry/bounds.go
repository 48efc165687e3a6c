package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Point3 is a position in the engine's Y-up coordinate space.
type Point3 = mgl32.Vec3

// Bounds is an axis-aligned box. NewBounds returns an empty box whose
// extremes are inverted sentinels; extending it with at least one point
// makes it valid. Callers must check Valid before trusting Min/Max or
// Center of a box that may never have been extended.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func NewBounds() Bounds {
	return Bounds{
		Min: mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Extend grows the box to contain p.
func (b *Bounds) Extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Valid reports whether the box contains at least one point.
func (b Bounds) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Center returns the midpoint of the box per axis. Undefined for an
// invalid box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box per axis. Undefined for an invalid box.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// BoundsOf computes the box of a point list.
func BoundsOf(points []mgl32.Vec3) Bounds {
	b := NewBounds()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}
