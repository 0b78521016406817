package geo

import "math"

// BoundingBox is an axis-aligned bounding box in 3D.
type BoundingBox struct {
	Min Point3D `json:"min"`
	Max Point3D `json:"max"`
}

// NewBoundingBox creates a box from two opposite corners, normalizing
// per axis so Min <= Max always holds.
func NewBoundingBox(a, b Point3D) BoundingBox {
	return BoundingBox{
		Min: Point3D{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Point3D{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// FromCenterSize creates a box from a center point and full dimensions.
func FromCenterSize(center, size Point3D) BoundingBox {
	half := size.Scale(0.5)
	return NewBoundingBox(center.Sub(half), center.Add(half))
}

// Center returns the center point of the box.
func (b BoundingBox) Center() Point3D {
	return Point3D{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the box dimensions.
func (b BoundingBox) Size() Point3D {
	return b.Max.Sub(b.Min)
}

// Volume returns the box volume.
func (b BoundingBox) Volume() float64 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Intersects reports whether the box intersects another box.
// Touching faces count as intersecting.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Contains reports whether the point lies inside or on the box.
func (b BoundingBox) Contains(p Point3D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Encloses reports whether the box fully contains another box on all
// axes.
func (b BoundingBox) Encloses(other BoundingBox) bool {
	return b.Min.X <= other.Min.X && b.Max.X >= other.Max.X &&
		b.Min.Y <= other.Min.Y && b.Max.Y >= other.Max.Y &&
		b.Min.Z <= other.Min.Z && b.Max.Z >= other.Max.Z
}

// Gap returns the minimum Euclidean separation between two boxes,
// 0 if they intersect. The per-axis separation is clamped to >= 0 and
// the three axis gaps are combined as a 3D norm.
func (b BoundingBox) Gap(other BoundingBox) float64 {
	if b.Intersects(other) {
		return 0
	}
	dx := math.Max(0, math.Max(b.Min.X-other.Max.X, other.Min.X-b.Max.X))
	dy := math.Max(0, math.Max(b.Min.Y-other.Max.Y, other.Min.Y-b.Max.Y))
	dz := math.Max(0, math.Max(b.Min.Z-other.Max.Z, other.Min.Z-b.Max.Z))
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// OverlapVolume returns the volume of the intersection of two boxes,
// 0 if they do not intersect.
func (b BoundingBox) OverlapVolume(other BoundingBox) float64 {
	if !b.Intersects(other) {
		return 0
	}
	dx := math.Min(b.Max.X, other.Max.X) - math.Max(b.Min.X, other.Min.X)
	dy := math.Min(b.Max.Y, other.Max.Y) - math.Max(b.Min.Y, other.Min.Y)
	dz := math.Min(b.Max.Z, other.Max.Z) - math.Max(b.Min.Z, other.Min.Z)
	return dx * dy * dz
}

// Union returns the smallest box enclosing both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		Min: Point3D{
			X: math.Min(b.Min.X, other.Min.X),
			Y: math.Min(b.Min.Y, other.Min.Y),
			Z: math.Min(b.Min.Z, other.Min.Z),
		},
		Max: Point3D{
			X: math.Max(b.Max.X, other.Max.X),
			Y: math.Max(b.Max.Y, other.Max.Y),
			Z: math.Max(b.Max.Z, other.Max.Z),
		},
	}
}
