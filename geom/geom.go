// Package geom provides utilities for manipulating rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// is generic over the coordinate type and spells out the half-open
// semantics that hit testing depends on: a rectangle contains its
// top-left corner but not its bottom-right one, and two rectangles
// that only share an edge do not intersect.
package geom

import (
	"fmt"
	"image"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Float | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Point is an X, Y coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// In reports whether p is in r. See [Rect.ContainsPoint].
func (p Point[T]) In(r Rect[T]) bool {
	return r.ContainsPoint(p.X, p.Y)
}

// ImagePoint converts p to an image.Point, truncating the coordinates
// if T is a floating point type.
func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Rect is a rectangle with its top-left corner at Min and its
// bottom-right corner at Max. Min is inside the rectangle while Max
// is not, exactly as with image.Rectangle.
//
// A Rect whose Min is not strictly above and to the left of its Max
// is empty. Empty rectangles contain no points and intersect nothing,
// but are otherwise perfectly valid values.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
// Unlike image.Rect, the corners are not canonicalized.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// XYWH returns the rectangle with its top-left corner at (x, y) that
// is w wide and h tall.
func XYWH[T Scalar](x, y, w, h T) Rect[T] {
	return Rt(x, y, x+w, y+h)
}

// FromImage converts an image.Rectangle to a Rect[int].
func FromImage(r image.Rectangle) Rect[int] {
	return Rt(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// ImageRect converts r to an image.Rectangle, truncating the
// coordinates if T is a floating point type.
func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rectangle{Min: r.Min.ImagePoint(), Max: r.Max.ImagePoint()}
}

// Dx returns the width of r.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height of r as a Point.
func (r Rect[T]) Size() Point[T] {
	return Pt(r.Dx(), r.Dy())
}

// Empty reports whether r contains no points.
func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Canon returns a copy of r with its corners swapped as necessary so
// that Min is above and to the left of Max.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Sub returns r translated by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Sub(p), Max: r.Max.Sub(p)}
}

// ContainsPoint reports whether (x, y) lies within r. Points on the
// left and top edges are contained while points on the right and
// bottom edges are not, so Rt(0, 0, 2, 2) contains (0, 0) but not
// (2, 2).
func (r Rect[T]) ContainsPoint(x, y T) bool {
	return r.Min.X <= x && x < r.Max.X &&
		r.Min.Y <= y && y < r.Max.Y
}

// Contains is the same as [Rect.ContainsPoint] but takes a Point.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.ContainsPoint(p.X, p.Y)
}

// Intersects reports whether r and other overlap by a non-zero area
// along both axes. Rectangles that merely touch do not intersect, so
// XYWH(0, 0, 2, 2) does not intersect XYWH(2, 0, 2, 2).
func (r Rect[T]) Intersects(other Rect[T]) bool {
	return max(r.Min.X, other.Min.X) < min(r.Max.X, other.Max.X) &&
		max(r.Min.Y, other.Min.Y) < min(r.Max.Y, other.Max.Y)
}

// Intersection returns the largest rectangle contained by both r and
// other. If the two do not intersect, as defined by
// [Rect.Intersects], it returns the zero Rect and false.
func (r Rect[T]) Intersection(other Rect[T]) (Rect[T], bool) {
	left := max(r.Min.X, other.Min.X)
	right := min(r.Max.X, other.Max.X)
	if left < right {
		// y increases downwards.
		top := max(r.Min.Y, other.Min.Y)
		bottom := min(r.Max.Y, other.Max.Y)
		if top < bottom {
			return Rt(left, top, right, bottom), true
		}
	}

	return Rect[T]{}, false
}

func (r Rect[T]) String() string {
	return r.Min.String() + "-" + r.Max.String()
}
