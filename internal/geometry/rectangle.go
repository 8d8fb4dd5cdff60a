// Package geometry computes the canvas a rotated image needs.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions is returned for a rectangle with a non-positive side.
var ErrInvalidDimensions = errors.New("geometry: invalid dimensions")

// Rectangle is an axis-aligned rectangle plus the bounding box it occupies
// after the last rotation. It is a value; Rotate returns a new Rectangle.
type Rectangle struct {
	width          int
	height         int
	boundingWidth  int
	boundingHeight int
}

// NewRectangle returns a rectangle whose bounding box equals its own size.
func NewRectangle(width, height int) (Rectangle, error) {
	if width <= 0 || height <= 0 {
		return Rectangle{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return Rectangle{
		width:          width,
		height:         height,
		boundingWidth:  width,
		boundingHeight: height,
	}, nil
}

func (r Rectangle) Width() int          { return r.width }
func (r Rectangle) Height() int         { return r.height }
func (r Rectangle) BoundingWidth() int  { return r.boundingWidth }
func (r Rectangle) BoundingHeight() int { return r.boundingHeight }

// Rotate returns r with the bounding box of the original rectangle rotated by
// degrees. The box follows GD's imagerotate: corners go through the affine
// matrix [cos, sin, -sin, cos, 0, 0] and each extent is ceil(max-min)+1.
// Exact multiples of 90 skip the trigonometry; there is no tolerance for
// angles that are merely close to one.
func (r Rectangle) Rotate(degrees float64) Rectangle {
	out := r

	if degrees == math.Trunc(degrees) && math.Mod(degrees, 90) == 0 {
		if math.Mod(math.Abs(degrees), 180) == 0 {
			out.boundingWidth, out.boundingHeight = r.width, r.height
		} else {
			out.boundingWidth, out.boundingHeight = r.height, r.width
		}
		return out
	}

	rad := degrees * math.Pi / 180
	m := affine{math.Cos(rad), math.Sin(rad), -math.Sin(rad), math.Cos(rad), 0, 0}

	w, h := float64(r.width), float64(r.height)
	corners := [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := m.apply(c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	out.boundingWidth = int(math.Ceil(maxX-minX)) + 1
	out.boundingHeight = int(math.Ceil(maxY-minY)) + 1
	return out
}

// affine is a 2x3 matrix in GD order: x' = a*x + c*y + e, y' = b*x + d*y + f.
type affine [6]float64

func (m affine) apply(x, y float64) (float64, float64) {
	return x*m[0] + y*m[2] + m[4], x*m[1] + y*m[3] + m[5]
}
