package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ShapeKind identifies the decorative shape drawn on an image.
type ShapeKind int

const (
	// Ellipse is drawn for indices where index mod 3 == 0.
	Ellipse ShapeKind = iota
	// Rectangle is drawn for indices where index mod 3 == 1.
	Rectangle
	// Triangle is drawn for indices where index mod 3 == 2.
	Triangle
)

// String returns the lowercase shape name.
func (k ShapeKind) String() string {
	switch k {
	case Ellipse:
		return "ellipse"
	case Rectangle:
		return "rectangle"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ShapeFor returns the shape drawn for the image at index.
func ShapeFor(index int) ShapeKind {
	m := index % 3
	if m < 0 {
		m += 3
	}
	return ShapeKind(m)
}

// ShapeBounds is the inclusive pixel box the shapes are drawn in.
var ShapeBounds = image.Rect(20, 20, 80, 80)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498

// DrawShape fills the shape of the given kind in c. Unknown kinds draw nothing.
func DrawShape(dst *image.RGBA, kind ShapeKind, c color.Color) {
	// The box is inclusive, so the covered area extends one pixel past Max.
	x0, y0 := float32(ShapeBounds.Min.X), float32(ShapeBounds.Min.Y)
	x1, y1 := float32(ShapeBounds.Max.X+1), float32(ShapeBounds.Max.Y+1)
	src := image.NewUniform(c)

	switch kind {
	case Rectangle:
		r := image.Rect(ShapeBounds.Min.X, ShapeBounds.Min.Y, ShapeBounds.Max.X+1, ShapeBounds.Max.Y+1)
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
	case Ellipse:
		z := newRasterizer(dst)
		cx, cy := (x0+x1)/2, (y0+y1)/2
		rx, ry := (x1-x0)/2, (y1-y0)/2
		kx, ky := rx*kappa, ry*kappa
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), src, image.Point{})
	case Triangle:
		// Apex over the centre of column 50, base spanning columns 20 to 80.
		z := newRasterizer(dst)
		z.MoveTo((x0+x1)/2, y0)
		z.LineTo(x0, y1)
		z.LineTo(x1, y1)
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), src, image.Point{})
	}
}

func newRasterizer(dst *image.RGBA) *vector.Rasterizer {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}
