// Package plot rasterizes sampled curves for visual inspection.
package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/adaptive"
)

// Options controls the appearance of [Render].
type Options struct {
	Width, Height int
	// Margin is the empty border, in pixels, around the polyline.
	Margin float64
	// LineWidth is the stroke width of the polyline, in pixels.
	LineWidth float64
	// PointRadius is the radius of the marker drawn at every sample. Zero
	// disables markers.
	PointRadius float64

	Background color.Color
	Line       color.Color
	Points     color.Color
}

// DefaultOptions draws a black polyline with red sample markers on white.
var DefaultOptions = Options{
	Width:       512,
	Height:      512,
	Margin:      16,
	LineWidth:   1.5,
	PointRadius: 2.5,
	Background:  color.White,
	Line:        color.Black,
	Points:      color.RGBA{R: 0xd0, A: 0xff},
}

// markerSides is the number of sides of the polygon approximating a marker.
const markerSides = 16

// Render draws the polyline through pts, scaled to fit the image with the y
// axis pointing up. Points with NaN or infinite coordinates are left out, and
// so are the segments touching them.
func Render(pts []adaptive.Point, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	finite := make([]adaptive.Point, 0, len(pts))
	for _, pt := range pts {
		if isFinite(pt) {
			finite = append(finite, pt)
		}
	}
	if len(finite) == 0 {
		return img
	}

	dst := adaptive.Rect{
		X0: opts.Margin,
		Y0: opts.Margin,
		X1: float64(opts.Width) - opts.Margin,
		Y1: float64(opts.Height) - opts.Margin,
	}
	aff := adaptive.FitRect(adaptive.BoundingBox(finite), dst, true)
	mapped := make([]adaptive.Point, len(pts))
	for i, pt := range pts {
		mapped[i] = pt.Transform(aff)
	}

	if opts.LineWidth > 0 {
		z := vector.NewRasterizer(opts.Width, opts.Height)
		for i := 1; i < len(mapped); i++ {
			if isFinite(mapped[i-1]) && isFinite(mapped[i]) {
				segment(z, mapped[i-1], mapped[i], opts.LineWidth/2)
			}
		}
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Line), image.Point{})
	}
	if opts.PointRadius > 0 {
		z := vector.NewRasterizer(opts.Width, opts.Height)
		for _, pt := range mapped {
			if isFinite(pt) {
				marker(z, pt, opts.PointRadius)
			}
		}
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Points), image.Point{})
	}
	return img
}

func isFinite(pt adaptive.Point) bool {
	return !pt.IsNaN() && !pt.IsInf()
}

// WritePNG renders pts and encodes the image as PNG.
func WritePNG(w io.Writer, pts []adaptive.Point, opts Options) error {
	return png.Encode(w, Render(pts, opts))
}

// segment adds the rectangle of half-width hw around the segment from p0 to p1. All rectangles
// share one orientation so that overlapping joints don't cancel out.
func segment(z *vector.Rasterizer, p0, p1 adaptive.Point, hw float64) {
	d := p1.Sub(p0)
	l := d.Hypot()
	if l == 0 {
		return
	}
	n := adaptive.Vec(-d.Y, d.X).Mul(hw / l)
	moveTo(z, p0.Translate(n))
	lineTo(z, p1.Translate(n))
	lineTo(z, p1.Translate(n.Negate()))
	lineTo(z, p0.Translate(n.Negate()))
	z.ClosePath()
}

func marker(z *vector.Rasterizer, c adaptive.Point, r float64) {
	for i := 0; i < markerSides; i++ {
		pt := c.Translate(adaptive.VecFromAngle(2 * math.Pi * float64(i) / markerSides).Mul(r))
		if i == 0 {
			moveTo(z, pt)
		} else {
			lineTo(z, pt)
		}
	}
	z.ClosePath()
}

func moveTo(z *vector.Rasterizer, pt adaptive.Point) {
	z.MoveTo(float32(pt.X), float32(pt.Y))
}

func lineTo(z *vector.Rasterizer, pt adaptive.Point) {
	z.LineTo(float32(pt.X), float32(pt.Y))
}
