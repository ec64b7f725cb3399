// Package hittest determines whether a point, or two visual elements,
// hit each other. Elements are first tested by their bounding
// rectangles and then, if requested, image and canvas elements are
// sampled so that their transparent pixels don't count as hits. This
// lets irregularly shaped elements react to pointer events and
// collisions realistically.
//
// All coordinates are device pixels.
package hittest

import (
	"image"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures a hit test. The zero value is the default.
type Options struct {
	// Transparency makes transparent pixels of image and canvas
	// elements miss. It has no effect on other kinds of elements.
	Transparency bool
}

// Tester performs hit tests with a fixed set of Options. A Tester is
// never modified after creation and may be shared freely.
type Tester struct {
	opts   Options
	logger zerolog.Logger
}

// TesterOption configures a Tester in New.
type TesterOption func(*Tester)

// WithLogger sets the logger that a Tester reports degraded results
// to. By default, nothing is logged.
func WithLogger(logger zerolog.Logger) TesterOption {
	return func(t *Tester) {
		t.logger = logger
	}
}

// New returns a Tester that tests using opts.
func New(opts Options, options ...TesterOption) *Tester {
	t := Tester{
		opts:   opts,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(&t)
	}
	return &t
}

// Options returns the options that t was created with.
func (t *Tester) Options() Options {
	return t.opts
}

// Point is shorthand for New(opts).Point(el, x, y), logging to the
// global zerolog logger.
func Point(el Element, x, y int, opts Options) bool {
	return New(opts, WithLogger(log.Logger)).Point(el, x, y)
}

// Object is shorthand for New(opts).Object(el, target), logging to
// the global zerolog logger.
func Object(el, target Element, opts Options) bool {
	return New(opts, WithLogger(log.Logger)).Object(el, target)
}

// Point reports whether the point (x, y) hits el. The point must be
// inside of el's bounds as defined by geom.Rect.ContainsPoint. If
// transparency is enabled and el can be rasterized, the pixel under
// the point must also not be fully transparent.
//
// If el can't actually produce a sample, the result is based on the
// bounds alone.
func (t *Tester) Point(el Element, x, y int) bool {
	if el == nil {
		return false
	}

	r := el.Bounds()
	if !r.ContainsPoint(x, y) {
		return false
	}

	if !t.opts.Transparency || !el.Kind().Rasterizable() {
		return true
	}

	p := image.Pt(x-r.Min.X, y-r.Min.Y)
	sample := el.Sample(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	if sample == nil {
		t.logger.Debug().Stringer("kind", el.Kind()).Msg("element can't be rasterized, using bounds")
		return true
	}

	// Only the top-left pixel counts, even if a sample is larger.
	return sample.AlphaAt(sample.Rect.Min.X, sample.Rect.Min.Y).A != 0
}

// Object reports whether el and target hit each other. Their bounds
// must intersect as defined by geom.Rect.Intersects. If transparency
// is enabled and both can be rasterized, there must also be at least
// one position in the intersection where neither is fully
// transparent.
//
// A nil target never hits anything.
func (t *Tester) Object(el, target Element) bool {
	if el == nil || target == nil {
		return false
	}

	a, b := el.Bounds(), target.Bounds()
	intersects := a.Intersects(b)
	if !intersects {
		return false
	}

	if !t.opts.Transparency || !el.Kind().Rasterizable() || !target.Kind().Rasterizable() {
		return intersects
	}

	i, ok := a.Intersection(b)
	if !ok {
		t.logger.Error().
			Stringer("bounds", a).
			Stringer("target", b).
			Msg("bounds intersect but the intersection is empty")
		return intersects
	}

	// Clamp to at least one pixel so that nothing is skipped if the
	// intersection ever rounds down. This can be off by up to half a
	// pixel.
	size := image.Pt(max(i.Dx(), 1), max(i.Dy(), 1))
	sa := el.Sample(region(i.Min.Sub(a.Min).ImagePoint(), size))
	sb := target.Sample(region(i.Min.Sub(b.Min).ImagePoint(), size))
	if sa == nil || sb == nil {
		t.logger.Debug().
			Stringer("kind", el.Kind()).
			Stringer("target", target.Kind()).
			Msg("elements can't be rasterized, using bounds")
		return intersects
	}

	return opaqueOverlap(sa, sb)
}

func region(origin, size image.Point) image.Rectangle {
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// opaqueOverlap reports whether there is any position at which
// neither a nor b is fully transparent. Both are scanned in lock-step
// from their top-left corners over the area that they have in common,
// stopping at the first match.
func opaqueOverlap(a, b *image.Alpha) bool {
	w := min(a.Rect.Dx(), b.Rect.Dx())
	h := min(a.Rect.Dy(), b.Rect.Dy())
	for y := 0; y < h; y++ {
		ra := a.Pix[y*a.Stride : y*a.Stride+w]
		rb := b.Pix[y*b.Stride : y*b.Stride+w]
		for x := range ra {
			if ra[x] != 0 && rb[x] != 0 {
				return true
			}
		}
	}
	return false
}
