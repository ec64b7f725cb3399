package hittest

import (
	"image"

	"deedles.dev/hittest/format"
	"deedles.dev/hittest/geom"
	xdraw "golang.org/x/image/draw"
)

// Kind identifies the visual type of an element.
type Kind int

const (
	// KindOther is any element without accessible pixel data.
	KindOther Kind = iota

	// KindImage is a raster image drawn into the element's box.
	KindImage

	// KindCanvas is a pixel surface, such as an HTML canvas.
	KindCanvas
)

// Rasterizable reports whether elements of kind k can be sampled for
// transparency.
func (k Kind) Rasterizable() bool {
	switch k {
	case KindImage, KindCanvas:
		return true
	case KindOther:
		fallthrough
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindImage:
		return "image"
	case KindCanvas:
		return "canvas"
	default:
		return "unknown"
	}
}

// Element is a visual element that can be hit tested.
type Element interface {
	// Kind returns the visual type of the element.
	Kind() Kind

	// Bounds returns the on-screen bounding rectangle of the element
	// in device pixels.
	Bounds() geom.Rect[int]

	// Sample returns the alpha channel of the element's visual content
	// over region, which is given relative to the element's own
	// origin. The returned image's bounds are region. It returns nil
	// if the element cannot be rasterized.
	Sample(region image.Rectangle) *image.Alpha
}

// Box is a plain rectangular element with no pixel data.
type Box struct {
	Rect geom.Rect[int]
}

func (b Box) Kind() Kind { return KindOther }

func (b Box) Bounds() geom.Rect[int] { return b.Rect }

func (b Box) Sample(image.Rectangle) *image.Alpha { return nil }

// Image is an element that displays Src stretched to fill Rect.
type Image struct {
	Rect geom.Rect[int]
	Src  image.Image

	// Scaler is used to stretch Src to the size of Rect. If it is nil,
	// xdraw.NearestNeighbor is used.
	Scaler xdraw.Scaler
}

func (img *Image) Kind() Kind { return KindImage }

func (img *Image) Bounds() geom.Rect[int] { return img.Rect }

// Sample draws the part of Src that lands in region once Src has been
// scaled to the element's size.
func (img *Image) Sample(region image.Rectangle) *image.Alpha {
	if img.Src == nil {
		return nil
	}

	scaler := img.Scaler
	if scaler == nil {
		scaler = xdraw.NearestNeighbor
	}

	dst := image.NewAlpha(region)
	dr := img.Rect.Sub(img.Rect.Min).ImageRect()
	scaler.Scale(dst, dr, img.Src, img.Src.Bounds(), xdraw.Src, nil)
	return dst
}

// Canvas is an element backed by a pixel surface whose origin is the
// element's top-left corner. Surfaces that are a *format.Image are
// read directly from their raw pixel data.
type Canvas struct {
	Rect    geom.Rect[int]
	Surface image.Image
}

// NewCanvas returns a Canvas covering r backed by a transparent
// RGBA8888 surface of the same size.
func NewCanvas(r geom.Rect[int]) *Canvas {
	return &Canvas{
		Rect:    r,
		Surface: format.NewImage(format.RGBA8888, r.Sub(r.Min).ImageRect()),
	}
}

func (c *Canvas) Kind() Kind { return KindCanvas }

func (c *Canvas) Bounds() geom.Rect[int] { return c.Rect }

func (c *Canvas) Sample(region image.Rectangle) *image.Alpha {
	switch s := c.Surface.(type) {
	case nil:
		return nil
	case *format.Image:
		a := s.AlphaRegion(region.Add(s.Rect.Min))
		a.Rect = region
		return a
	default:
		dst := image.NewAlpha(region)
		xdraw.Draw(dst, region, s, s.Bounds().Min.Add(region.Min), xdraw.Src)
		return dst
	}
}
