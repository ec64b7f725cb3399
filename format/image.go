package format

import (
	"image"
	"image/color"
)

// Model implements color.Model using a Format.
type Model struct {
	Format Format
}

func (m Model) Convert(c color.Color) color.Color {
	fc := Color{Format: m.Format}
	r, g, b, a := c.RGBA()
	m.Format.Write(fc.Slice(), r, g, b, a)
	return &fc
}

// Color implements color.Color using a Format.
type Color struct {
	Format Format

	// Data contains the pixel data for the color. Only some bytes of
	// the array are used, dependant on the return value of Format.Size.
	Data [8]byte
}

// Slice returns a slice of Data correctly sized for the color's format.
func (c *Color) Slice() []byte {
	size := c.Format.Size()
	return c.slice(size)
}

func (c *Color) slice(size int) []byte {
	return c.Data[:size:size]
}

func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.Format.Read(c.Slice())
}

// Image is an image with a color format defined by Format.
type Image struct {
	Format Format
	Rect   image.Rectangle
	Pix    []byte
}

// NewImage returns a new, fully zeroed Image with the given format
// and bounds. For formats with an alpha channel, that means fully
// transparent.
func NewImage(f Format, r image.Rectangle) *Image {
	return &Image{
		Format: f,
		Rect:   r,
		Pix:    make([]byte, f.Size()*r.Dx()*r.Dy()),
	}
}

func (img *Image) Bounds() image.Rectangle { return img.Rect }

func (img *Image) ColorModel() color.Model { return Model{Format: img.Format} }

func (img *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(img.Rect)) {
		return &Color{Format: img.Format}
	}

	size := img.Format.Size()
	c := Color{Format: img.Format}

	i := img.pixOffset(x, y, img.stride(size), size)
	s := img.Pix[i : i+size : i+size]
	copy(c.slice(size), s)

	return &c
}

// Stride returns the distance in bytes between vertically adjacent
// pixels.
func (img *Image) Stride() int {
	return img.stride(img.Format.Size())
}

func (img *Image) stride(size int) int {
	return size * img.Rect.Dx()
}

// PixOffset returns the index of the first byte of the pixel at
// (x, y) in Pix.
func (img *Image) PixOffset(x, y int) int {
	return img.pixOffset(x, y, img.Stride(), img.Format.Size())
}

func (img *Image) pixOffset(x, y, stride, size int) int {
	x -= img.Rect.Min.X
	y -= img.Rect.Min.Y
	return (stride * y) + (x * size)
}

func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}

	size := img.Format.Size()
	i := img.pixOffset(x, y, img.stride(size), size)
	c1 := img.ColorModel().Convert(c).(*Color)
	s := img.Pix[i : i+size : i+size]
	copy(s, c1.slice(size))
}

// AlphaAt returns the 8-bit alpha of the pixel at (x, y). Pixels
// outside of the image are fully transparent.
func (img *Image) AlphaAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(img.Rect)) {
		return 0
	}

	size := img.Format.Size()
	i := img.pixOffset(x, y, img.stride(size), size)
	return img.Format.Alpha(img.Pix[i : i+size : i+size])
}

// AlphaRegion copies the alpha channel of the region r of img into a
// new image.Alpha with bounds r. Parts of r that lie outside of img
// are left fully transparent.
func (img *Image) AlphaRegion(r image.Rectangle) *image.Alpha {
	dst := image.NewAlpha(r)

	src := r.Intersect(img.Rect)
	if src.Empty() {
		return dst
	}

	size := img.Format.Size()
	for y := src.Min.Y; y < src.Max.Y; y++ {
		i := img.PixOffset(src.Min.X, y)
		j := dst.PixOffset(src.Min.X, y)
		for x := src.Min.X; x < src.Max.X; x++ {
			dst.Pix[j] = img.Format.Alpha(img.Pix[i : i+size : i+size])
			i += size
			j++
		}
	}

	return dst
}
