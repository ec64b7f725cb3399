// Package format provides pixel formats and an image type backed by
// raw pixel data in one of them. It is used as the backing store of
// canvas elements, which only ever need their alpha channel read back
// quickly.
package format

import (
	"encoding/binary"
)

// Format is a pixel format for an Image and related types. This
// package contains several predefined formats, such as [ARGB8888].
type Format interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Read reads raw pixel data and converts it to alpha-premultiplied
	// RGBA values, similar to color.Color's RGBA method.
	Read([]byte) (r, g, b, a uint32)

	// Write writes alpha-premultiplied RGBA values into buf.
	Write(buf []byte, r, g, b, a uint32)

	// Alpha returns the 8-bit alpha of the raw pixel data without
	// decoding the color channels.
	Alpha([]byte) uint8
}

// Various predefined Formats.
var (
	ARGB8888 formatARGB8888
	XRGB8888 formatXRGB8888
	RGBA8888 formatRGBA8888
)

// unpremultiply scales a 16-bit premultiplied channel back to 8 bits
// of straight color.
func unpremultiply(c, a uint32) uint32 {
	if a == 0 {
		return 0
	}
	return c * 0xFF / a
}

type formatARGB8888 struct{}

func (formatARGB8888) String() string { return "ARGB8888" }

func (formatARGB8888) Size() int { return 4 }

func (formatARGB8888) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	a = (n >> 24 * 0xFFFF / 0xFF)
	r = (n >> 16 & 0xFF) * a / 0xFF
	g = (n >> 8 & 0xFF) * a / 0xFF
	b = (n & 0xFF) * a / 0xFF
	return
}

func (formatARGB8888) Write(buf []byte, r, g, b, a uint32) {
	r = unpremultiply(r, a) << 16
	g = unpremultiply(g, a) << 8
	b = unpremultiply(b, a)
	a = (a * 0xFF / 0xFFFF) << 24
	binary.LittleEndian.PutUint32(buf, r|g|b|a)
}

func (formatARGB8888) Alpha(data []byte) uint8 {
	return data[3]
}

type formatXRGB8888 struct{}

func (formatXRGB8888) String() string { return "XRGB8888" }

func (formatXRGB8888) Size() int { return 4 }

func (formatXRGB8888) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	a = 0xFFFF
	r = (n >> 16 & 0xFF) * 0xFFFF / 0xFF
	g = (n >> 8 & 0xFF) * 0xFFFF / 0xFF
	b = (n & 0xFF) * 0xFFFF / 0xFF
	return
}

func (formatXRGB8888) Write(buf []byte, r, g, b, a uint32) {
	r = (r * 0xFF / 0xFFFF) << 16
	g = (g * 0xFF / 0xFFFF) << 8
	b = b * 0xFF / 0xFFFF
	a = 0xFF << 24
	binary.LittleEndian.PutUint32(buf, r|g|b|a)
}

func (formatXRGB8888) Alpha([]byte) uint8 {
	return 0xFF
}

// formatRGBA8888 stores straight (non-premultiplied) color one byte
// per channel in R, G, B, A order, the layout of an HTML canvas's
// ImageData.
type formatRGBA8888 struct{}

func (formatRGBA8888) String() string { return "RGBA8888" }

func (formatRGBA8888) Size() int { return 4 }

func (formatRGBA8888) Read(data []byte) (r, g, b, a uint32) {
	a = uint32(data[3]) * 0xFFFF / 0xFF
	r = uint32(data[0]) * a / 0xFF
	g = uint32(data[1]) * a / 0xFF
	b = uint32(data[2]) * a / 0xFF
	return
}

func (formatRGBA8888) Write(buf []byte, r, g, b, a uint32) {
	buf[0] = uint8(unpremultiply(r, a))
	buf[1] = uint8(unpremultiply(g, a))
	buf[2] = uint8(unpremultiply(b, a))
	buf[3] = uint8(a * 0xFF / 0xFFFF)
}

func (formatRGBA8888) Alpha(data []byte) uint8 {
	return data[3]
}
