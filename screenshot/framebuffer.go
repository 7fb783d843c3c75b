package screenshot

import (
	"image"
)

// Framebuffer is a CPU copy of the window's color buffer: width*height
// packed pixels of 4 bytes each, bottom row first as the GPU returns them.
type Framebuffer struct {
	width  int
	height int
	data   []uint8
}

// NewFramebuffer allocates a zeroed buffer for a width x height readback.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Data returns the raw pixel bytes for the reader to fill.
func (f *Framebuffer) Data() []uint8 {
	return f.data
}

// ToImage converts the buffer to a top-down image.RGBA, reordering the
// channels of each pixel according to order.
func (f *Framebuffer) ToImage(order ChannelOrder) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	stride := f.width * 4
	for y := 0; y < f.height; y++ {
		src := f.data[(f.height-1-y)*stride : (f.height-y)*stride]
		dst := img.Pix[y*img.Stride : y*img.Stride+stride]
		for x := 0; x < stride; x += 4 {
			px := src[x : x+4 : x+4]
			dst[x+0] = px[order.R]
			dst[x+1] = px[order.G]
			dst[x+2] = px[order.B]
			dst[x+3] = px[order.A]
		}
	}
	return img
}
