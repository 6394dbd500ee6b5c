package canvas

import (
	"image"
	"strings"
)

// Renderer turns an RGBA raster into terminal text.
//   - Color modes use "▀" with fg = top pixel and bg = bottom pixel, so one
//     terminal row shows two pixel rows.
//   - ColorOff maps each pair of pixel rows to a brightness character.
type Renderer struct {
	mode ColorMode
	sb   strings.Builder
}

// NewRenderer creates a renderer for the given color mode.
func NewRenderer(mode ColorMode) *Renderer {
	return &Renderer{mode: mode}
}

// Mode returns the renderer's color mode.
func (r *Renderer) Mode() ColorMode { return r.mode }

// Render draws img into cols×rows terminal cells. img is expected to be
// cols pixels wide and rows*2 pixels tall; other sizes are resampled with
// nearest-neighbor.
func (r *Renderer) Render(img *image.RGBA, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}

	r.sb.Reset()
	r.sb.Grow(cols * rows * 24)

	if r.mode == ColorOff {
		r.renderASCII(img, cols, rows)
	} else {
		r.renderHalfBlock(img, cols, rows)
	}
	return r.sb.String()
}

func (r *Renderer) renderHalfBlock(img *image.RGBA, cols, rows int) {
	b := img.Bounds()
	pixelRows := rows * 2
	var lastFg, lastBg string

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := b.Min.X + col*b.Dx()/cols
			ty := b.Min.Y + (row*2)*b.Dy()/pixelRows
			by := b.Min.Y + (row*2+1)*b.Dy()/pixelRows

			tr, tg, tb := pixelAt(img, x, ty)
			br, bg, bb := pixelAt(img, x, by)

			fg := colorSeq(r.mode, 38, tr, tg, tb)
			bgc := colorSeq(r.mode, 48, br, bg, bb)
			if fg != lastFg {
				r.sb.WriteString(fg)
				lastFg = fg
			}
			if bgc != lastBg {
				r.sb.WriteString(bgc)
				lastBg = bgc
			}
			r.sb.WriteString("▀")
		}

		r.sb.WriteString(ansiReset)
		lastFg, lastBg = "", ""
		if row < rows-1 {
			r.sb.WriteByte('\n')
		}
	}
}

func (r *Renderer) renderASCII(img *image.RGBA, cols, rows int) {
	b := img.Bounds()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := b.Min.X + col*b.Dx()/cols
			y := b.Min.Y + row*b.Dy()/rows
			pr, pg, pb := pixelAt(img, x, y)
			r.sb.WriteByte(brightnessChar(luminance(pr, pg, pb)))
		}
		if row < rows-1 {
			r.sb.WriteByte('\n')
		}
	}
}

// pixelAt reads the premultiplied color at (x, y), which over a black
// background is the displayed color.
func pixelAt(img *image.RGBA, x, y int) (uint8, uint8, uint8) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return 0, 0, 0
	}
	off := img.PixOffset(x, y)
	return img.Pix[off], img.Pix[off+1], img.Pix[off+2]
}
