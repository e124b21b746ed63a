package report

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawTextPanel paints a boxed multi-line text panel near the top-right of
// the chart image, in the margin reserved by the chart padding. Returns a
// new image; the input is not modified.
func drawTextPanel(img image.Image, lines []string) image.Image {
	if img == nil || len(lines) == 0 {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 30, G: 30, B: 30, A: 255})
	bg := image.NewUniform(color.RGBA{R: 245, G: 222, B: 179, A: 235})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}

	maxW := 0
	for _, l := range lines {
		if w := dr.MeasureString(l).Ceil(); w > maxW {
			maxW = w
		}
	}
	const pad = 6
	lineH := face.Metrics().Height.Ceil() + 2
	ascent := face.Metrics().Ascent.Ceil()
	x := b.Max.X - maxW - pad*2 - 10
	if x < b.Min.X+pad {
		x = b.Min.X + pad
	}
	y := b.Min.Y + 34

	rect := image.Rect(x-pad, y-ascent-pad, x+maxW+pad, y+lineH*(len(lines)-1)+pad)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	for i, l := range lines {
		dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + i*lineH)}
		dr.DrawString(l)
	}
	return rgba
}
