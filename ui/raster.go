package ui

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/oliverbestmann/wgpu-steps/glm"
	"github.com/oliverbestmann/wgpu-steps/gpu"
)

const (
	padding    = 8
	lineHeight = 16
)

var (
	panelColor = color.RGBA{A: 160}
	textColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	barColor   = color.RGBA{R: 64, G: 192, B: 64, A: 200}
	slowColor  = color.RGBA{R: 220, G: 64, B: 64, A: 220}
)

// canvas rasterizes labels and graphs into an rgba image that the
// overlay uploads once per frame.
type canvas struct {
	img    *image.RGBA
	cursor int
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (c *canvas) reset() {
	clear(c.img.Pix)
	c.cursor = padding
}

// label draws one line of text on a translucent strip and advances
// the cursor.
func (c *canvas) label(text string) {
	strip := image.Rect(
		padding, c.cursor,
		padding+textWidth(text)+2*padding, c.cursor+lineHeight,
	)

	draw.Draw(c.img, strip, image.NewUniform(panelColor), image.Point{}, draw.Over)

	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot: fixed.P(
			padding*2,
			c.cursor+lineHeight-4,
		),
	}
	d.DrawString(text)

	c.cursor += lineHeight
}

// frameGraph draws one bar per frame time sample along the bottom
// edge. Samples above the budget are drawn in the warning color.
func (c *canvas) frameGraph(samples []time.Duration, budget time.Duration) {
	if len(samples) == 0 {
		return
	}

	bounds := c.img.Bounds()

	area := gpu.RectangleFromSize(
		glm.Vec2[int]{padding, bounds.Dy() - 64 - padding},
		glm.Vec2[int]{bounds.Dx() - 2*padding, 64},
	)

	drawRect(c.img, area, panelColor)

	barWidth := max(1, area.Width()/len(samples))

	// scale so that twice the budget fills the graph
	scale := float64(area.Height()) / (2 * budget.Seconds())

	for idx, sample := range samples {
		height := min(area.Height(), int(sample.Seconds()*scale))
		if height < 1 {
			height = 1
		}

		fill := barColor
		if sample > budget {
			fill = slowColor
		}

		bar := gpu.RectangleFromSize(
			glm.Vec2[int]{area.Min[0] + idx*barWidth, area.Max[1] - height},
			glm.Vec2[int]{barWidth, height},
		)

		drawRect(c.img, bar, fill)
	}
}

func drawRect(img *image.RGBA, r gpu.Rectangle2[int], fill color.RGBA) {
	rect := image.Rect(r.Min[0], r.Min[1], r.Max[0], r.Max[1])
	draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Over)
}

func textWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}
