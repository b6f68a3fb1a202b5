// Package imagegen renders the current-conditions card as a PNG share image.
package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lox/weatherlookup/internal/display"
	"github.com/lox/weatherlookup/internal/metrics"
)

const (
	CardWidth  = 600
	CardHeight = 315
)

// gradients are top and bottom colours per condition theme, matching the
// page's card backgrounds.
var gradients = map[display.Theme][2]color.RGBA{
	display.ThemeRain:  {{96, 165, 250, 255}, {37, 99, 235, 255}},
	display.ThemeCloud: {{156, 163, 175, 255}, {75, 85, 99, 255}},
	display.ThemeSnow:  {{191, 219, 254, 255}, {96, 165, 250, 255}},
	display.ThemeSun:   {{250, 204, 21, 255}, {249, 115, 22, 255}},
}

// RenderCard draws the card and returns it PNG-encoded.
func RenderCard(card display.CurrentCard) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	drawGradient(img, card.Theme)

	white := color.RGBA{255, 255, 255, 255}
	light := color.RGBA{240, 240, 240, 255}

	drawText(img, card.Location, 32, 32, 3, white)
	drawText(img, card.Temperature.String(), 32, 90, 8, white)
	drawText(img, card.Condition, 32, 210, 3, light)
	drawText(img, fmt.Sprintf("Humidity %s   Wind %s", card.Humidity, card.Wind), 32, 265, 2, light)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode card image: %w", err)
	}
	metrics.CardImagesRendered.Inc()
	return buf.Bytes(), nil
}

func drawGradient(img *image.RGBA, theme display.Theme) {
	stops, ok := gradients[theme]
	if !ok {
		stops = gradients[display.ThemeSun]
	}
	top, bottom := stops[0], stops[1]
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		p := float64(y-bounds.Min.Y) / float64(bounds.Dy())
		c := color.RGBA{
			R: lerp(top.R, bottom.R, p),
			G: lerp(top.G, bottom.G, p),
			B: lerp(top.B, bottom.B, p),
			A: 255,
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func lerp(a, b uint8, p float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*p)
}

// drawText renders text with the 7x13 bitmap face at the given integer
// scale, top-left anchored at (x, y).
func drawText(dst *image.RGBA, text string, x, y, scale int, col color.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Height

	glyphs := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(face.Ascent)},
	}
	d.DrawString(text)

	target := image.Rect(x, y, x+width*scale, y+height*scale)
	draw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}
