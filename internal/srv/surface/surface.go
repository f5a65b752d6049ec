// Package surface renders the panel frame: a static background built once, and
// partial updates of the mode and timer regions drawn on copies of it.
package surface

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/jypelle/ofenpanel/internal/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

var (
	background = &image.Uniform{C: image1bit.On}
	ink        = &image.Uniform{C: image1bit.Off}
)

// Surface is the static background. It is never modified after Render.
type Surface struct {
	layout Layout
	faces  *fonts.Faces
	img    *image1bit.VerticalLSB
}

// PartialUpdate is a full frame of which only Rect differs from the static
// background.
type PartialUpdate struct {
	Image image.Image
	Rect  image.Rectangle
}

// FormatTimer renders seconds as zero-padded MM:SS.
func FormatTimer(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Render builds the static background with the given initial mode and timer.
// The layout regions are fitted to faces first.
func Render(layout Layout, faces *fonts.Faces, modeLabel string, seconds int) *Surface {
	layout = layout.Fit(faces)

	img := image1bit.NewVerticalLSB(image.Rectangle{Max: layout.Size})
	draw.Draw(img, img.Bounds(), background, image.Point{}, draw.Src)

	for _, label := range layout.Labels {
		drawText(img, faces.Label, label.Pos, label.Text)
	}
	drawText(img, faces.Label, layout.TimerPos, FormatTimer(seconds))
	drawText(img, faces.Mode, layout.ModePos, modeLabel)

	return &Surface{layout: layout, faces: faces, img: img}
}

func (s *Surface) Image() image.Image {
	return s.img
}

func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Layout returns the layout after fitting its regions to the faces.
func (s *Surface) Layout() Layout {
	return s.layout
}

// RenderMode redraws the mode region with label.
func (s *Surface) RenderMode(label string) PartialUpdate {
	return s.renderRegion(s.layout.ModeRect, s.faces.Mode, s.layout.ModePos, label)
}

// RenderTimer redraws the timer region with seconds formatted as MM:SS.
func (s *Surface) RenderTimer(seconds int) PartialUpdate {
	return s.renderRegion(s.layout.TimerRect, s.faces.Label, s.layout.TimerPos, FormatTimer(seconds))
}

func (s *Surface) renderRegion(rect image.Rectangle, face font.Face, pos image.Point, text string) PartialUpdate {
	img := image1bit.NewVerticalLSB(s.img.Bounds())
	draw.Draw(img, img.Bounds(), s.img, s.img.Bounds().Min, draw.Src)

	rect = rect.Intersect(img.Bounds())
	draw.Draw(img, rect, background, image.Point{}, draw.Src)
	// A grown region may cover part of a static label.
	for _, label := range s.layout.Labels {
		drawText(img, s.faces.Label, label.Pos, label.Text)
	}
	drawText(img, face, pos, text)

	return PartialUpdate{Image: img, Rect: rect}
}

// drawText places text with the top of its line box at pos.
func drawText(img draw.Image, face font.Face, pos image.Point, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  ink,
		Face: face,
		Dot:  fixed.P(pos.X, pos.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
