package surface

import (
	"image"

	"github.com/jypelle/ofenpanel/internal/fonts"
	"golang.org/x/image/font"
)

// Label is a fixed text drawn once on the static background.
type Label struct {
	Text string
	Pos  image.Point
}

// Layout places everything on the landscape frame. Positions are the top-left
// corner of the text line.
type Layout struct {
	Size   image.Point
	Labels []Label

	ModePos  image.Point
	ModeRect image.Rectangle

	TimerPos  image.Point
	TimerRect image.Rectangle
}

// PanelSize is the Waveshare 2.13" frame turned on its side.
var PanelSize = image.Pt(250, 122)

// DefaultLayout is the oven panel: mode name in the middle, timer bottom left,
// light and temperature on the right.
func DefaultLayout(temperature string) Layout {
	return Layout{
		Size: PanelSize,
		Labels: []Label{
			{Text: "Modes", Pos: image.Pt(0, 0)},
			{Text: "Light", Pos: image.Pt(200, 0)},
			{Text: "temp:", Pos: image.Pt(200, 80)},
			{Text: temperature, Pos: image.Pt(200, 100)},
			{Text: "timer:", Pos: image.Pt(0, 80)},
			{Text: "Fan", Pos: image.Pt(90, 100)},
		},
		ModePos:   image.Pt(20, 50),
		ModeRect:  image.Rect(20, 50, PanelSize.X, 76),
		TimerPos:  image.Pt(0, 100),
		TimerRect: image.Rect(0, 100, 85, PanelSize.Y),
	}
}

// Fit grows the mode and timer regions so that a full line of text in the
// given faces stays inside them. Regions only grow, so a layout already large
// enough is returned unchanged.
func (l Layout) Fit(faces *fonts.Faces) Layout {
	l.ModeRect = growToLine(l.ModeRect, l.ModePos, faces.Mode, "")
	l.TimerRect = growToLine(l.TimerRect, l.TimerPos, faces.Label, FormatTimer(0))
	return l
}

// growToLine extends r down to the bottom of a line of face drawn at pos, and
// right to the end of widest when it is not empty.
func growToLine(r image.Rectangle, pos image.Point, face font.Face, widest string) image.Rectangle {
	metrics := face.Metrics()
	if bottom := pos.Y + metrics.Ascent.Ceil() + metrics.Descent.Ceil(); bottom > r.Max.Y {
		r.Max.Y = bottom
	}
	if widest != "" {
		if right := pos.X + font.MeasureString(face, widest).Ceil(); right > r.Max.X {
			r.Max.X = right
		}
	}
	return r
}
