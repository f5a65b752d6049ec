package device

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"periph.io/x/conn/v3/display"
)

// TerminalPanel shows the frame in a terminal with ANSI colors, at half
// resolution. It is the simulation mode panel.
type TerminalPanel struct {
	w       io.Writer
	tty     bool
	palette ansi256.Palette
	frame   *image.Gray
	buf     bytes.Buffer
}

func NewTerminalPanel(w io.Writer, tty bool, size image.Point) *TerminalPanel {
	t := &TerminalPanel{
		w:       w,
		tty:     tty,
		palette: *ansi256.Default,
		frame:   image.NewGray(image.Rectangle{Max: size}),
	}
	draw.Draw(t.frame, t.frame.Bounds(), image.White, image.Point{}, draw.Src)
	return t
}

func (t *TerminalPanel) String() string {
	return fmt.Sprintf("TerminalPanel{%dx%d}", t.frame.Rect.Dx(), t.frame.Rect.Dy())
}

// ColorModel implements display.Drawer.
func (t *TerminalPanel) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements display.Drawer.
func (t *TerminalPanel) Bounds() image.Rectangle {
	return t.frame.Bounds()
}

// Draw implements display.Drawer. Only r changes in the kept frame, then the
// whole frame is printed again.
func (t *TerminalPanel) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(t.frame, r.Intersect(t.frame.Bounds()), src, sp, draw.Src)
	return t.refresh()
}

// Halt implements conn.Resource.
func (t *TerminalPanel) Halt() error {
	_, err := t.w.Write([]byte("\033[0m\n"))
	return err
}

// Frame returns a copy of what the terminal shows, at full resolution.
func (t *TerminalPanel) Frame() *image.Gray {
	frame := image.NewGray(t.frame.Bounds())
	copy(frame.Pix, t.frame.Pix)
	return frame
}

func (t *TerminalPanel) refresh() error {
	t.buf.Reset()
	if t.tty {
		_, _ = t.buf.WriteString("\033[H\033[2J")
	}
	b := t.frame.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		_, _ = t.buf.WriteString("\033[0m")
		for x := b.Min.X; x < b.Max.X; x += 2 {
			g := t.frame.GrayAt(x, y).Y
			_, _ = io.WriteString(&t.buf, t.palette.Block(color.NRGBA{g, g, g, 255}))
		}
		_, _ = t.buf.WriteString("\033[0m\n")
	}
	_, err := t.buf.WriteTo(t.w)
	return err
}

var _ display.Drawer = &TerminalPanel{}
