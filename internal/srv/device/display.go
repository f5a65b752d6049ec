package device

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/jypelle/ofenpanel/internal/srv/surface"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/waveshare2in13v4"
	"periph.io/x/host/v3"
)

// Panel is what the display device pushes frames to.
type Panel interface {
	display.Drawer
}

type Display struct {
	lock           sync.Mutex
	simulationMode bool

	panel   Panel
	epd     *waveshare2in13v4.Dev
	spiPort spi.PortCloser
}

func NewDisplay(simulationMode bool) *Display {
	return &Display{simulationMode: simulationMode}
}

// NewDisplayWithPanel wraps an already initialized panel. Start leaves it as is.
func NewDisplayWithPanel(panel Panel) *Display {
	return &Display{panel: panel}
}

func (d *Display) Start() {
	logrus.Infof("Start display device")

	d.lock.Lock()
	defer d.lock.Unlock()

	if d.panel != nil {
		return
	}

	if d.simulationMode {
		d.panel = NewTerminalPanel(colorable.NewColorableStdout(), isatty.IsTerminal(os.Stdout.Fd()), surface.PanelSize)
		return
	}

	if err := d.startEpd(); err != nil {
		logrus.Fatalf("Unable to initialize e-paper display: %v", err)
	}
}

func (d *Display) startEpd() error {
	if _, err := host.Init(); err != nil {
		return err
	}

	var err error
	d.spiPort, err = spireg.Open("")
	if err != nil {
		return fmt.Errorf("unable to open spi port: %w", err)
	}

	// Landscape: the panel is mounted with its connector on the right.
	opts := waveshare2in13v4.EPD2in13v4
	opts.Origin = waveshare2in13v4.TopRight

	d.epd, err = waveshare2in13v4.NewHat(d.spiPort, &opts)
	if err != nil {
		return fmt.Errorf("unable to create driver: %w", err)
	}
	if err := d.epd.Init(); err != nil {
		return fmt.Errorf("unable to init panel: %w", err)
	}
	if err := d.epd.Clear(color.White); err != nil {
		return fmt.Errorf("unable to clear panel: %w", err)
	}
	logrus.Debugf("E-paper display ready: %s", d.epd)

	d.panel = d.epd
	return nil
}

func (d *Display) Bounds() image.Rectangle {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.panel.Bounds()
}

// ShowFull pushes a whole frame with a full refresh.
func (d *Display) ShowFull(img image.Image) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	bounds := d.panel.Bounds()
	logrus.Debugf("Full refresh %v", bounds)
	return d.panel.Draw(bounds, img, img.Bounds().Min)
}

// ShowPartial pushes only the changed region of update. The waveshare driver
// still runs its full refresh waveform, only the upload is limited to the region.
func (d *Display) ShowPartial(update surface.PartialUpdate) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	logrus.Debugf("Partial refresh %v", update.Rect)
	return d.panel.Draw(update.Rect, update.Image, update.Rect.Min)
}

// Stop puts the panel to sleep and releases the spi port. The last image stays
// visible.
func (d *Display) Stop() {
	logrus.Infof("Stop display device")

	d.lock.Lock()
	defer d.lock.Unlock()

	if d.epd != nil {
		if err := d.epd.Sleep(); err != nil {
			logrus.Errorf("Unable to put e-paper display to sleep: %v", err)
		}
	}
	if d.spiPort != nil {
		if err := d.spiPort.Close(); err != nil {
			logrus.Errorf("Unable to close spi port: %v", err)
		}
	}
	if t, ok := d.panel.(*TerminalPanel); ok {
		if err := t.Halt(); err != nil {
			logrus.Errorf("Unable to reset terminal: %v", err)
		}
	}
}
