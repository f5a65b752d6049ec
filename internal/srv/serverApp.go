package srv

import (
	"fmt"

	"github.com/jypelle/ofenpanel/internal/fonts"
	"github.com/jypelle/ofenpanel/internal/srv/config"
	"github.com/jypelle/ofenpanel/internal/srv/device"
	"github.com/jypelle/ofenpanel/internal/srv/oven"
	"github.com/jypelle/ofenpanel/internal/srv/surface"
	"github.com/jypelle/ofenpanel/internal/version"
	"github.com/sirupsen/logrus"
)

type ServerApp struct {
	*config.ServerConfig
	displayDevice *device.Display
	buttonsDevice *device.Buttons
	clockDevice   *device.Clock
	ledDevice     *device.Led

	ovenState     *oven.State
	faces         *fonts.Faces
	staticSurface *surface.Surface

	eventLoopAskDone chan bool
	eventLoopDone    chan bool
}

func NewServerApp(serverConfig *config.ServerConfig) (*ServerApp, error) {
	logrus.Debugf("Creation of ofenpanel server %s ...", version.Full())

	app, err := newServerApp(serverConfig, device.NewDisplay(serverConfig.SimulationMode))
	if err != nil {
		return nil, err
	}

	logrus.Debugln("Server created")
	return app, nil
}

func newServerApp(serverConfig *config.ServerConfig, displayDevice *device.Display) (*ServerApp, error) {
	faces, err := fonts.Load(serverConfig.GetCompleteFontFilename(), serverConfig.Font.LabelSize, serverConfig.Font.ModeSize)
	if err != nil {
		return nil, fmt.Errorf("unable to load font: %w", err)
	}

	return &ServerApp{
		ServerConfig:     serverConfig,
		displayDevice:    displayDevice,
		buttonsDevice:    device.NewButtons(serverConfig.Gpio, serverConfig.SimulationMode),
		clockDevice:      device.NewClock(serverConfig.Timer.TickInterval()),
		ledDevice:        device.NewLed(serverConfig.Gpio.Led, serverConfig.SimulationMode),
		ovenState:        oven.NewState(serverConfig.Modes, serverConfig.Timer.Initial, serverConfig.Timer.Max, serverConfig.Timer.Step),
		faces:            faces,
		eventLoopAskDone: make(chan bool),
		eventLoopDone:    make(chan bool),
	}, nil
}

func (s *ServerApp) Start() {
	logrus.Printf("Starting ofenpanel server %s ...", version.Full())

	logrus.Printf("Starting devices ...")

	// Start display device
	s.displayDevice.Start()

	// Start led device
	s.ledDevice.Start()

	// Display static screen
	if err := s.renderStatic(); err != nil {
		logrus.Fatalf("Unable to display static screen: %v", err)
	}

	// Start event loop
	go s.eventLoop()

	// Start clock device
	s.clockDevice.Start()

	// Start buttons device
	s.buttonsDevice.Start()
}

func (s *ServerApp) Stop() {
	logrus.Printf("Stopping ofenpanel server ...")

	// Stop buttons device
	s.buttonsDevice.StopSendingEvent()

	// Stop clock device
	s.clockDevice.StopSendingEvent()

	// Stop event loop
	logrus.Infof("Stop event loop")
	s.eventLoopAskDone <- true
	<-s.eventLoopDone

	// Stop led device
	s.ledDevice.Stop()

	// Stop display device
	s.displayDevice.Stop()

	logrus.Printf("Server stopped")
}
