package srv

import (
	"github.com/jypelle/ofenpanel/internal/srv/surface"
	"github.com/sirupsen/logrus"
)

// renderStatic builds the background once and shows it with a full refresh.
func (s *ServerApp) renderStatic() error {
	snapshot := s.ovenState.Snapshot()
	logrus.Debugf("Display static screen: %+v", snapshot)

	layout := surface.DefaultLayout(s.Labels.Temperature)
	s.staticSurface = surface.Render(layout, s.faces, snapshot.ModeLabel, snapshot.TimerSeconds)
	return s.displayDevice.ShowFull(s.staticSurface.Image())
}

func (s *ServerApp) refreshModeDisplay() {
	update := s.staticSurface.RenderMode(s.ovenState.ModeLabel())
	if err := s.displayDevice.ShowPartial(update); err != nil {
		logrus.Warnf("Unable to refresh mode: %v", err)
	}
}

func (s *ServerApp) refreshTimerDisplay() {
	seconds := s.ovenState.TimerSeconds()
	logrus.Debugf("Display timer %s", surface.FormatTimer(seconds))

	update := s.staticSurface.RenderTimer(seconds)
	if err := s.displayDevice.ShowPartial(update); err != nil {
		logrus.Warnf("Unable to refresh timer: %v", err)
	}
}
