package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/clambin/gotools/metrics"
	"github.com/sakuramilk/sc02c-liblights/configuration"
	"github.com/sakuramilk/sc02c-liblights/lights"
	log "github.com/sirupsen/logrus"
)

// Server exposes the three light devices over a REST API, standing in for
// the hardware-services process that would normally load the module. It
// opens one handle per device at startup and dispatches incoming requests
// to the matching handle.
type Server struct {
	Module     *lights.Module
	HTTPServer *metrics.Server
	devices    map[string]*lights.Device
}

// New creates a new Server
func New(cfg configuration.Configuration) (*Server, error) {
	s := &Server{
		Module:  lights.New(cfg.Paths),
		devices: make(map[string]*lights.Device),
	}

	for _, name := range []string{lights.Backlight, lights.Buttons, lights.Notifications} {
		device, err := s.Module.Open(name)
		if err != nil {
			return nil, fmt.Errorf("unable to open %s: %w", name, err)
		}
		s.devices[name] = device
	}

	s.HTTPServer = metrics.NewServerWithHandlers(cfg.ServerPort, []metrics.Handler{
		{
			Path:    "/backlight",
			Handler: http.HandlerFunc(s.handleBacklight),
			Methods: []string{http.MethodPost, http.MethodDelete},
		},
		{
			Path:    "/buttons",
			Handler: http.HandlerFunc(s.handleButtons),
			Methods: []string{http.MethodPost, http.MethodDelete},
		},
		{
			Path:    "/notifications",
			Handler: http.HandlerFunc(s.handleNotifications),
			Methods: []string{http.MethodPost, http.MethodDelete},
		},
		{
			Path:    "/status",
			Handler: http.HandlerFunc(s.handleStatus),
		},
		{
			Path:    "/health",
			Handler: http.HandlerFunc(s.handleHealth),
		},
	})

	return s, nil
}

// Run the Server instance until the context is canceled
func (s *Server) Run(ctx context.Context) error {
	log.WithField("port", s.HTTPServer.Port).Info("lightsd started")
	go func() {
		if err := s.HTTPServer.Run(); err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()

	err := s.HTTPServer.Shutdown(30 * time.Second)
	s.Close()
	log.Info("lightsd stopped")
	return err
}

// Close releases the device handles
func (s *Server) Close() {
	for _, device := range s.devices {
		_ = device.Close()
	}
}
