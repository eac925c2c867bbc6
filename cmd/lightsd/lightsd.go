package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sakuramilk/sc02c-liblights/configuration"
	"github.com/sakuramilk/sc02c-liblights/server"
	"github.com/sakuramilk/sc02c-liblights/version"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := configuration.GetConfigFromArgs(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	log.WithField("version", version.BuildVersion).Info("lightsd starting")

	s, err := server.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to create server")
	}
	prometheus.MustRegister(s.Module)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)

	if err = s.Run(ctx); err != nil {
		log.WithError(err).Fatal("lightsd failed")
	}
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)
}
