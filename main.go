package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/billed-app/billed-client/internal/config"
	"github.com/billed-app/billed-client/internal/console"
	"github.com/billed-app/billed-client/internal/nav"
	"github.com/billed-app/billed-client/internal/remote"
	"github.com/billed-app/billed-client/internal/remote/remotetest"
	"github.com/billed-app/billed-client/internal/storage"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(level)

	store, err := storage.NewKV(cfg.Storage.Path)
	if err != nil {
		logrus.Fatal(err)
	}
	defer store.Close()

	var client remote.Client
	switch {
	case cfg.API.Offline:
		logrus.Info("running against the in-memory backend")
		client = remotetest.New()
	case cfg.API.Addr != "":
		client, err = remote.NewAPI(remote.APIOptions{Addr: cfg.API.Addr, Timeout: cfg.API.Timeout})
		if err != nil {
			logrus.Fatal(err)
		}
	default:
		logrus.Warn("API_ADDR is not set, logins will fail until it is configured")
	}

	front := console.New(os.Stdin, os.Stdout, store, client, nav.Default)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := front.Run(ctx); err != nil && err != context.Canceled {
			logrus.Errorf("console error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	select {
	case <-quit:
		cancel()
	case <-done:
	}
}
