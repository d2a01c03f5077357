package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/esosaoh/playlifts/internal/services"
	"github.com/esosaoh/playlifts/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("ignoring invalid config.toml", "err", err)
		}
	}

	var jar *shared.SessionJar
	origin, err := url.Parse(config.API.BaseURL)
	if err == nil {
		if j, jarErr := shared.NewSessionJar(config.CookiePath(), origin); jarErr == nil {
			jar = j
		} else {
			logger.Warn("session cookies will not persist", "err", jarErr)
		}
	}

	httpClient := &http.Client{Timeout: time.Duration(config.API.TimeoutSeconds) * time.Second}
	if jar != nil {
		httpClient.Jar = jar
	}

	backend := services.NewBackendClient(config.API.BaseURL, httpClient)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Backend: backend,
		Jar:     jar,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "playlifts",
		Usage:    "Transfer playlists between YouTube Music & Spotify",
		Version:  "1.2.0",
		Commands: runner.register(),
	}

	err = app.Run(context.Background(), os.Args)
	runner.saveSession()

	if err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			logger.Error(err)
			logger.Info("run 'playlifts auth login' to connect the missing provider")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
