package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/CodingPenguin1/Splendor/internal/card"
	"github.com/CodingPenguin1/Splendor/internal/config"
	"github.com/charmbracelet/log"
)

// Globals are flags shared by every command
type Globals struct {
	Debug      bool   `help:"Enable debug logging"`
	ConfigFile string `name:"config" short:"c" default:"splendor.hcl" help:"HCL configuration file (missing file uses defaults)"`
	CardData   string `name:"cards" type:"path" help:"Card definitions CSV (defaults to the embedded set)"`
	NobleData  string `name:"nobles" type:"path" help:"Noble definitions CSV (defaults to the embedded set)"`
}

func (g *Globals) logger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if g.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// config loads the configuration file and applies the data flags
func (g *Globals) config() (*config.Config, error) {
	cfg, err := config.Load(g.ConfigFile)
	if err != nil {
		return nil, err
	}
	if g.CardData != "" {
		cfg.Data.Cards = g.CardData
	}
	if g.NobleData != "" {
		cfg.Data.Nobles = g.NobleData
	}
	return cfg, nil
}

func definitions(cfg *config.Config) (card.Definitions, error) {
	if cfg.Data.Cards == "" && cfg.Data.Nobles == "" {
		return card.Default()
	}
	defs, err := card.Load(cfg.Data.Cards, cfg.Data.Nobles)
	if err != nil {
		return card.Definitions{}, fmt.Errorf("loading definitions: %w", err)
	}
	return defs, nil
}

// signalContext is cancelled on interrupt signals
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
