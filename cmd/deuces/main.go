package main

import (
	"os"

	"deuces/internal/app"
	"deuces/internal/config"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"deuces.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a card group"`
	Validate ValidateCmd      `cmd:"" help:"Check whether a move beats the table"`
	Moves    MovesCmd         `cmd:"" help:"Write every canonical move per category as CSV"`
	Replay   ReplayCmd        `cmd:"" help:"Replay a file of plays through one table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("deuces"),
		kong.Description("Combo classification and move validation for deuces"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads configuration and builds the logger and rules service.
func (g *Globals) setup() (*config.Config, *log.Logger, *app.Service, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	svc, err := app.NewService(cfg.Cache.Size, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, svc, nil
}
