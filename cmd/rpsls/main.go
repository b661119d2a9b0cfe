package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/rpsls/cmd/rpsls/shared"
	"github.com/lox/rpsls/internal/config"
	"github.com/lox/rpsls/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	Config string `short:"c" default:"rpsls.hcl" help:"Path to HCL config file" type:"path"`
	Debug  bool   `help:"Enable debug logging"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Hands    HandsCmd         `cmd:"" help:"List the hands in order"`
	Rules    RulesCmd         `cmd:"" help:"Show which hand beats which"`
	Play     PlayCmd          `cmd:"" help:"Throw one hand against an opponent"`
	Random   RandomCmd        `cmd:"" help:"Draw a uniformly random hand"`
	Simulate SimulateCmd      `cmd:"" help:"Draw many random throws and check uniformity"`
	TUI      TUICmd           `cmd:"tui" help:"Play throws interactively"`
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("rpsls"),
		kong.Description("Rock, paper, scissors, lizard, Spock"),
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

func (g *Globals) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.Stderr == nil {
		return os.Stderr
	}
	return g.Stderr
}

// setup loads configuration and builds the logger every command runs with.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	logger := shared.SetupLogger(g.stderr(), cfg.Level(), g.Debug)
	logger.Debug("loaded config", "path", g.Config, "log_level", cfg.Settings.LogLevel)
	return cfg, logger, nil
}

// pickSeed prefers the flag, then the config file, then the clock.
func pickSeed(flag *int64, cfg *config.Config) int64 {
	if flag != nil {
		return *flag
	}
	if cfg.Settings.Seed != 0 {
		return cfg.Settings.Seed
	}
	return randutil.Seed(0)
}
