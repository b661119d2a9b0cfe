package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rpsls/cmd/rpsls/shared"
	"github.com/lox/rpsls/internal/fileutil"
	"github.com/lox/rpsls/internal/randutil"
	"github.com/lox/rpsls/internal/simulate"
	"github.com/lox/rpsls/internal/tui"
	"github.com/lox/rpsls/rpsls"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	loseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	drawStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func outcomeStyle(o rpsls.Outcome) lipgloss.Style {
	switch o {
	case rpsls.Win:
		return winStyle
	case rpsls.Lose:
		return loseStyle
	default:
		return drawStyle
	}
}

type HandsCmd struct{}

func (c *HandsCmd) Run(g *Globals) error {
	names := rpsls.Names()
	for i, h := range rpsls.Hands() {
		fmt.Fprintf(g.stdout(), "%d\t%s\n", uint8(h), names[i])
	}
	return nil
}

type RulesCmd struct{}

func (c *RulesCmd) Run(g *Globals) error {
	w := tabwriter.NewWriter(g.stdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("beats"),
		headerStyle.Render("loses to"))

	for _, h := range rpsls.Hands() {
		beats, losesTo := h.Beats(), h.LosesTo()
		fmt.Fprintf(w, "%s\t%s, %s\t%s, %s\n",
			handStyle.Render(h.String()),
			beats[0], beats[1],
			losesTo[0], losesTo[1])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(g.stdout())
	for _, h := range rpsls.Hands() {
		for _, loser := range h.Beats() {
			fmt.Fprintln(g.stdout(), rpsls.Describe(h, loser))
		}
	}
	return nil
}

type PlayCmd struct {
	Hand    string `arg:"" help:"Your hand (rock, paper, scissors, lizard, spock)"`
	Against string `short:"a" help:"Opponent hand; random when omitted"`
	Seed    *int64 `help:"Random seed for the opponent hand"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	own, err := rpsls.ParseHand(c.Hand)
	if err != nil {
		return fmt.Errorf("your hand: %w", err)
	}

	var other rpsls.Hand
	if c.Against != "" {
		if other, err = rpsls.ParseHand(c.Against); err != nil {
			return fmt.Errorf("opponent hand: %w", err)
		}
	} else {
		seed := pickSeed(c.Seed, cfg)
		logger.Debug("drawing opponent hand", "seed", seed)
		other = rpsls.RandomHand(randutil.New(seed))
	}

	outcome := rpsls.Play(own, other)
	logger.Debug("throw resolved", "own", own, "other", other, "outcome", outcome)

	out := g.stdout()
	fmt.Fprintf(out, "%s vs %s\n", handStyle.Render(own.String()), handStyle.Render(other.String()))
	fmt.Fprintln(out, rpsls.Describe(own, other))
	fmt.Fprintln(out, outcomeStyle(outcome).Render(outcome.String()))
	return nil
}

type RandomCmd struct {
	Seed *int64 `help:"Random seed"`
}

func (c *RandomCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	seed := pickSeed(c.Seed, cfg)
	logger.Debug("drawing random hand", "seed", seed)
	fmt.Fprintln(g.stdout(), rpsls.RandomHand(randutil.New(seed)))
	return nil
}

type SimulateCmd struct {
	Throws  int    `short:"n" help:"Number of throws (default from config)"`
	Workers int    `short:"w" help:"Parallel workers (default from config)"`
	Seed    *int64 `help:"Random seed for reproducible results"`
	Output  string `short:"o" help:"Write the JSON report to this file" type:"path"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	throws := cfg.Simulate.Throws
	if c.Throws > 0 {
		throws = c.Throws
	}
	workers := cfg.Simulate.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	report, err := simulate.Run(ctx, simulate.Config{
		Throws:  throws,
		Workers: workers,
		Seed:    pickSeed(c.Seed, cfg),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	printReport(g, report)

	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("wrote report", "path", c.Output)
	}
	return nil
}

func printReport(g *Globals, r *simulate.Report) {
	out := g.stdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("count"),
		headerStyle.Render("freq"))
	for _, name := range rpsls.Names() {
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", handStyle.Render(name), r.HandCounts[name], r.HandFrequencies[name]*100)
	}
	fmt.Fprintln(w)
	for _, o := range []rpsls.Outcome{rpsls.Win, rpsls.Lose, rpsls.Draw} {
		name := o.String()
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", outcomeStyle(o).Render(name), r.OutcomeCounts[name], r.OutcomeFrequencies[name]*100)
	}
	_ = w.Flush()

	verdict := winStyle.Render("uniform")
	if !r.Uniform {
		verdict = loseStyle.Render("NOT uniform")
	}
	fmt.Fprintf(out, "\nchi-square %.3f (df=%d), p=%.4f: %s\n", r.ChiSquare, rpsls.NumHands-1, r.PValue, verdict)
	fmt.Fprintf(out, "%d throws, %d workers, seed %d in %v\n", r.Throws, r.Workers, r.Seed, r.Elapsed)
	fmt.Fprintf(out, "run %s\n", r.RunID)
}

const tuiLogFile = "rpsls-tui.log"

type TUICmd struct {
	Seed  *int64 `help:"Random seed for opponent hands"`
	Theme string `help:"Colour theme: default, dark, light (default from config)"`
}

func (c *TUICmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	theme := cfg.UI.Theme
	if c.Theme != "" {
		theme = strings.ToLower(c.Theme)
	}
	seed := pickSeed(c.Seed, cfg)

	// The alt screen owns the terminal, so debug logs go to a file.
	if g.Debug {
		logFile, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create tui log: %w", err)
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				logger.Error("failed to close tui log", "error", err)
			}
		}()
		logger = shared.SetupLogger(logFile, cfg.Level(), true)
	} else {
		logger.SetLevel(log.ErrorLevel)
	}
	logger.Debug("starting tui", "seed", seed, "theme", theme)

	return tui.Run(tui.New(logger, randutil.New(seed), theme), tea.WithAltScreen())
}
