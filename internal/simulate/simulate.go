// Package simulate draws random throws in parallel and checks that the hand
// engine's random selector is uniform.
package simulate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lox/rpsls/internal/randutil"
	"github.com/lox/rpsls/internal/runid"
	"github.com/lox/rpsls/rpsls"
)

// batchSize is how many throws a worker makes between cancellation checks.
const batchSize = 4096

// idStream is the randutil stream reserved for the run ID, out of reach of
// any worker index.
const idStream = ^uint64(0)

// UniformAlpha is the significance level below which a run is flagged as
// non-uniform.
const UniformAlpha = 0.001

// Config describes one simulation run.
type Config struct {
	Throws  int
	Workers int
	Seed    int64

	Clock  quartz.Clock
	Logger *log.Logger
}

// Tally counts hands drawn by both sides and outcomes from the first side's
// perspective.
type Tally struct {
	Throws   int
	Hands    [rpsls.NumHands]int
	Outcomes [3]int
}

// Add records one throw.
func (t *Tally) Add(own, other rpsls.Hand) {
	t.Throws++
	t.Hands[own]++
	t.Hands[other]++
	t.Outcomes[rpsls.Play(own, other)]++
}

// Merge folds o into t.
func (t *Tally) Merge(o Tally) {
	t.Throws += o.Throws
	for i := range t.Hands {
		t.Hands[i] += o.Hands[i]
	}
	for i := range t.Outcomes {
		t.Outcomes[i] += o.Outcomes[i]
	}
}

// Report is the JSON-serialisable result of a run.
type Report struct {
	RunID   string `json:"run_id"`
	Seed    int64  `json:"seed"`
	Throws  int    `json:"throws"`
	Workers int    `json:"workers"`

	HandCounts         map[string]int     `json:"hand_counts"`
	HandFrequencies    map[string]float64 `json:"hand_frequencies"`
	OutcomeCounts      map[string]int     `json:"outcome_counts"`
	OutcomeFrequencies map[string]float64 `json:"outcome_frequencies"`

	ChiSquare float64 `json:"chi_square"`
	PValue    float64 `json:"p_value"`
	Uniform   bool    `json:"uniform"`

	Elapsed time.Duration `json:"elapsed_ns"`

	tally Tally
}

// Tally returns the raw counts behind the report.
func (r *Report) Tally() Tally {
	return r.tally
}

// Run splits cfg.Throws across cfg.Workers goroutines, each drawing from its
// own derived source, and merges the tallies. For a fixed seed and worker
// count the result is identical across runs.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Throws <= 0 {
		return nil, fmt.Errorf("throws must be positive, got %d", cfg.Throws)
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	workers := min(cfg.Workers, cfg.Throws)

	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	perWorker := cfg.Throws / workers
	remainder := cfg.Throws % workers
	tallies := make([]Tally, workers)

	logger.Debug("starting simulation", "throws", cfg.Throws, "workers", workers, "seed", cfg.Seed)
	start := clock.Now()

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++
		}
		g.Go(func() error {
			rng := randutil.Derive(cfg.Seed, uint64(w))
			if err := runWorker(ctx, rng, n, &tallies[w]); err != nil {
				return err
			}
			logger.Debug("worker finished", "worker", w, "throws", n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation cancelled: %w", err)
	}

	var total Tally
	for _, t := range tallies {
		total.Merge(t)
	}

	report := newReport(total, cfg.Seed, workers)
	report.RunID = runid.NewGenerator(clock, randutil.Derive(cfg.Seed, idStream)).Generate()
	report.Elapsed = clock.Since(start)
	logger.Info("simulation complete",
		"run_id", report.RunID,
		"throws", report.Throws,
		"chi_square", fmt.Sprintf("%.3f", report.ChiSquare),
		"p_value", fmt.Sprintf("%.4f", report.PValue),
		"elapsed", report.Elapsed)
	return report, nil
}

func runWorker(ctx context.Context, rng rpsls.Source, throws int, tally *Tally) error {
	for done := 0; done < throws; {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(done+batchSize, throws)
		for ; done < end; done++ {
			tally.Add(rpsls.RandomHand(rng), rpsls.RandomHand(rng))
		}
	}
	return nil
}

func newReport(t Tally, seed int64, workers int) *Report {
	r := &Report{
		Seed:               seed,
		Throws:             t.Throws,
		Workers:            workers,
		HandCounts:         make(map[string]int, rpsls.NumHands),
		HandFrequencies:    make(map[string]float64, rpsls.NumHands),
		OutcomeCounts:      make(map[string]int, 3),
		OutcomeFrequencies: make(map[string]float64, 3),
		tally:              t,
	}

	draws := 2 * t.Throws
	for _, h := range rpsls.Hands() {
		r.HandCounts[h.String()] = t.Hands[h]
		r.HandFrequencies[h.String()] = float64(t.Hands[h]) / float64(draws)
	}
	for _, o := range []rpsls.Outcome{rpsls.Win, rpsls.Lose, rpsls.Draw} {
		r.OutcomeCounts[o.String()] = t.Outcomes[o]
		r.OutcomeFrequencies[o.String()] = float64(t.Outcomes[o]) / float64(t.Throws)
	}

	r.ChiSquare, r.PValue = UniformityTest(t.Hands[:])
	r.Uniform = r.PValue >= UniformAlpha
	return r
}

// UniformityTest runs a chi-square goodness-of-fit test of counts against
// the uniform distribution and returns the statistic and its p-value.
func UniformityTest(counts []int) (stat, pValue float64) {
	if len(counts) < 2 {
		return 0, 1
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0, 1
	}

	expected := float64(total) / float64(len(counts))
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}

	dist := distuv.ChiSquared{K: float64(len(counts) - 1)}
	return stat, 1 - dist.CDF(stat)
}
