package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rpsls/rpsls"
)

// run parses args the way main does and returns captured stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cli := CLI{Globals: Globals{Stdout: &stdout, Stderr: io.Discard}}

	parser, err := kong.New(&cli,
		kong.Name("rpsls"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)

	// Keep tests away from any rpsls.hcl in the working directory.
	args = append([]string{"--config", filepath.Join(t.TempDir(), "missing.hcl")}, args...)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	err = ctx.Run(&cli.Globals)
	return stdout.String(), err
}

func TestHandsCmd(t *testing.T) {
	out, err := run(t, "hands")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, rpsls.NumHands)
	for i, name := range rpsls.Names() {
		assert.True(t, strings.HasSuffix(lines[i], name), lines[i])
	}
}

func TestRulesCmd(t *testing.T) {
	out, err := run(t, "rules")
	require.NoError(t, err)

	assert.Contains(t, out, "Rock crushes Lizard")
	assert.Contains(t, out, "Spock smashes Scissors")
	assert.Contains(t, out, "loses to")
}

func TestPlayCmd(t *testing.T) {
	t.Run("fixed opponent", func(t *testing.T) {
		out, err := run(t, "play", "rock", "--against", "spock")
		require.NoError(t, err)
		assert.Contains(t, out, "Spock vaporizes Rock")
		assert.Contains(t, out, "Lose")
	})

	t.Run("seeded opponent is reproducible", func(t *testing.T) {
		a, err := run(t, "play", "lizard", "--seed", "11")
		require.NoError(t, err)
		b, err := run(t, "play", "lizard", "--seed", "11")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("unknown hand", func(t *testing.T) {
		_, err := run(t, "play", "dynamite")
		require.Error(t, err)
		assert.True(t, errors.Is(err, rpsls.ErrUnknownHand))
	})

	t.Run("unknown opponent", func(t *testing.T) {
		_, err := run(t, "play", "rock", "-a", "well")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opponent hand")
	})
}

func TestRandomCmd(t *testing.T) {
	out, err := run(t, "random", "--seed", "3")
	require.NoError(t, err)

	_, err = rpsls.ParseHand(out)
	assert.NoError(t, err)
}

func TestSimulateCmd(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.json")
	out, err := run(t, "simulate", "-n", "5000", "-w", "2", "--seed", "8", "-o", report)
	require.NoError(t, err)

	assert.Contains(t, out, "chi-square")
	assert.Contains(t, out, "5000 throws, 2 workers, seed 8")

	data, err := os.ReadFile(report)
	require.NoError(t, err)

	var decoded struct {
		Throws     int            `json:"throws"`
		HandCounts map[string]int `json:"hand_counts"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 5000, decoded.Throws)
	assert.Len(t, decoded.HandCounts, rpsls.NumHands)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpsls.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
settings {
  seed = 77
}
simulate {
  throws  = 1234
  workers = 1
}
`), 0o644))

	var stdout bytes.Buffer
	g := &Globals{Config: path, Stdout: &stdout, Stderr: io.Discard}
	require.NoError(t, (&SimulateCmd{}).Run(g))
	assert.Contains(t, stdout.String(), "1234 throws, 1 workers, seed 77")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpsls.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`ui { theme = "neon" }`), 0o644))

	g := &Globals{Config: path, Stdout: io.Discard, Stderr: io.Discard}
	err := (&RandomCmd{}).Run(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme")
}
