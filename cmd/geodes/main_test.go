package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = "../../data/example.txt"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestQualityQuiet(t *testing.T) {
	out, _, err := execute(t, "-i", exampleInput, "-q", "quality")
	require.NoError(t, err)
	assert.Equal(t, "33", strings.TrimSpace(out))
}

func TestQualityTable(t *testing.T) {
	out, logs, err := execute(t, "-i", exampleInput, "-w", "2", "quality")
	require.NoError(t, err)

	assert.Contains(t, out, "Geode Production")
	assert.Contains(t, out, "Quality level sum: 33")
	assert.Contains(t, logs, "run complete")
	assert.Contains(t, logs, "run=")
}

func TestProductQuiet(t *testing.T) {
	if testing.Short() {
		t.Skip("long horizon")
	}
	out, _, err := execute(t, "-i", exampleInput, "-q", "product")
	require.NoError(t, err)
	assert.Equal(t, "3472", strings.TrimSpace(out))
}

func TestSolveMinutes(t *testing.T) {
	out, _, err := execute(t, "-i", exampleInput, "-q", "solve", "-m", "20")
	require.NoError(t, err)
	// 1×2 + 2×2 at 20 minutes
	assert.Equal(t, "6", strings.TrimSpace(out))
}

func TestSolveExpansionCap(t *testing.T) {
	out, _, err := execute(t, "-i", exampleInput, "--max-expansions", "10", "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "hit the expansion cap")
	assert.Contains(t, out, "capped")
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "geodes.prom")
	configPath := filepath.Join(dir, "geodes.yaml")
	cfg := "metrics:\n  file: " + metricsPath + "\nlogging:\n  level: warn\n"
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o644))

	_, logs, err := execute(t, "-i", exampleInput, "-c", configPath, "-q", "quality")
	require.NoError(t, err)
	assert.Empty(t, logs)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "geodes_search_runs_total")
	assert.Contains(t, string(data), `geodes_best_geodes{blueprint="2",horizon="24"} 12`)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"text", "Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore."},
		{"json", `"obsidian": 12`},
		{"yaml", "clay: 14"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, _, err := execute(t, "-i", exampleInput, "convert", "-f", tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "-i", exampleInput, "convert", "-f", "xml")
	require.Error(t, err)
}

func TestMissingInput(t *testing.T) {
	_, _, err := execute(t, "-i", filepath.Join(t.TempDir(), "nope.txt"), "quality")
	require.Error(t, err)
}
