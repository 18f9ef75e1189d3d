package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/solver-geode/internal/models"
)

const dataDir = "../../data"

const exampleLines = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
`

func exampleModels() []models.Blueprint {
	return []models.Blueprint{
		models.NewBlueprint(1, 4, 2, 3, 14, 2, 7),
		models.NewBlueprint(2, 2, 3, 3, 8, 3, 12),
	}
}

func TestParseBlueprintsOnePerLine(t *testing.T) {
	bps, err := ParseBlueprints(strings.NewReader(exampleLines))
	require.NoError(t, err)
	assert.Equal(t, exampleModels(), bps)
}

func TestParseBlueprintRoundTripsString(t *testing.T) {
	for _, want := range exampleModels() {
		got, err := ParseBlueprint(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseBlueprintsErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "no blueprints"},
		{"whitespace only", "  \n\n ", "no blueprints"},
		{"leading garbage", "hello\n" + exampleLines, "line 1: unexpected text \"hello\""},
		{"trailing garbage", exampleLines + "\nBlueprint 3: Each ore robot costs", "line 4"},
		{"zero id", strings.Replace(exampleLines, "Blueprint 1:", "Blueprint 0:", 1), "invalid blueprint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlueprints(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := ParseBlueprint(exampleLines)
	assert.ErrorContains(t, err, "expected one blueprint")
}

func TestLoadBlueprintsWrappedText(t *testing.T) {
	bps, err := LoadBlueprints(filepath.Join(dataDir, "example.txt"))
	require.NoError(t, err)
	assert.Equal(t, exampleModels(), bps)
}

func TestLoadBlueprintsYAML(t *testing.T) {
	bps, err := LoadBlueprints(filepath.Join(dataDir, "example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, exampleModels(), bps)
}

func TestLoadBlueprintsJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(ToJSON(exampleModels()))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "blueprints.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	bps, err := LoadBlueprints(path)
	require.NoError(t, err)
	assert.Equal(t, exampleModels(), bps)
}

func TestLoadBlueprintsBadFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadBlueprints(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"id": 1, "robots": {"diamond": {"ore": 1}}}]`), 0o644))
	_, err = LoadBlueprints(bad)
	assert.ErrorContains(t, err, `unknown robot "diamond"`)

	negative := filepath.Join(dir, "negative.yml")
	require.NoError(t, os.WriteFile(negative, []byte("- id: 3\n  robots:\n    ore: {ore: -1}\n"), 0o644))
	_, err = LoadBlueprints(negative)
	assert.ErrorIs(t, err, models.ErrInvalidBlueprint)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`[]`), 0o644))
	_, err = LoadBlueprints(empty)
	assert.ErrorIs(t, err, ErrNoBlueprints)
}
