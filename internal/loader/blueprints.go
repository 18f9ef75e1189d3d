package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/solver-geode/internal/models"
)

// ErrNoBlueprints is returned when an input holds no blueprint at all
var ErrNoBlueprints = errors.New("no blueprints found")

// Precompiled regex for the canonical sentence format. Whitespace is free so a
// blueprint may wrap over several lines.
var blueprintRegex = regexp.MustCompile(
	`Blueprint\s+(\d+):\s*` +
		`Each\s+ore\s+robot\s+costs\s+(\d+)\s+ore\.\s*` +
		`Each\s+clay\s+robot\s+costs\s+(\d+)\s+ore\.\s*` +
		`Each\s+obsidian\s+robot\s+costs\s+(\d+)\s+ore\s+and\s+(\d+)\s+clay\.\s*` +
		`Each\s+geode\s+robot\s+costs\s+(\d+)\s+ore\s+and\s+(\d+)\s+obsidian\.`,
)

// BlueprintJSON represents a blueprint in JSON or YAML files.
// Robots maps a producer kind to its cost, e.g. {"obsidian": {"ore": 3, "clay": 14}}.
type BlueprintJSON struct {
	ID     int                       `json:"id" yaml:"id"`
	Robots map[string]map[string]int `json:"robots" yaml:"robots"`
}

// ParseBlueprint parses a single blueprint sentence
func ParseBlueprint(s string) (models.Blueprint, error) {
	bps, err := ParseBlueprints(strings.NewReader(s))
	if err != nil {
		return models.Blueprint{}, err
	}
	if len(bps) != 1 {
		return models.Blueprint{}, fmt.Errorf("expected one blueprint, found %d", len(bps))
	}
	return bps[0], nil
}

// ParseBlueprints parses every blueprint sentence in r.
// Anything other than whitespace between blueprints is an error.
func ParseBlueprints(r io.Reader) ([]models.Blueprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}
	text := string(data)

	var blueprints []models.Blueprint
	pos := 0
	for _, loc := range blueprintRegex.FindAllStringSubmatchIndex(text, -1) {
		if err := checkGap(text, pos, loc[0]); err != nil {
			return nil, err
		}

		var n [7]int
		for i := range n {
			n[i], err = strconv.Atoi(text[loc[2+2*i]:loc[3+2*i]])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineOf(text, loc[0]), err)
			}
		}

		bp := models.NewBlueprint(n[0], n[1], n[2], n[3], n[4], n[5], n[6])
		if err := bp.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineOf(text, loc[0]), err)
		}
		blueprints = append(blueprints, bp)
		pos = loc[1]
	}

	if err := checkGap(text, pos, len(text)); err != nil {
		return nil, err
	}
	if len(blueprints) == 0 {
		return nil, ErrNoBlueprints
	}
	return blueprints, nil
}

// LoadBlueprints loads blueprints from a file, choosing the format by extension:
// .json, .yaml/.yml, or the sentence format for anything else.
func LoadBlueprints(path string) ([]models.Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var raw []BlueprintJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		bps, err := ParseBlueprints(strings.NewReader(string(data)))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return bps, nil
	}

	bps, err := FromJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return bps, nil
}

// FromJSON converts decoded JSON/YAML blueprints to models
func FromJSON(raw []BlueprintJSON) ([]models.Blueprint, error) {
	if len(raw) == 0 {
		return nil, ErrNoBlueprints
	}

	blueprints := make([]models.Blueprint, 0, len(raw))
	for _, rb := range raw {
		bp := models.Blueprint{ID: rb.ID}
		for robot, costs := range rb.Robots {
			producer, ok := models.ParseResource(robot)
			if !ok {
				return nil, fmt.Errorf("blueprint %d: unknown robot %q", rb.ID, robot)
			}
			for res, amount := range costs {
				r, ok := models.ParseResource(res)
				if !ok {
					return nil, fmt.Errorf("blueprint %d: %s robot: unknown resource %q", rb.ID, robot, res)
				}
				bp.Costs[producer][r] = amount
			}
		}
		if err := bp.Validate(); err != nil {
			return nil, err
		}
		blueprints = append(blueprints, bp)
	}
	return blueprints, nil
}

// ToJSON converts models back to their file representation
func ToJSON(blueprints []models.Blueprint) []BlueprintJSON {
	out := make([]BlueprintJSON, 0, len(blueprints))
	for _, bp := range blueprints {
		rb := BlueprintJSON{ID: bp.ID, Robots: make(map[string]map[string]int)}
		for _, producer := range models.AllResources() {
			costs := make(map[string]int)
			for _, r := range models.AllResources() {
				if amount := bp.Costs[producer][r]; amount != 0 {
					costs[r.String()] = amount
				}
			}
			rb.Robots[producer.String()] = costs
		}
		out = append(out, rb)
	}
	return out
}

// checkGap rejects anything but whitespace in text[from:to]
func checkGap(text string, from, to int) error {
	gap := text[from:to]
	trimmed := strings.TrimLeftFunc(gap, unicode.IsSpace)
	if trimmed == "" {
		return nil
	}
	offset := from + len(gap) - len(trimmed)
	return fmt.Errorf("line %d: unexpected text %q", lineOf(text, offset), truncate(strings.TrimSpace(trimmed)))
}

func lineOf(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
