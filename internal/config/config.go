// Package config loads grid scenarios from YAML files.
//
// A scenario describes the grid either as a text map:
//
//	rows:
//	  - "..T"
//	  - ".#."
//	  - "S.."
//
// or as a size plus a list of blocked [row, col] pairs:
//
//	size: 12
//	blocked: [[3, 4], [3, 5]]
//
// Both forms may be combined; blocked pairs are then applied on top of the
// map. Optional keys: selection ("heap" or "scan") and interval (a Go
// duration such as "5ms") for animated replay.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathgrid/graph"
	"github.com/katalvlaran/pathgrid/gridpath"
)

// Sentinel errors for scenario handling.
var (
	// ErrInvalidScenario wraps every validation failure.
	ErrInvalidScenario = errors.New("config: invalid scenario")
	// ErrNoGrid indicates neither size nor rows were given.
	ErrNoGrid = errors.New("config: scenario needs size or rows")
)

// Scenario is the on-disk description of one grid. Size is capped at 512.
type Scenario struct {
	Size      int           `yaml:"size" validate:"gte=0,lte=512"`
	Rows      []string      `yaml:"rows" validate:"omitempty,dive,required"`
	Blocked   [][]int       `yaml:"blocked" validate:"omitempty,dive,len=2,dive,gte=0"`
	Selection string        `yaml:"selection" validate:"omitempty,oneof=heap scan"`
	Interval  time.Duration `yaml:"interval" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a YAML scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks field constraints and that a grid is described.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if s.Size == 0 && len(s.Rows) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, ErrNoGrid)
	}
	if s.Size != 0 && len(s.Rows) != 0 && s.Size != len(s.Rows) {
		return fmt.Errorf("%w: size %d does not match %d rows", ErrInvalidScenario, s.Size, len(s.Rows))
	}

	return nil
}

// SelectionStrategy returns the parsed selection, SelectHeap when unset.
func (s *Scenario) SelectionStrategy() (graph.Selection, error) {
	return graph.ParseSelection(s.Selection)
}

// Grid builds the described grid. Errors from gridpath (out-of-bounds or
// protected cells, malformed rows) are wrapped with ErrInvalidScenario.
func (s *Scenario) Grid() (*gridpath.Grid, error) {
	var (
		g   *gridpath.Grid
		err error
	)
	if len(s.Rows) > 0 {
		g, err = gridpath.FromRows(s.Rows)
	} else {
		g, err = gridpath.NewGrid(s.Size)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	for _, rc := range s.Blocked {
		if err = g.Block(gridpath.Cell{Row: rc[0], Col: rc[1]}); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}

	return g, nil
}
