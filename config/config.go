// Package config loads engine settings from YAML and turns them into
// gridmap, pathfinder and request values.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/katalvlaran/gridpath/scheduler"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// DefaultTickInterval is the Run loop period used when none is configured.
const DefaultTickInterval = 16 * time.Millisecond

// Config holds all engine configuration.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Costs      CostsConfig      `yaml:"costs"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	PathFinder PathFinderConfig `yaml:"pathfinder"`
	Defaults   RequestDefaults  `yaml:"defaults"`
}

// GridConfig holds the movement rules applied to passable maps.
type GridConfig struct {
	DiagonalPassByObstacle bool `yaml:"diagonal_pass_by_obstacle"`
	Connectivity           int  `yaml:"connectivity"` // 4 or 8
}

// CostsConfig holds the integer step prices.
type CostsConfig struct {
	Straight int `yaml:"straight"`
	Diagonal int `yaml:"diagonal"`
}

// SchedulerConfig holds the per-tick bounds. Zero disables a bound.
type SchedulerConfig struct {
	MaxTasksPerTick int           `yaml:"max_tasks_per_tick"`
	TickBudget      time.Duration `yaml:"tick_budget"`
	TickInterval    time.Duration `yaml:"tick_interval"`
}

// PathFinderConfig holds engine switches.
type PathFinderConfig struct {
	LineOfSightFirstCheck bool `yaml:"line_of_sight_first_check"`
	CacheSize             int  `yaml:"cache_size"`   // 0 disables the result cache
	BucketWidth           int  `yaml:"bucket_width"` // 0 selects the straight cost
}

// RequestDefaults holds the choices NewRequest applies.
type RequestDefaults struct {
	Algorithm            pathfinder.AlgorithmKind `yaml:"algorithm"`
	Heuristic            heuristic.Kind           `yaml:"heuristic"`
	Reprocess            pathfinder.ReprocessKind `yaml:"reprocess"`
	NeedsOptimalSolution bool                     `yaml:"needs_optimal_solution"`
	CanUseCache          bool                     `yaml:"can_use_cache"`
	Priority             int                      `yaml:"priority"`
}

// Default returns the configuration used for keys a file leaves out.
func Default() *Config {
	costs := core.DefaultStepCosts()

	return &Config{
		Grid:  GridConfig{Connectivity: 8},
		Costs: CostsConfig{Straight: costs.Straight, Diagonal: costs.Diagonal},
		Scheduler: SchedulerConfig{
			MaxTasksPerTick: scheduler.DefaultMaxTasksPerTick,
			TickBudget:      scheduler.DefaultTickBudget,
			TickInterval:    DefaultTickInterval,
		},
		PathFinder: PathFinderConfig{CacheSize: pathfinder.DefaultCacheSize},
		Defaults: RequestDefaults{
			Algorithm:            pathfinder.AStar,
			Heuristic:            heuristic.Diagonal,
			Reprocess:            pathfinder.ReprocessDefault,
			NeedsOptimalSolution: true,
			Priority:             pathfinder.DefaultPriority,
		},
	}
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Connectivity != 4 && c.Grid.Connectivity != 8:
		return fmt.Errorf("%w: grid.connectivity %d, want 4 or 8", ErrInvalid, c.Grid.Connectivity)
	case c.StepCosts().Validate() != nil:
		return fmt.Errorf("%w: costs %d/%d must be positive", ErrInvalid, c.Costs.Straight, c.Costs.Diagonal)
	case c.Scheduler.MaxTasksPerTick < 0:
		return fmt.Errorf("%w: scheduler.max_tasks_per_tick %d", ErrInvalid, c.Scheduler.MaxTasksPerTick)
	case c.Scheduler.TickBudget < 0:
		return fmt.Errorf("%w: scheduler.tick_budget %s", ErrInvalid, c.Scheduler.TickBudget)
	case c.Scheduler.TickInterval <= 0:
		return fmt.Errorf("%w: scheduler.tick_interval %s", ErrInvalid, c.Scheduler.TickInterval)
	case c.PathFinder.CacheSize < 0:
		return fmt.Errorf("%w: pathfinder.cache_size %d", ErrInvalid, c.PathFinder.CacheSize)
	case c.PathFinder.BucketWidth < 0:
		return fmt.Errorf("%w: pathfinder.bucket_width %d", ErrInvalid, c.PathFinder.BucketWidth)
	}

	return nil
}

// StepCosts returns the configured step prices.
func (c *Config) StepCosts() core.StepCosts {
	return core.StepCosts{Straight: c.Costs.Straight, Diagonal: c.Costs.Diagonal}
}

// GridOptions returns the movement rules as gridmap options.
func (c *Config) GridOptions() []gridmap.Option {
	conn := gridmap.Conn8
	if c.Grid.Connectivity == 4 {
		conn = gridmap.Conn4
	}

	return []gridmap.Option{
		gridmap.WithConnectivity(conn),
		gridmap.WithDiagonalPassByObstacle(c.Grid.DiagonalPassByObstacle),
	}
}

// PathFinderOptions returns the engine settings as pathfinder options,
// followed by extra.
func (c *Config) PathFinderOptions(extra ...pathfinder.Option) []pathfinder.Option {
	opts := []pathfinder.Option{
		pathfinder.WithLineOfSightFirstCheck(c.PathFinder.LineOfSightFirstCheck),
		pathfinder.WithStepCosts(c.StepCosts()),
		pathfinder.WithBucketWidth(c.PathFinder.BucketWidth),
		pathfinder.WithCacheSize(c.PathFinder.CacheSize),
		pathfinder.WithMaxTasksPerTick(c.Scheduler.MaxTasksPerTick),
		pathfinder.WithTickBudget(c.Scheduler.TickBudget),
	}

	return append(opts, extra...)
}

// Run drives pf at the configured scheduler.tick_interval until ctx is done
// and returns ctx.Err().
func (c *Config) Run(ctx context.Context, pf *pathfinder.PathFinder) error {
	return pf.Run(ctx, c.Scheduler.TickInterval)
}

// NewRequest returns a request from start to end carrying the configured defaults.
func (c *Config) NewRequest(start, end core.Point) *pathfinder.Request {
	d := c.Defaults

	return &pathfinder.Request{
		Start:                start,
		End:                  end,
		Algorithm:            d.Algorithm,
		Heuristic:            d.Heuristic,
		Reprocess:            d.Reprocess,
		NeedsOptimalSolution: d.NeedsOptimalSolution,
		CanUseCache:          d.CanUseCache,
	}
}
