package config_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/katalvlaran/gridpath/scheduler"
)

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "gridpath.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.Grid.DiagonalPassByObstacle)
	assert.Equal(t, core.StepCosts{Straight: 5, Diagonal: 7}, cfg.StepCosts())
	assert.Equal(t, config.SchedulerConfig{
		MaxTasksPerTick: 2,
		TickBudget:      4 * time.Millisecond,
		TickInterval:    20 * time.Millisecond,
	}, cfg.Scheduler)
	assert.Equal(t, config.PathFinderConfig{LineOfSightFirstCheck: true, CacheSize: 64}, cfg.PathFinder)
	assert.Equal(t, config.RequestDefaults{
		Algorithm:   pathfinder.JPSPlus,
		Heuristic:   heuristic.WeightedDiagonal,
		Reprocess:   pathfinder.ReprocessTheta,
		CanUseCache: true,
		Priority:    3,
	}, cfg.Defaults)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}

func TestParse_EmptyUsesDefaults(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 8, cfg.Grid.Connectivity)
	assert.Equal(t, pathfinder.AStar, cfg.Defaults.Algorithm)
	assert.Equal(t, config.DefaultTickInterval, cfg.Scheduler.TickInterval)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("grid:\n  connectivity: 4\nscheduler:\n  max_tasks_per_tick: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Grid.Connectivity)
	assert.Zero(t, cfg.Scheduler.MaxTasksPerTick, "explicit zero is kept")
	assert.Equal(t, config.Default().Costs, cfg.Costs)
	assert.Equal(t, heuristic.Diagonal, cfg.Defaults.Heuristic)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
	}{
		{"unknown key", "grid:\n  conectivity: 4\n", false},
		{"unknown algorithm", "defaults:\n  algorithm: greedy\n", false},
		{"unknown heuristic", "defaults:\n  heuristic: octile\n", false},
		{"bad duration", "scheduler:\n  tick_budget: soon\n", false},
		{"connectivity", "grid:\n  connectivity: 6\n", true},
		{"zero cost", "costs:\n  diagonal: 0\n", true},
		{"negative tasks", "scheduler:\n  max_tasks_per_tick: -1\n", true},
		{"negative budget", "scheduler:\n  tick_budget: -1ms\n", true},
		{"zero interval", "scheduler:\n  tick_interval: 0s\n", true},
		{"negative cache", "pathfinder:\n  cache_size: -2\n", true},
		{"negative bucket", "pathfinder:\n  bucket_width: -10\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, config.ErrInvalid)
			}
		})
	}
}

func TestGridOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Connectivity = 4
	cfg.Grid.DiagonalPassByObstacle = true

	g, err := gridmap.New(3, 3, cfg.GridOptions()...)
	require.NoError(t, err)
	assert.Equal(t, gridmap.Conn4, g.Connectivity())
	assert.True(t, g.CanDiagonallyPassByObstacle())
}

func TestPathFinderOptions_DriveEngine(t *testing.T) {
	cfg, err := config.Parse([]byte(`
scheduler:
  max_tasks_per_tick: 1
  tick_budget: 0s
defaults:
  algorithm: dijkstra
  reprocess: none
`))
	require.NoError(t, err)

	g, err := gridmap.New(4, 4, cfg.GridOptions()...)
	require.NoError(t, err)
	pf := pathfinder.New(cfg.PathFinderOptions()...)
	require.NoError(t, pf.SetPassableMap(g))

	a := cfg.NewRequest(core.Pt(0, 0), core.Pt(3, 3))
	b := cfg.NewRequest(core.Pt(0, 0), core.Pt(1, 0))
	assert.Equal(t, pathfinder.Dijkstra, a.Algorithm)
	assert.True(t, a.NeedsOptimalSolution)
	require.NoError(t, pf.AddFindPathRequest(a, cfg.Defaults.Priority))
	require.NoError(t, pf.AddFindPathRequest(b, cfg.Defaults.Priority))

	assert.Equal(t, 1, pf.Tick(context.Background()).Executed)
	assert.Equal(t, 1, pf.PendingRequests())
	assert.Equal(t, pathfinder.StateCompleted, b.State(), "nearer goal first")
	assert.Equal(t, b.RawPath, b.ReprocessedPath)
}

func TestRun_UsesTickInterval(t *testing.T) {
	cfg, err := config.Parse([]byte("scheduler:\n  tick_interval: 2ms\n"))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Millisecond, cfg.Scheduler.TickInterval)

	g, err := gridmap.New(4, 4, cfg.GridOptions()...)
	require.NoError(t, err)
	pf := pathfinder.New(cfg.PathFinderOptions()...)
	require.NoError(t, pf.SetPassableMap(g))

	done := make(chan struct{})
	req := cfg.NewRequest(core.Pt(0, 0), core.Pt(3, 3))
	req.OnComplete = func(*pathfinder.Request) { close(done) }
	require.NoError(t, pf.AddFindPathRequest(req, cfg.Defaults.Priority))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- cfg.Run(ctx, pf) }()
	<-done
	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.Equal(t, pathfinder.StateCompleted, req.State())
	assert.Len(t, req.RawPath, 4)
}

func TestRun_ZeroIntervalRejected(t *testing.T) {
	cfg := config.Default()
	cfg.Scheduler.TickInterval = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	pf := pathfinder.New(cfg.PathFinderOptions()...)
	assert.ErrorIs(t, cfg.Run(context.Background(), pf), scheduler.ErrBadInterval)
}
