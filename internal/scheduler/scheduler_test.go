package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangvo55/spx-levels/internal/collector"
	"github.com/quangvo55/spx-levels/internal/levels"
	"github.com/quangvo55/spx-levels/internal/output"
	"github.com/quangvo55/spx-levels/internal/recorder"
)

func newTestScheduler(t *testing.T, dir string) *Scheduler {
	t.Helper()
	w, err := output.NewWriter(dir)
	require.NoError(t, err)
	col := collector.NewCollector(&collector.MockFetcher{Price: 5000}, "SPX500", "VIX", 300)
	an := levels.NewAnalyzer(levels.Params{})
	return NewScheduler(context.Background(), col, an, nil, recorder.NewNoopRecorder(), w, 8)
}

func TestRunOnce(t *testing.T) {
	dir := t.TempDir()
	s := newTestScheduler(t, dir)

	text, err := s.RunOnce()
	require.NoError(t, err)

	assert.Contains(t, text, "Symbol: SPX500")
	assert.Contains(t, text, "Resistance Levels:")
	assert.Contains(t, text, "Support Levels:")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names[0]+names[1], "SPX500_levels_")
	assert.Contains(t, names[0]+names[1], "SPX500_swings_")
}

func TestRunOnce_NilWriter(t *testing.T) {
	s := newTestScheduler(t, t.TempDir())
	s.Writer = nil

	_, err := s.RunOnce()
	require.NoError(t, err)
}

func TestHandleCommand(t *testing.T) {
	s := newTestScheduler(t, t.TempDir())

	t.Run("ping", func(t *testing.T) {
		assert.Equal(t, "pong", s.HandleCommand("/ping"))
	})

	t.Run("help", func(t *testing.T) {
		assert.Contains(t, s.HandleCommand("/help"), "/levels")
	})

	t.Run("levels runs a fresh analysis", func(t *testing.T) {
		reply := s.HandleCommand("/levels")
		assert.Contains(t, reply, "<pre>")
		assert.Contains(t, reply, "Symbol: SPX500")
	})

	t.Run("unknown command ignored", func(t *testing.T) {
		assert.Equal(t, "", s.HandleCommand("/unknown"))
	})

	t.Run("case and whitespace tolerated", func(t *testing.T) {
		assert.Equal(t, "pong", s.HandleCommand("  /PING "))
	})
}

func TestRegister(t *testing.T) {
	s := newTestScheduler(t, t.TempDir())

	assert.NoError(t, s.Register("0 30 22 * * 1-5"))
	assert.Error(t, s.Register("not a cron spec"))
}

func TestSchedulerRunWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := newTestScheduler(t, dir)

	s.RunNow()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
