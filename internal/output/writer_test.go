package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w, err := NewWriter(dir)
	require.NoError(t, err)

	at := time.Date(2024, 5, 1, 16, 30, 0, 0, time.UTC)

	path, err := w.SaveLevelsReport("SPX500", at, "levels body")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "SPX500_levels_2024-05-01.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "levels body", string(data))

	path, err = w.SaveSwingReport("SPX500", at, "swings body")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "SPX500_swings_2024-05-01.txt"), path)
}

func TestWriter_SameDayOverwrites(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err = w.SaveLevelsReport("SPX500", at, "first")
	require.NoError(t, err)
	path, err := w.SaveLevelsReport("SPX500", at, "second")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
