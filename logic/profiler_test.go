package logic

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveAndPurgeProfiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	require.NoError(t, saveProfile(dir, now))

	old := filepath.Join(dir, "old.txt")
	require.NoError(t, os.WriteFile(old, []byte("x"), 0o644))
	longAgo := now.AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(old, longAgo, longAgo))

	require.NoError(t, purgeOldProfiles(dir, now.AddDate(0, 0, -7)))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Goroutine count: "))
}
