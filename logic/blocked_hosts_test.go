package logic_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"os"
	"path/filepath"
	"testing"
	"tunefed/logic"
	"tunefed/shared"
	"tunefed/test/mocks"
)

func TestBlockedHosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)

	listFile := filepath.Join(t.TempDir(), "blocked.txt")
	require.NoError(t, os.WriteFile(listFile, []byte("# spam\nspam.example\n\n  https://Noise.example/  \n"), 0o644))
	cfg := &shared.Config{BlockedHosts: []string{"bad.example"}, BlockedHostsFile: listFile}
	bh := logic.NewBlockedHosts(cfg, mockLogger)

	assert.True(t, bh.IsBlocked("https://bad.example"))
	assert.True(t, bh.IsBlocked("https://radio.bad.example/x"))
	assert.True(t, bh.IsBlocked("http://SPAM.example:8080"))
	assert.True(t, bh.IsBlocked("https://noise.example"))
	assert.False(t, bh.IsBlocked("https://notbad.example"))
	assert.False(t, bh.IsBlocked("https://good.example"))
	assert.False(t, bh.IsBlocked("%%%"))
}

func TestBlockedHosts_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).Times(1)

	cfg := &shared.Config{BlockedHostsFile: filepath.Join(t.TempDir(), "nope.txt")}
	bh := logic.NewBlockedHosts(cfg, mockLogger)
	assert.False(t, bh.IsBlocked("https://any.example"))
}
