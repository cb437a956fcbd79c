package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew_ForumDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  env: test
  debug: true
server:
  http: 8080
`)

	conf := New(path)
	require.NotNil(t, conf.Forum)
	assert.Equal(t, 30, conf.Forum.EditWindowMinutes)
	assert.False(t, conf.Forum.CountThreadPost)
	assert.Equal(t, "agora:activity", conf.Forum.ActivityStream)
	assert.Zero(t, conf.Forum.ReconcileIntervalSeconds)
}

func TestNew_ForumOverrides(t *testing.T) {
	path := writeConfig(t, `
forum:
  edit_window_minutes: 5
  count_thread_post: true
  reconcile_interval_seconds: 600
  activity_stream: "custom:stream"
`)

	conf := New(path)
	assert.Equal(t, 5, conf.Forum.EditWindowMinutes)
	assert.True(t, conf.Forum.CountThreadPost)
	assert.Equal(t, 600, conf.Forum.ReconcileIntervalSeconds)
	assert.Equal(t, "custom:stream", conf.Forum.ActivityStream)
}

func TestNew_MissingFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		New(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}