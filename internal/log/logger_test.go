package log

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_AttachesService(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf, Level: "debug"})

	l.Debug().Str(FieldPath, "/videos/a.mp4").Msg("loaded")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "vidpeek", entry["service"])
	assert.Equal(t, "/videos/a.mp4", entry[FieldPath])
	assert.Equal(t, "loaded", entry["message"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf, Level: "warn"})

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("VIDPEEK_LOG_LEVEL", "")
	var buf bytes.Buffer
	l := New(Config{Output: &buf, Level: "loud"})

	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
	l.Info().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv("VIDPEEK_LOG_LEVEL", "error")
	var buf bytes.Buffer
	l := New(Config{Output: &buf})

	l.Warn().Msg("hidden")
	assert.Zero(t, buf.Len())
}

func TestWithComponent(t *testing.T) {
	prev := Base()
	t.Cleanup(func() {
		mu.Lock()
		base = prev
		mu.Unlock()
	})

	var buf bytes.Buffer
	Configure(Config{Output: &buf, Service: "test"})

	logger := WithComponent("playback")
	logger.Info().Msg("state changed")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "playback", entry[FieldComponent])
	assert.Equal(t, "test", entry["service"])
}

func TestOpenFile_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "vidpeek.log")

	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("line\n")
	require.NoError(t, err)
	assert.FileExists(t, path)
}
