package sfx

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfxgrab/sfx-grabber/internal/config"
)

func newTestService(t *testing.T, cfg *config.Config) *ServiceImpl {
	t.Helper()

	return &ServiceImpl{
		cfg:           cfg,
		linkExtractor: NewLinkExtractor(),
		stats:         new(DownloadStatistics),
		statsMutex:    new(sync.Mutex),
	}
}

// TestDeriveFilename tests deriving local filenames from audio file URLs.
func TestDeriveFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileURL  string
		expected string
	}{
		{
			name:     "plain path",
			fileURL:  "https://example.com/sounds/move.mp3",
			expected: "move.mp3",
		},
		{
			name:     "query string stripped",
			fileURL:  "https://example.com/sounds/capture.wav?v=2",
			expected: "capture.wav",
		},
		{
			name:     "no extension gets mp3 appended",
			fileURL:  "https://example.com/stream/480215",
			expected: "480215.mp3",
		},
		{
			name:     "empty path falls back to default basename",
			fileURL:  "https://example.com",
			expected: "audio.mp3",
		},
		{
			name:     "root path falls back to default basename",
			fileURL:  "https://example.com/",
			expected: "audio.mp3",
		},
		{
			name:     "percent encoding decoded",
			fileURL:  "https://example.com/sounds/en%20passant.mp3",
			expected: "en passant.mp3",
		},
		{
			name:     "invalid characters sanitized",
			fileURL:  "https://example.com/sounds/check%3Amate.ogg",
			expected: "check_mate.ogg",
		},
		{
			name:     "uppercase extension recognized",
			fileURL:  "https://example.com/sounds/CASTLE.FLAC",
			expected: "CASTLE.FLAC",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, deriveFilename(tt.fileURL))
		})
	}
}

// TestCreateDestinationFile tests collision handling when creating destination files.
func TestCreateDestinationFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	service := newTestService(t, &config.Config{OutputPath: tempDir})

	// First download claims the plain name.
	file, finalName, err := service.createDestinationFile("click.mp3")
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.Equal(t, "click.mp3", finalName)

	// Same-named downloads get numeric suffixes in order.
	file, finalName, err = service.createDestinationFile("click.mp3")
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.Equal(t, "click-1.mp3", finalName)

	file, finalName, err = service.createDestinationFile("click.mp3")
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.Equal(t, "click-2.mp3", finalName)
}

// TestCreateDestinationFileOverwrite tests that overwrite mode truncates an existing file.
func TestCreateDestinationFileOverwrite(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	service := newTestService(t, &config.Config{OutputPath: tempDir, Overwrite: true})

	existingPath := filepath.Join(tempDir, "click.mp3")
	require.NoError(t, os.WriteFile(existingPath, []byte("old content"), 0o644))

	file, finalName, err := service.createDestinationFile("click.mp3")
	require.NoError(t, err)

	assert.Equal(t, "click.mp3", finalName)

	_, err = file.WriteString("new")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	content, err := os.ReadFile(existingPath)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}
