package sfx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sfxgrab/sfx-grabber/internal/config"
)

// TestFormatDuration tests formatting durations into human-readable strings.
func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"milliseconds", 450 * time.Millisecond, "450ms"},
		{"seconds", 12 * time.Second, "12s"},
		{"minutes and seconds", 2*time.Minute + 5*time.Second, "2m 5s"},
		{"hours", time.Hour + 3*time.Minute + 7*time.Second, "1h 3m 7s"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}

// TestRecordError tests error recording in download statistics.
func TestRecordError(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &config.Config{})

	service.recordError("https://example.com/move.mp3", phaseFetchingFile, errors.New("connection refused"))

	assert.Len(t, service.stats.Errors, 1)
	assert.Equal(t, "https://example.com/move.mp3", service.stats.Errors[0].URL)
	assert.Equal(t, phaseFetchingFile, service.stats.Errors[0].Phase)
	assert.Equal(t, "connection refused", service.stats.Errors[0].ErrorMessage)
}

// TestRecordErrorIgnoresCancellation tests that context cancellation is not recorded as an error.
func TestRecordErrorIgnoresCancellation(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &config.Config{})

	service.recordError("https://example.com/move.mp3", phaseFetchingFile, context.Canceled)

	assert.Empty(t, service.stats.Errors)
}

// TestStatisticsIncrements tests the statistics counters.
func TestStatisticsIncrements(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &config.Config{})

	service.incrementFileDownloaded(1024)
	service.incrementFileDownloaded(2048)
	service.incrementFileFailed()

	assert.Equal(t, int64(2), service.stats.FilesDownloaded)
	assert.Equal(t, int64(1), service.stats.FilesFailed)
	assert.Equal(t, int64(3072), service.stats.TotalBytesDownloaded)
}

// TestPrintDownloadSummaryEmptySession tests that an empty session prints nothing and does not panic.
func TestPrintDownloadSummary(t *testing.T) {
	t.Parallel()

	service := newTestService(t, &config.Config{})

	// Nothing discovered: summary is skipped.
	service.PrintDownloadSummary(context.Background())

	// Populated statistics: summary prints without panicking.
	service.stats.StartTime = time.Now().Add(-2 * time.Second)
	service.stats.EndTime = time.Now()
	service.stats.LinksDiscovered = 3
	service.stats.FilesDownloaded = 2
	service.stats.FilesFailed = 1
	service.stats.TotalBytesDownloaded = 4096
	service.stats.Errors = []DownloadError{
		{URL: "https://example.com/bad.mp3", Phase: phaseFetchingFile, ErrorMessage: "boom"},
	}

	service.PrintDownloadSummary(context.Background())
}
