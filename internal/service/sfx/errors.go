package sfx

import (
	"context"
	"errors"
)

// Common errors for the service layer.
var (
	// ErrIncompleteDownload indicates that the downloaded file size doesn't match the expected size.
	ErrIncompleteDownload = errors.New("incomplete download")
	// ErrInvalidPageURL indicates that the page URL cannot be parsed as a base for resolving links.
	ErrInvalidPageURL = errors.New("invalid page URL")
	// ErrNoFreeFilename indicates that no free filename variant could be found for a link.
	ErrNoFreeFilename = errors.New("no free filename variant available")
)

// recordError records an error in the statistics.
// Context cancellation errors are ignored as they are expected during graceful shutdown.
func (s *ServiceImpl) recordError(fileURL, phase string, err error) {
	if err == nil {
		return
	}

	// Don't record context cancellation as an error - it's expected when user presses CTRL+C.
	if errors.Is(err, context.Canceled) {
		return
	}

	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.Errors = append(s.stats.Errors, DownloadError{
		URL:          fileURL,
		Phase:        phase,
		ErrorMessage: err.Error(),
	})
}
