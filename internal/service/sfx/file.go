package sfx

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/sfxgrab/sfx-grabber/internal/client/page"
	"github.com/sfxgrab/sfx-grabber/internal/constants"
	"github.com/sfxgrab/sfx-grabber/internal/logger"
	"github.com/sfxgrab/sfx-grabber/internal/utils"
)

// maxFilenameAttempts bounds the search for a free filename variant.
const maxFilenameAttempts = 10000

// deriveFilename derives a safe local filename from an audio file URL.
// The last segment of the URL path is used, falling back to a default
// basename when the path yields nothing usable. Names without a known
// audio extension get ".mp3" appended.
func deriveFilename(fileURL string) string {
	var segment string

	parsedURL, err := url.Parse(fileURL)
	if err == nil {
		segment = path.Base(parsedURL.Path)
		if segment == "." || segment == "/" {
			segment = ""
		}
	}

	filename := utils.SanitizeFilename(segment)
	if filename == "" {
		filename = defaultFilenameBase
	}

	if !utils.HasAudioExtension(filename) {
		filename += constants.ExtensionMP3
	}

	return filename
}

// createDestinationFile opens the destination file for a download and returns
// the final filename it was created under. In overwrite mode an existing file
// is truncated. Otherwise name collisions are resolved by appending a numeric
// suffix before the extension, relying on O_EXCL so that concurrent downloads
// can never claim the same name.
func (s *ServiceImpl) createDestinationFile(filename string) (*os.File, string, error) {
	if s.cfg.Overwrite {
		destinationPath := filepath.Join(s.cfg.OutputPath, filename)

		file, err := os.OpenFile(filepath.Clean(destinationPath), overwriteFileOptions, constants.DefaultFilePermissions)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file: %w", err)
		}

		return file, filename, nil
	}

	extension := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, extension)

	for attempt := 0; attempt < maxFilenameAttempts; attempt++ {
		candidate := filename
		if attempt > 0 {
			candidate = fmt.Sprintf("%s-%d%s", stem, attempt, extension)
		}

		destinationPath := filepath.Join(s.cfg.OutputPath, candidate)

		file, err := os.OpenFile(filepath.Clean(destinationPath), createNewFileOptions, constants.DefaultFilePermissions)
		if err != nil {
			if os.IsExist(err) {
				continue
			}

			return nil, "", fmt.Errorf("failed to create file: %w", err)
		}

		return file, candidate, nil
	}

	return nil, "", fmt.Errorf("%w for '%s'", ErrNoFreeFilename, filename)
}

// saveFile streams a fetched file to the output directory.
// A failed transfer leaves no partial file behind.
func (s *ServiceImpl) saveFile(
	ctx context.Context,
	fileURL string,
	fetchResult *page.FetchFileResult,
) (*downloadFileResult, error) {
	file, finalName, err := s.createDestinationFile(deriveFilename(fileURL))
	if err != nil {
		return nil, err
	}

	// Track whether the transfer succeeded.
	// If not, the partial file is removed on function exit.
	var downloadSucceeded bool

	defer func() {
		closeErr := file.Close()

		if !downloadSucceeded {
			if removeErr := os.Remove(file.Name()); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warnf(ctx, "Failed to clean up partial file '%s': %v (close error: %v)",
					file.Name(), removeErr, closeErr)
			}
		}
	}()

	// Initialize progress tracker.
	// Progress bars are disabled when downloading concurrently to avoid terminal output conflicts.
	var writer io.Writer

	if logger.Level() <= zap.InfoLevel && s.cfg.MaxConcurrentDownloads == 1 {
		bar := progressbar.DefaultBytes(
			fetchResult.TotalBytes,
			"Downloading",
		)

		writer = io.MultiWriter(file, bar)
	} else {
		writer = file
	}

	bytesWritten, err := io.Copy(writer, fetchResult.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	// Verify that we downloaded the expected number of bytes when the size is known.
	if fetchResult.TotalBytes > 0 && bytesWritten != fetchResult.TotalBytes {
		return nil, fmt.Errorf(
			"%w: wrote %d bytes, expected %d bytes",
			ErrIncompleteDownload,
			bytesWritten,
			fetchResult.TotalBytes,
		)
	}

	downloadSucceeded = true

	return &downloadFileResult{
		Filename:        finalName,
		BytesDownloaded: bytesWritten,
	}, nil
}
