package sfx

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sfxgrab/sfx-grabber/internal/client/page"
	"github.com/sfxgrab/sfx-grabber/internal/config"
	"github.com/sfxgrab/sfx-grabber/internal/constants"
	"github.com/sfxgrab/sfx-grabber/internal/logger"
)

// Service provides methods for grabbing audio files linked from a web page.
type Service interface {
	// Run executes the full grab pipeline: fetch the page, extract audio links,
	// download the files, and write the manifest.
	Run(ctx context.Context) error
	// PrintDownloadSummary prints a formatted summary of download statistics.
	PrintDownloadSummary(ctx context.Context)
}

// ServiceImpl implements the audio grab service.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// pageClient fetches the page and the files it links to.
	pageClient page.Client
	// linkExtractor finds audio file links in page markup.
	linkExtractor LinkExtractor
	// stats tracks download statistics for the current session.
	stats *DownloadStatistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

// NewService creates a grab service instance with dependency-injected components.
func NewService(
	cfg *config.Config,
	pageClient page.Client,
	linkExtractor LinkExtractor,
) Service {
	return &ServiceImpl{
		cfg:           cfg,
		pageClient:    pageClient,
		linkExtractor: linkExtractor,
		stats:         new(DownloadStatistics),
		statsMutex:    new(sync.Mutex),
	}
}

// Run executes the full grab pipeline, from page fetch to manifest creation.
// A page fetch failure is returned as an error; individual file failures are
// recorded in statistics and do not abort the run.
func (s *ServiceImpl) Run(ctx context.Context) error {
	// Record start time and dry-run mode for statistics.
	s.statsMutex.Lock()
	s.stats.StartTime = time.Now()
	s.stats.IsDryRun = s.cfg.DryRun
	s.statsMutex.Unlock()

	logger.Infof(ctx, "Fetching page '%s'", s.cfg.URL)

	pageContent, err := s.pageClient.FetchPage(ctx, s.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch page '%s': %w", s.cfg.URL, err)
	}

	links, err := s.linkExtractor.ExtractLinks(ctx, pageContent, s.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to extract audio links: %w", err)
	}

	s.statsMutex.Lock()
	s.stats.LinksDiscovered = int64(len(links))
	s.statsMutex.Unlock()

	if len(links) == 0 {
		logger.Warnf(ctx, "No audio file links found on '%s'", s.cfg.URL)

		return nil
	}

	logger.Infof(ctx, "Found %d audio file link(s)", len(links))

	// Dry-run mode previews the links without touching the filesystem.
	if s.cfg.DryRun {
		s.previewLinks(ctx, links)

		return nil
	}

	// Ensure the output directory exists.
	err = os.MkdirAll(s.cfg.OutputPath, constants.DefaultFolderPermissions)
	if err != nil {
		return fmt.Errorf("failed to create output path: %w", err)
	}

	entries := s.downloadLinks(ctx, links)

	// Record end time for statistics.
	s.statsMutex.Lock()
	s.stats.EndTime = time.Now()
	s.statsMutex.Unlock()

	// The manifest is only written when at least one file made it to disk.
	if len(entries) == 0 {
		logger.Warn(ctx, "No files were downloaded, skipping manifest")

		return nil
	}

	manifestPath := filepath.Join(s.cfg.OutputPath, constants.ManifestFilename)

	err = WriteManifest(manifestPath, s.cfg.URL, entries)
	if err != nil {
		return err
	}

	s.statsMutex.Lock()
	s.stats.ManifestPath = manifestPath
	s.statsMutex.Unlock()

	logger.Infof(ctx, "Manifest written to '%s'", manifestPath)

	return nil
}

// previewLinks logs the links that would be downloaded without downloading them.
func (s *ServiceImpl) previewLinks(ctx context.Context, links []string) {
	logger.Infof(ctx, "[DRY-RUN] Would create output directory: %s", s.cfg.OutputPath)

	linksCount := len(links)

	for index, link := range links {
		logger.Infof(ctx, "[DRY-RUN] Would download (%d / %d): %s", index+1, linksCount, link)
	}
}

// downloadLinks downloads every link and returns manifest entries for the
// files that made it to disk, in link order.
func (s *ServiceImpl) downloadLinks(ctx context.Context, links []string) []ManifestEntry {
	results := make([]*downloadFileResult, len(links))

	if s.cfg.MaxConcurrentDownloads <= 1 {
		s.downloadLinksSequentially(ctx, links, results)
	} else {
		s.downloadLinksConcurrently(ctx, links, results)
	}

	entries := make([]ManifestEntry, 0, len(results))

	for _, result := range results {
		if result == nil {
			continue
		}

		entries = append(entries, ManifestEntry{
			Filename:     result.Filename,
			RelativePath: result.Filename,
			SourceURL:    s.cfg.URL,
		})
	}

	return entries
}

// downloadLinksSequentially downloads the links one at a time in order.
func (s *ServiceImpl) downloadLinksSequentially(ctx context.Context, links []string, results []*downloadFileResult) {
	linksCount := len(links)

	for index, link := range links {
		// Check if context was canceled (CTRL+C pressed) - stop immediately.
		select {
		case <-ctx.Done():
			return
		default:
		}

		logger.Infof(ctx, "Downloading file (%d / %d): %s", index+1, linksCount, link)

		results[index] = s.downloadLink(ctx, link)
	}
}

// downloadLinksConcurrently downloads the links with a bounded worker pool.
func (s *ServiceImpl) downloadLinksConcurrently(ctx context.Context, links []string, results []*downloadFileResult) {
	// Create a semaphore channel to limit concurrent downloads.
	semaphore := make(chan struct{}, s.cfg.MaxConcurrentDownloads)

	var waitGroup sync.WaitGroup

	for index, link := range links {
		// Check if context was canceled (CTRL+C pressed) - stop queueing new downloads.
		select {
		case <-ctx.Done():
			goto waitForCompletion
		default:
		}

		waitGroup.Add(1)

		go func(linkIndex int, currentLink string) {
			defer waitGroup.Done()

			// Acquire semaphore slot (blocks if all workers are busy).
			semaphore <- struct{}{}

			defer func() {
				// Release semaphore slot when done.
				<-semaphore
			}()

			logger.Infof(ctx, "Downloading file: %s", currentLink)

			results[linkIndex] = s.downloadLink(ctx, currentLink)
		}(index, link)
	}

waitForCompletion:
	// Wait for all in-flight downloads to complete.
	waitGroup.Wait()
}

// downloadLink downloads a single file and updates statistics.
// Returns nil when the download failed.
func (s *ServiceImpl) downloadLink(ctx context.Context, link string) *downloadFileResult {
	fetchResult, err := s.pageClient.FetchFile(ctx, link)
	if err != nil {
		logger.Errorf(ctx, "Failed to fetch file '%s': %v", link, err)
		s.recordError(link, phaseFetchingFile, err)
		s.incrementFileFailed()

		return nil
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	result, err := s.saveFile(ctx, link, fetchResult)
	if err != nil {
		logger.Errorf(ctx, "Failed to save file '%s': %v", link, err)
		s.recordError(link, phaseSavingFile, err)
		s.incrementFileFailed()

		return nil
	}

	s.incrementFileDownloaded(result.BytesDownloaded)

	return result
}
