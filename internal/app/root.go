package app

import (
	"context"

	page_client "github.com/sfxgrab/sfx-grabber/internal/client/page"
	"github.com/sfxgrab/sfx-grabber/internal/config"
	"github.com/sfxgrab/sfx-grabber/internal/logger"
	sfx_service "github.com/sfxgrab/sfx-grabber/internal/service/sfx"
)

// ExecuteRootCommand is the entry point for the application.
// It initializes the page client and the grab service, runs the grab pipeline,
// and returns any fatal error so the caller can set the exit code.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config) error {
	pageClient := page_client.NewClient(cfg)
	linkExtractor := sfx_service.NewLinkExtractor()

	s := sfx_service.NewService(cfg, pageClient, linkExtractor)

	// Ensure statistics are ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintDownloadSummary(ctx)
	}()

	return s.Run(ctx)
}
