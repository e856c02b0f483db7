package sfx

//go:generate $MOCKGEN -source=extractor.go -destination=mocks/extractor_mock.go

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/sfxgrab/sfx-grabber/internal/constants"
	"github.com/sfxgrab/sfx-grabber/internal/logger"
	"github.com/sfxgrab/sfx-grabber/internal/utils"
)

// LinkExtractor defines the interface for finding audio file links in page markup.
type LinkExtractor interface {
	// ExtractLinks scans the page content and returns deduplicated absolute audio
	// file URLs in lexicographic order.
	ExtractLinks(ctx context.Context, pageContent, pageURL string) ([]string, error)
}

// LinkExtractorImpl implements the LinkExtractor interface using lexical pattern matching.
// Links are matched anywhere in the markup, including commented-out and scripted references.
type LinkExtractorImpl struct{}

// linkAttributes are the markup attributes scanned for audio file references.
const linkAttributes = `href|src|data-url|data-href|data-src|data-mp3|data-ogg`

// Compiled patterns shared across extractions.
//
//nolint:gochecknoglobals,lll // This is a justified global variable: immutable data, performance optimization, and reusability.
var (
	audioExtensionAlternatives = strings.Join(
		utils.Map(constants.AudioExtensions, func(ext string) string {
			return strings.TrimPrefix(ext, ".")
		}),
		"|")

	attributeLinkPattern = regexp.MustCompile(
		`(?i)(?:` + linkAttributes + `)\s*=\s*["']([^"']+\.(?:` + audioExtensionAlternatives + `)(?:\?[^"']*)?)["']`)

	bareLinkPattern = regexp.MustCompile(
		`(?i)https?://[^"'\s<>]+\.(?:` + audioExtensionAlternatives + `)(?:\?[^"'\s<>]*)?`)
)

// NewLinkExtractor creates and returns a new instance of LinkExtractorImpl.
func NewLinkExtractor() LinkExtractor {
	return &LinkExtractorImpl{}
}

// ExtractLinks scans the page content and returns deduplicated absolute audio
// file URLs in lexicographic order.
func (e *LinkExtractorImpl) ExtractLinks(ctx context.Context, pageContent, pageURL string) ([]string, error) {
	baseURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPageURL, err)
	}

	candidates := make([]string, 0)

	for _, match := range attributeLinkPattern.FindAllStringSubmatch(pageContent, -1) {
		candidates = append(candidates, match[1])
	}

	candidates = append(candidates, bareLinkPattern.FindAllString(pageContent, -1)...)

	links := make(map[string]struct{}, len(candidates))

	for _, candidate := range candidates {
		resolvedURL, resolveErr := baseURL.Parse(candidate)
		if resolveErr != nil {
			logger.Debugf(ctx, "Skipping unparsable link '%s': %v", candidate, resolveErr)

			continue
		}

		scheme := strings.ToLower(resolvedURL.Scheme)
		if scheme != "http" && scheme != "https" {
			logger.Debugf(ctx, "Skipping link with unsupported scheme: %s", resolvedURL)

			continue
		}

		links[resolvedURL.String()] = struct{}{}
	}

	var sorted []string
	for link := range links {
		sorted = append(sorted, link)
	}
	slices.Sort(sorted)

	return sorted, nil
}
