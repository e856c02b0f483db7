package page

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/net/html/charset"

	"github.com/sfxgrab/sfx-grabber/internal/config"
	http_transport "github.com/sfxgrab/sfx-grabber/internal/transport/http"
	"github.com/sfxgrab/sfx-grabber/internal/utils"
)

// Client defines the interface for fetching web pages and the files they link to.
type Client interface {
	// FetchPage retrieves the page at the specified URL and returns its body as UTF-8 text.
	FetchPage(ctx context.Context, pageURL string) (string, error)
	// FetchFile opens a streaming download of the file at the specified URL.
	FetchFile(ctx context.Context, fileURL string) (*FetchFileResult, error)
}

// ClientImpl implements the Client interface over a plain HTTP client.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

// FetchFileResult contains the streaming body of a file download.
type FetchFileResult struct {
	// Body is the file content stream. The caller must close it.
	Body io.ReadCloser
	// TotalBytes is the total size of the file, or -1 when unknown.
	TotalBytes int64
}

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
)

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config) Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = http_transport.DefaultUserAgent
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	// Initialize the HTTP client with custom transport and timeout.
	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(userAgent)),
		Timeout: timeout,
	}

	return &ClientImpl{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// FetchPage retrieves the page at the specified URL and returns its body as UTF-8 text.
// The body is decoded according to the charset declared in the Content-Type header,
// falling back to detection when none is declared.
func (c *ClientImpl) FetchPage(ctx context.Context, pageURL string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	bodyReader, err := charset.NewReader(response.Body, response.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to decode page body: %w", err)
	}

	body, err := io.ReadAll(bodyReader)
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}

	return string(body), nil
}

// FetchFile opens a streaming download of the file at the specified URL.
func (c *ClientImpl) FetchFile(ctx context.Context, fileURL string) (*FetchFileResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:gosec // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &FetchFileResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}
