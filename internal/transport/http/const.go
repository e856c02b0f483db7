package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the fixed, identifying User-Agent string used for all outbound requests.
	DefaultUserAgent = "sfx-grabber/1.0 (+https://github.com/sfxgrab/sfx-grabber)"
)
