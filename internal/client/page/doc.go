// Package page provides an HTTP client for fetching web pages
// and streaming downloads of the files they link to.
// Page bodies are decoded to UTF-8 according to their declared charset,
// and all requests carry an identifying user agent and request logging.
package page
