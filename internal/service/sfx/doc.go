// Package sfx provides the core functionality for grabbing sound effects from a web page.
// It extracts audio file links from page markup, downloads the referenced files
// into an output directory, and records the results in a JSON manifest.
package sfx
