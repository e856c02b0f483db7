// Package app provides the main application logic for grabbing sound effects from a web page.
// It initializes the necessary components, such as the page client and link extractor,
// and orchestrates the grab pipeline.
package app
