package sfx

import (
	"os"
	"time"
)

const (
	// File options for overwriting an existing file.
	overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY

	// File options for creating a new file (fails if the file already exists).
	createNewFileOptions = os.O_CREATE | os.O_EXCL | os.O_WRONLY

	// defaultFilenameBase is used when a link's URL path yields no usable filename.
	defaultFilenameBase = "audio"
)

// Download phases for error reporting.
const (
	phaseFetchingFile = "fetching file"
	phaseSavingFile   = "saving file"
)

// DownloadStatistics tracks metrics for a grab session.
type DownloadStatistics struct {
	// StartTime is when the grab session began.
	StartTime time.Time
	// EndTime is when the grab session completed.
	EndTime time.Time
	// IsDryRun indicates if this was a dry-run preview.
	IsDryRun bool
	// LinksDiscovered is the number of unique audio file links found on the page.
	LinksDiscovered int64
	// FilesDownloaded is the number of files successfully downloaded.
	FilesDownloaded int64
	// FilesFailed is the number of files that failed to download.
	FilesFailed int64
	// TotalBytesDownloaded is the total size of downloaded content in bytes.
	TotalBytesDownloaded int64
	// ManifestPath is the path of the written manifest, empty when none was written.
	ManifestPath string
	// Errors is a list of all errors encountered during the grab session.
	Errors []DownloadError
}

// DownloadError represents a single error that occurred during download.
type DownloadError struct {
	// URL is the audio file link that failed.
	URL string
	// Phase indicates when the error occurred (e.g., "fetching file", "saving file").
	Phase string
	// ErrorMessage is the error message.
	ErrorMessage string
}

// Manifest describes the result of a grab session on disk.
type Manifest struct {
	// SourcePage is the URL of the scanned page.
	SourcePage string `json:"source_page"`
	// FileCount is the number of downloaded files listed in the manifest.
	FileCount int `json:"file_count"`
	// Files lists the downloaded files.
	Files []ManifestEntry `json:"files"`
}

// ManifestEntry describes a single downloaded file.
type ManifestEntry struct {
	// Filename is the file's name within the output directory.
	Filename string `json:"filename"`
	// RelativePath is the file's path relative to the manifest's own directory.
	RelativePath string `json:"relative_path"`
	// SourceURL is the URL of the page the file was discovered on.
	SourceURL string `json:"source_url"`
}

// downloadFileResult contains the result of a single file download.
type downloadFileResult struct {
	// Filename is the final name the file was saved under.
	Filename string
	// BytesDownloaded is the number of bytes successfully downloaded.
	BytesDownloaded int64
}
