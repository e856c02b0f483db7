package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	// Owner: read, write, and execute;
	// Group: read and execute;
	// Others: read and execute.
	DefaultFolderPermissions os.FileMode = 0o755
)

const (
	// ExtensionMP3 is the fallback extension applied to files whose URL carries no recognized one.
	ExtensionMP3 = ".mp3"

	// ManifestFilename is the name of the manifest file written next to the downloaded files.
	ManifestFilename = "manifest.json"
)

// AudioExtensions lists the recognized audio file extensions, lowercase with leading dot.
// Extension matching throughout the application is case-insensitive.
//
//nolint:gochecknoglobals // This is an immutable list used as a constant.
var AudioExtensions = []string{".mp3", ".wav", ".ogg", ".flac", ".aac", ".m4a"}
