package sfx

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sfxgrab/sfx-grabber/internal/constants"
)

// WriteManifest writes a JSON manifest describing the downloaded files.
// Entries keep the order in which the files were downloaded.
func WriteManifest(manifestPath, sourcePage string, entries []ManifestEntry) error {
	manifest := Manifest{
		SourcePage: sourcePage,
		FileCount:  len(entries),
		Files:      entries,
	}

	content, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	content = append(content, '\n')

	err = os.WriteFile(filepath.Clean(manifestPath), content, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
