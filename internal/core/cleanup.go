package core

import (
	"os"
	"path/filepath"
	"strings"
)

// junkGlobs match leftover DOS-era temp files and installer batch files
var junkGlobs = []string{"TEMP*.$$$", "XMMHAND.DAT", "*.BAT", "*.bat"}

// CleanOutput removes known installer artifacts and junk files from the
// output tree. Best effort: absence is fine, removal failures are skipped,
// and the run never fails here. Returns the names of removed entries.
func CleanOutput(outputDir string) []string {
	var removed []string

	for _, pattern := range junkGlobs {
		matches, err := filepath.Glob(filepath.Join(outputDir, pattern))
		if err != nil {
			continue
		}
		for _, match := range matches {
			if os.Remove(match) == nil {
				removed = append(removed, filepath.Base(match))
			}
		}
	}

	for _, dir := range installerArtifactDirs {
		path := filepath.Join(outputDir, dir)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if os.RemoveAll(path) == nil {
			removed = append(removed, dir+"/")
		}
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return removed
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), installerMetaPrefix) {
			if os.RemoveAll(filepath.Join(outputDir, entry.Name())) == nil {
				removed = append(removed, entry.Name())
			}
		}
	}

	return removed
}
