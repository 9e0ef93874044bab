package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clipinski/gog-dosbox-setup/internal/domain"
)

const (
	// displaySectionHeader marks the emulator's SDL/display settings section
	displaySectionHeader = "[sdl]"
	// startupSectionHeader marks the startup-commands section
	startupSectionHeader = "[autoexec]"
)

// configGlobs are scanned in order over the config root's immediate entries.
// filepath.Glob returns lexicographic order, so the scan is deterministic
// regardless of how the filesystem enumerates entries.
var configGlobs = []string{"dosbox*.conf", "*.conf"}

// ResolveConfigs scans the config root for dosbox configuration files and
// picks the settings config (optional, last file seen carrying the display
// section wins) and the autoexec config (required).
//
// A file with a non-empty startup section becomes the autoexec config when
// none is chosen yet, or when its name contains "single" -- configs written
// for single-session launch override a generic candidate even if scanned
// later.
func ResolveConfigs(configRoot string) (*domain.ResolvedConfigs, error) {
	files, err := globConfigs(configRoot)
	if err != nil {
		return nil, err
	}

	resolved := &domain.ResolvedConfigs{}
	for _, path := range files {
		lines, err := readLines(path)
		if err != nil {
			continue
		}
		cand := &domain.CandidateConfig{
			Path:               path,
			HasDisplaySection:  hasSectionHeader(lines, displaySectionHeader),
			HasStartupCommands: len(startupCommands(lines)) > 0,
		}

		if cand.HasDisplaySection {
			resolved.Settings = cand
		}
		if cand.HasStartupCommands {
			if strings.Contains(filepath.Base(path), "single") || resolved.Autoexec == nil {
				resolved.Autoexec = cand
			}
		}
	}

	// Fallback: accept a file that merely carries the startup section
	// header, even if every command line under it is blank or a comment.
	if resolved.Autoexec == nil {
		for _, path := range files {
			lines, err := readLines(path)
			if err != nil {
				continue
			}
			if hasSectionHeader(lines, startupSectionHeader) {
				resolved.Autoexec = &domain.CandidateConfig{Path: path}
				break
			}
		}
	}

	if resolved.Autoexec == nil {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoAutoexecConfig, configRoot)
	}
	return resolved, nil
}

// globConfigs returns the candidate config files for each glob set in scan
// order. A file matching both sets appears twice; re-seeing a file cannot
// change the outcome, and the duplicate keeps the fallback order faithful.
func globConfigs(configRoot string) ([]string, error) {
	var files []string
	for _, pattern := range configGlobs {
		matches, err := filepath.Glob(filepath.Join(configRoot, pattern))
		if err != nil {
			return nil, fmt.Errorf("scanning config root: %w", err)
		}
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && !info.IsDir() {
				files = append(files, match)
			}
		}
	}
	return files, nil
}

// readLines reads a file and splits it into lines
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

// splitLines splits on \n, tolerating \r\n line endings
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// hasSectionHeader reports whether any line is exactly the given header
func hasSectionHeader(lines []string, header string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == header {
			return true
		}
	}
	return false
}

// startupCommands returns the lines of the startup section that are actual
// commands: everything from the [autoexec] header to end of file, minus the
// header itself, blank lines and # comments. Empty result means the file has
// no usable startup section.
func startupCommands(lines []string) []string {
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == startupSectionHeader {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var commands []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		commands = append(commands, line)
	}
	return commands
}
