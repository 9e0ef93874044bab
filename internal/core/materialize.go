package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clipinski/gog-dosbox-setup/internal/domain"
)

// installerArtifactDirs are installer-internal top-level entries that must
// not end up in the output directory (Windows packages only)
var installerArtifactDirs = []string{"__support", "__redist", "DOSBOX", "app", "commonappdata", "tmp"}

// installerMetaPrefix marks GOG installer metadata files
const installerMetaPrefix = "goggame-"

// Materializer assembles the output directory from the located layout and
// the resolved configs
type Materializer struct {
	OutputDir string
	Kind      domain.InstallerKind
	Emulators []string // launcher probe order, baked in at generation time
}

// MaterializeResult reports what was produced, for the final summary and
// for non-fatal warnings
type MaterializeResult struct {
	HasSettings     bool
	GameConfigFiles int // game-specific *.CFG files copied (Windows only)
}

// Run copies the game data, copies and patches the resolved configs, and
// writes the generated display override and launcher. The output directory
// path is fixed before this point and is never re-derived.
func (m *Materializer) Run(layout *domain.Layout, configs *domain.ResolvedConfigs) (*MaterializeResult, error) {
	var exclude func(name string, isDir bool) bool
	if m.Kind == domain.KindWindowsPackage {
		exclude = excludeInstallerArtifact
	}
	if err := copyTree(layout.GameData, m.OutputDir, exclude); err != nil {
		return nil, fmt.Errorf("copying game data: %w", err)
	}

	result := &MaterializeResult{HasSettings: configs.Settings != nil}

	if configs.Settings != nil {
		if err := m.writeSettings(configs.Settings.Path); err != nil {
			return nil, err
		}
	}
	if err := m.writeAutoexec(configs.Autoexec.Path); err != nil {
		return nil, err
	}

	if m.Kind == domain.KindWindowsPackage {
		copied, err := m.copyGameConfigs(layout.ConfigRoot)
		if err != nil {
			return nil, err
		}
		result.GameConfigFiles = copied
	}

	displayPath := filepath.Join(m.OutputDir, DisplayFileName)
	if err := os.WriteFile(displayPath, []byte(displayConf), 0644); err != nil {
		return nil, fmt.Errorf("writing display override: %w", err)
	}

	launcher := generateLauncher(result.HasSettings, m.Emulators)
	launcherPath := filepath.Join(m.OutputDir, LauncherFileName)
	if err := os.WriteFile(launcherPath, []byte(launcher), 0755); err != nil {
		return nil, fmt.Errorf("writing launcher: %w", err)
	}

	return result, nil
}

// writeSettings copies the settings config under its fixed output name,
// switching an opengl render line to its non-bilinear variant
func (m *Materializer) writeSettings(srcPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading settings config: %w", err)
	}
	content := RewriteRenderOutput(string(data))

	dst := filepath.Join(m.OutputDir, SettingsFileName)
	if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing settings config: %w", err)
	}
	return nil
}

// writeAutoexec copies the autoexec config under its fixed output name,
// redirecting disc mounts to the CD-audio image when one was copied over and
// fixing mount paths for the flattened layout
func (m *Materializer) writeAutoexec(srcPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading autoexec config: %w", err)
	}
	content := string(data)

	if strings.Contains(content, "game.gog") && fileExists(filepath.Join(m.OutputDir, "game.ins")) {
		content = RewriteCDImage(content)
	}
	content = RewriteMountPaths(content)

	dst := filepath.Join(m.OutputDir, AutoexecFileName)
	if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing autoexec config: %w", err)
	}
	return nil
}

// copyGameConfigs copies game-specific *.CFG files (audio device settings
// and the like) from the config root. Emulator-level dosbox* files are
// skipped; they are covered by the settings/autoexec pair.
func (m *Materializer) copyGameConfigs(configRoot string) (int, error) {
	var copied int
	for _, pattern := range []string{"*.CFG", "*.cfg"} {
		matches, err := filepath.Glob(filepath.Join(configRoot, pattern))
		if err != nil {
			return copied, fmt.Errorf("scanning game configs: %w", err)
		}
		for _, match := range matches {
			name := filepath.Base(match)
			if strings.HasPrefix(name, "dosbox") {
				continue
			}
			if err := copyFile(match, filepath.Join(m.OutputDir, name)); err != nil {
				return copied, fmt.Errorf("copying game config %s: %w", name, err)
			}
			copied++
		}
	}
	return copied, nil
}

// excludeInstallerArtifact rejects top-level entries that belong to the
// installer rather than the game. Matches by exact name, so a game directory
// that happens to share a denylisted name is dropped too; known limitation.
func excludeInstallerArtifact(name string, isDir bool) bool {
	for _, dir := range installerArtifactDirs {
		if name == dir {
			return true
		}
	}
	if strings.HasPrefix(name, installerMetaPrefix) {
		return true
	}
	if !isDir && strings.HasSuffix(name, ".bin") {
		return true
	}
	return false
}
