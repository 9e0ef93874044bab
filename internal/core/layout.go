package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/clipinski/gog-dosbox-setup/internal/domain"
)

// linuxDataCandidates are the known game-data locations inside extracted
// Linux archives, probed in priority order; the first existing directory wins.
// Different installer builds use different internal layouts.
var linuxDataCandidates = []string{
	"data/noarch/game/data",
	"data/noarch/data",
	"data/noarch/game",
	"game/data",
	"game",
}

// linuxConfigRoot is where Linux builds keep their dosbox configs
const linuxConfigRoot = "data/noarch"

// windowsConfigRoot is where innoextract places the installer's config files
const windowsConfigRoot = "__support/app"

// LocateLayout finds the game-data directory and the config root inside the
// extracted tree. Failures include a bounded listing of the tree's top
// directories to aid diagnosis.
func LocateLayout(root string, kind domain.InstallerKind) (*domain.Layout, error) {
	switch kind {
	case domain.KindLinuxArchive:
		return locateLinuxLayout(root)
	case domain.KindWindowsPackage:
		return locateWindowsLayout(root)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedInstaller, kind)
	}
}

func locateLinuxLayout(root string) (*domain.Layout, error) {
	var gameData string
	for _, candidate := range linuxDataCandidates {
		path := filepath.Join(root, filepath.FromSlash(candidate))
		if dirExists(path) {
			gameData = path
			break
		}
	}
	if gameData == "" {
		return nil, fmt.Errorf("%w; extracted tree contains:\n%s",
			domain.ErrLayoutNotFound, strings.Join(listTopDirs(root, 2), "\n"))
	}

	configRoot := filepath.Join(root, filepath.FromSlash(linuxConfigRoot))
	if !dirExists(configRoot) {
		configRoot = filepath.Dir(gameData)
	}

	return &domain.Layout{GameData: gameData, ConfigRoot: configRoot}, nil
}

func locateWindowsLayout(root string) (*domain.Layout, error) {
	// innoextract lays game files flat at the extraction root
	configRoot := filepath.Join(root, filepath.FromSlash(windowsConfigRoot))
	if !dirExists(configRoot) {
		return nil, fmt.Errorf("%w: expected %s; extracted tree contains:\n%s",
			domain.ErrConfigRootMissing, windowsConfigRoot, strings.Join(listTopDirs(root, 2), "\n"))
	}
	return &domain.Layout{GameData: root, ConfigRoot: configRoot}, nil
}

// dirExists reports whether path exists and is a directory
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// listTopDirs returns the directories under root up to maxDepth levels deep,
// as slash-separated relative paths. Used only for error messages.
func listTopDirs(root string, maxDepth int) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		depth := strings.Count(rel, string(os.PathSeparator)) + 1
		if depth > maxDepth {
			return filepath.SkipDir
		}
		dirs = append(dirs, "  "+filepath.ToSlash(rel)+"/")
		return nil
	})
	if len(dirs) == 0 {
		dirs = append(dirs, "  (no directories)")
	}
	return dirs
}
