package core

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/clipinski/gog-dosbox-setup/internal/domain"
	"github.com/clipinski/gog-dosbox-setup/internal/storage/config"
	"github.com/clipinski/gog-dosbox-setup/internal/storage/db"
)

// ServiceConfig holds configuration for the core service
type ServiceConfig struct {
	ConfigDir string    // Directory for the user config file
	DataDir   string    // Directory for the conversion library database
	Out       io.Writer // Progress destination (default os.Stdout)
	Verbose   bool      // Per-file progress
}

// Service is the orchestrator for installer conversions
type Service struct {
	config    *config.Config
	db        *db.DB
	extractor *Extractor
	out       io.Writer
	verbose   bool
}

// NewService creates a new core service instance
func NewService(cfg ServiceConfig) (*Service, error) {
	appConfig, err := config.Load(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "gogdos.db")
	database, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Service{
		config:    appConfig,
		db:        database,
		extractor: NewExtractor(),
		out:       out,
		verbose:   cfg.Verbose,
	}, nil
}

// Close releases resources held by the service
func (s *Service) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Emulators returns the launcher probe order, configured or default
func (s *Service) Emulators() []string {
	if len(s.config.Emulators) > 0 {
		return s.config.Emulators
	}
	return config.DefaultEmulators()
}

// OutputDirFor returns the output directory for an installer when the caller
// did not supply one: the derived name under the configured output root
func (s *Service) OutputDirFor(installer *domain.Installer) string {
	root := s.config.OutputRoot
	if root == "" {
		root = "."
	}
	return filepath.Join(root, installer.Name)
}

// ListConversions returns the recorded conversion library, newest first
func (s *Service) ListConversions() ([]domain.Conversion, error) {
	return s.db.ListConversions()
}

// ConvertResult summarizes a completed conversion
type ConvertResult struct {
	OutputDir       string
	SizeBytes       int64
	HasSettings     bool
	GameConfigFiles int
	Cleaned         []string
}

// Convert runs the conversion pipeline: check tools, extract into a scratch
// tree, locate the layout, resolve configs, materialize the output directory
// and clean it up. The first failing stage aborts the run; the scratch tree
// is removed on every exit path.
func (s *Service) Convert(ctx context.Context, installer *domain.Installer, outputDir string) (*ConvertResult, error) {
	if err := s.extractor.CheckTool(installer.Kind); err != nil {
		return nil, err
	}

	// Fixed for the remainder of the run, never re-derived after extraction
	if outputDir == "" {
		outputDir = s.OutputDirFor(installer)
	}

	scratch, err := NewScratchTree()
	if err != nil {
		return nil, err
	}
	defer scratch.Remove()

	s.stepf("Extracting %s (%s installer)", filepath.Base(installer.Path), installer.Kind)
	extractDir := scratch.Join("extracted")
	if err := s.extractor.Extract(ctx, installer, extractDir); err != nil {
		return nil, err
	}

	s.stepf("Locating game data")
	layout, err := LocateLayout(extractDir, installer.Kind)
	if err != nil {
		return nil, err
	}
	if s.verbose {
		s.infof("game data: %s", layout.GameData)
		s.infof("config root: %s", layout.ConfigRoot)
	}

	s.stepf("Resolving dosbox configuration")
	configs, err := ResolveConfigs(layout.ConfigRoot)
	if err != nil {
		return nil, err
	}
	if configs.Settings == nil {
		s.warnf("no display settings config found; emulator defaults will be used")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.stepf("Copying game files to %s", outputDir)
	mat := &Materializer{
		OutputDir: outputDir,
		Kind:      installer.Kind,
		Emulators: s.Emulators(),
	}
	matResult, err := mat.Run(layout, configs)
	if err != nil {
		return nil, err
	}
	if installer.Kind == domain.KindWindowsPackage && matResult.GameConfigFiles == 0 {
		s.warnf("no game-specific config files found")
	}

	s.stepf("Cleaning up installer artifacts")
	cleaned := CleanOutput(outputDir)
	if len(cleaned) == 0 {
		s.infof("nothing to clean up")
	} else if s.verbose {
		for _, name := range cleaned {
			s.infof("removed %s", name)
		}
	}

	result := &ConvertResult{
		OutputDir:       outputDir,
		SizeBytes:       dirSize(outputDir),
		HasSettings:     matResult.HasSettings,
		GameConfigFiles: matResult.GameConfigFiles,
		Cleaned:         cleaned,
	}

	if err := s.db.SaveConversion(&domain.Conversion{
		Name:          installer.Name,
		Kind:          installer.Kind,
		InstallerPath: installer.Path,
		OutputPath:    outputDir,
		SizeBytes:     result.SizeBytes,
	}); err != nil {
		s.warnf("recording conversion: %v", err)
	}

	return result, nil
}

func (s *Service) stepf(format string, args ...any) {
	fmt.Fprintf(s.out, "==> "+format+"\n", args...)
}

func (s *Service) infof(format string, args ...any) {
	fmt.Fprintf(s.out, "    "+format+"\n", args...)
}

func (s *Service) warnf(format string, args ...any) {
	fmt.Fprintf(s.out, "  ⚠ "+format+"\n", args...)
}

// dirSize sums the sizes of all regular files under root
func dirSize(root string) int64 {
	var total int64
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
