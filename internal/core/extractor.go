package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/clipinski/gog-dosbox-setup/internal/domain"
)

// Extractor invokes external extraction tools against installer files.
// The tools are opaque collaborators: the run blocks until they return and
// only their exit status and captured output are inspected.
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ToolFor returns the external command used for the given installer kind
func (e *Extractor) ToolFor(kind domain.InstallerKind) string {
	switch kind {
	case domain.KindLinuxArchive:
		return "unzip"
	case domain.KindWindowsPackage:
		return "innoextract"
	default:
		return ""
	}
}

// CheckTool verifies the extraction tool for the given kind is on PATH.
// Returns an environment error with an install hint when it is missing.
func (e *Extractor) CheckTool(kind domain.InstallerKind) error {
	tool := e.ToolFor(kind)
	if tool == "" {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedInstaller, kind)
	}
	if _, err := exec.LookPath(tool); err != nil {
		return fmt.Errorf("%w: %s (install it with your package manager, e.g. 'apt install %s')",
			domain.ErrToolMissing, tool, tool)
	}
	return nil
}

// Extract unpacks the installer into destDir, creating it first.
// Either the directory is usable afterwards or an error is returned;
// there are no partial-success semantics.
func (e *Extractor) Extract(ctx context.Context, installer *domain.Installer, destDir string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating extraction directory: %w", err)
	}

	switch installer.Kind {
	case domain.KindLinuxArchive:
		return e.extractZipPayload(ctx, installer.Path, destDir)
	case domain.KindWindowsPackage:
		return e.extractInnoPackage(ctx, installer.Path, destDir)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedInstaller, installer.Kind)
	}
}

// extractZipPayload extracts the ZIP payload appended to the .sh stub with
// the system unzip command. unzip skips the leading non-ZIP stub bytes and
// exits 1 when it only had warnings (extra bytes at the start), so both
// status 0 and 1 count as success.
func (e *Extractor) extractZipPayload(ctx context.Context, archivePath, destDir string) error {
	cmd := exec.CommandContext(ctx, "unzip", "-o", archivePath, "-d", destDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil
		}
		return fmt.Errorf("%w: unzip: %v\nOutput: %s", domain.ErrExtractionFailed, err, output)
	}
	return nil
}

// extractInnoPackage extracts the Inno Setup payload of the .exe installer
// with innoextract, skipping the low-level installer internals. Only exit
// status 0 is success.
func (e *Extractor) extractInnoPackage(ctx context.Context, archivePath, destDir string) error {
	// -g: extract GOG installers; -d: output directory
	cmd := exec.CommandContext(ctx, "innoextract", "-g", "-d", destDir, archivePath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: innoextract: %v\nOutput: %s", domain.ErrExtractionFailed, err, output)
	}
	return nil
}
