package core

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/clipinski/gog-dosbox-setup/internal/domain"
)

// installerPrefix matches GOG installer filename prefixes like "gog_" or "setup_"
var installerPrefix = regexp.MustCompile(`(?i)^(gog_|setup_)`)

// Trailing version suffixes seen on GOG installer names, e.g.
// "_2.0.0.4", "_1_0_2" and "_2.1_(28043)"
var (
	versionDotted = regexp.MustCompile(`_\d+(\.\d+)+$`)
	versionUnder  = regexp.MustCompile(`(_\d+){2,}$`)
	versionBuild  = regexp.MustCompile(`_\d+\.\d+_\(\d+\)$`)
)

// langSuffix matches a trailing two-letter language segment ("_en", "_de", ...)
var langSuffix = regexp.MustCompile(`(?i)_(en|de|fr|es|it|pl|ru|pt|br|jp|ko|cn|zh)$`)

// Classify inspects the installer path and returns the classified Installer.
// The kind is chosen solely by filename suffix; anything other than .sh or
// .exe is an input error.
func Classify(path string) (*domain.Installer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving installer path: %w", err)
	}

	var kind domain.InstallerKind
	switch {
	case strings.HasSuffix(path, ".sh"):
		kind = domain.KindLinuxArchive
	case strings.HasSuffix(path, ".exe"):
		kind = domain.KindWindowsPackage
	default:
		return nil, fmt.Errorf("%w: %s (expected .sh or .exe)", domain.ErrUnsupportedInstaller, filepath.Base(path))
	}

	return &domain.Installer{
		Path: abs,
		Kind: kind,
		Name: DeriveOutputName(path),
	}, nil
}

// DeriveOutputName turns an installer filename like
// "gog_beneath_a_steel_sky_2.0.0.4.sh" into a PascalCase folder name like
// "BeneathASteelSky". Best-effort cosmetic transform: it never returns an
// empty string (falls back to the raw basename) and never fails.
func DeriveOutputName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	name = installerPrefix.ReplaceAllString(name, "")

	// Strip stacked version suffixes until stable
	for {
		stripped := versionBuild.ReplaceAllString(name, "")
		stripped = versionDotted.ReplaceAllString(stripped, "")
		stripped = versionUnder.ReplaceAllString(stripped, "")
		if stripped == name {
			break
		}
		name = stripped
	}

	for {
		stripped := langSuffix.ReplaceAllString(name, "")
		if stripped == name {
			break
		}
		name = stripped
	}

	var b strings.Builder
	for _, word := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == ' '
	}) {
		b.WriteString(titleWord(word))
	}

	if b.Len() == 0 {
		return base
	}
	return b.String()
}

// titleWord upper-cases the first rune and lower-cases the rest
func titleWord(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		if i == 0 {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}
