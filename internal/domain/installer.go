package domain

import "time"

// InstallerKind identifies the container format of a GOG installer
type InstallerKind int

const (
	KindUnknown        InstallerKind = iota
	KindLinuxArchive                 // .sh self-extracting shell stub with appended ZIP payload
	KindWindowsPackage               // .exe Inno Setup package
)

func (k InstallerKind) String() string {
	switch k {
	case KindLinuxArchive:
		return "linux"
	case KindWindowsPackage:
		return "windows"
	default:
		return "unknown"
	}
}

// ParseInstallerKind converts a string (as stored in the database) to InstallerKind
func ParseInstallerKind(s string) InstallerKind {
	switch s {
	case "linux":
		return KindLinuxArchive
	case "windows":
		return KindWindowsPackage
	default:
		return KindUnknown
	}
}

// Installer is the classified input file. Immutable once built.
type Installer struct {
	Path string        // Absolute path to the installer file
	Kind InstallerKind // Detected container format
	Name string        // Derived default output name (PascalCase)
}

// Layout holds the directories located inside the extracted tree
type Layout struct {
	GameData   string // Directory holding the game asset files
	ConfigRoot string // Directory searched for emulator configuration files
}

// CandidateConfig is one configuration file found in the config root,
// with its capability flags computed once at scan time.
type CandidateConfig struct {
	Path               string
	HasDisplaySection  bool // File contains the [sdl] section header
	HasStartupCommands bool // [autoexec] section has at least one non-blank, non-comment line
}

// ResolvedConfigs is the outcome of config resolution. Autoexec is
// required for a conversion to proceed; Settings is optional.
type ResolvedConfigs struct {
	Settings *CandidateConfig
	Autoexec *CandidateConfig
}

// Conversion records one completed installer conversion in the library
type Conversion struct {
	ID            int64
	Name          string
	Kind          InstallerKind
	InstallerPath string
	OutputPath    string
	SizeBytes     int64
	CreatedAt     time.Time
}
