package domain

import "errors"

var (
	ErrUnsupportedInstaller = errors.New("unsupported installer type")
	ErrToolMissing          = errors.New("required extraction tool not found")
	ErrExtractionFailed     = errors.New("extraction failed")
	ErrLayoutNotFound       = errors.New("game data directory not found in extracted tree")
	ErrConfigRootMissing    = errors.New("config directory not found in extracted tree")
	ErrNoAutoexecConfig     = errors.New("no autoexec-capable configuration found")
)
