package core

import "strings"

// Generated artifact names in the output directory
const (
	SettingsFileName = "dosbox_settings.conf"
	AutoexecFileName = "dosbox_autoexec.conf"
	DisplayFileName  = "display.conf"
	LauncherFileName = "play.sh"
)

// displayConf is loaded last by the launcher to force windowed output, a
// non-bilinear render path and simple 2x pixel doubling with aspect
// correction.
const displayConf = `[sdl]
fullscreen=false
windowresolution=1280x800
output=openglnb

[render]
aspect=true
scaler=normal2x
`

// generateLauncher builds the play.sh content. The config list is decided
// here, at generation time: the settings config is only referenced when one
// was found. At run time the script changes into its own directory and execs
// the first emulator candidate found on PATH.
func generateLauncher(withSettings bool, emulators []string) string {
	confs := "-conf " + AutoexecFileName + " -conf " + DisplayFileName
	if withSettings {
		confs = "-conf " + SettingsFileName + " " + confs
	}
	names := strings.Join(emulators, " ")

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("# Launches the game with a locally installed DOSBox.\n")
	b.WriteString("cd \"$(dirname \"$0\")\" || exit 1\n")
	b.WriteString("\n")
	b.WriteString("for candidate in " + names + "; do\n")
	b.WriteString("    if command -v \"$candidate\" >/dev/null 2>&1; then\n")
	b.WriteString("        exec \"$candidate\" " + confs + "\n")
	b.WriteString("    fi\n")
	b.WriteString("done\n")
	b.WriteString("\n")
	b.WriteString("echo \"Error: no DOSBox executable found (tried: " + names + ")\" >&2\n")
	b.WriteString("exit 1\n")
	return b.String()
}
