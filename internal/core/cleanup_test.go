package core_test

import (
	"path/filepath"
	"testing"

	"github.com/clipinski/gog-dosbox-setup/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanOutput_RemovesJunk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "TEMP01.$$$", "x")
	writeFile(t, dir, "XMMHAND.DAT", "x")
	writeFile(t, dir, "INSTALL.BAT", "x")
	writeFile(t, dir, "setup.bat", "x")
	writeFile(t, dir, "goggame-1207658733.hashdb", "x")
	writeFile(t, dir, "__support/app/dosbox.conf", "x")
	writeFile(t, dir, "DOSBOX/dosbox.exe", "x")
	writeFile(t, dir, "GAME.EXE", "keep me")
	writeFile(t, dir, "SOUND.CFG", "keep me")

	removed := core.CleanOutput(dir)
	assert.NotEmpty(t, removed)

	for _, name := range []string{"TEMP01.$$$", "XMMHAND.DAT", "INSTALL.BAT", "setup.bat", "goggame-1207658733.hashdb", "__support", "DOSBOX"} {
		assert.NoFileExists(t, filepath.Join(dir, name))
		assert.NoDirExists(t, filepath.Join(dir, name))
	}

	assert.FileExists(t, filepath.Join(dir, "GAME.EXE"))
	assert.FileExists(t, filepath.Join(dir, "SOUND.CFG"))
}

func TestCleanOutput_NothingToClean(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "GAME.EXE", "keep me")

	removed := core.CleanOutput(dir)
	assert.Empty(t, removed)
	assert.FileExists(t, filepath.Join(dir, "GAME.EXE"))
}

func TestCleanOutput_MissingDirIsNotAnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	require.NoDirExists(t, missing)

	// Best effort: no panic, no error surface
	removed := core.CleanOutput(missing)
	assert.Empty(t, removed)
}

func TestCleanOutput_DeepJunkIsLeftAlone(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "SAVES/AUTOEXEC.BAT", "game save data, not top level")

	core.CleanOutput(dir)
	assert.FileExists(t, filepath.Join(dir, "SAVES", "AUTOEXEC.BAT"))
}
