package core

import (
	"regexp"
	"strings"
)

// Mount lines authored for the original nested installer layout. The output
// directory is flat, so both "data" and ".." must become ".".
var (
	mountDataDir   = regexp.MustCompile(`(?i)mount c "data"`)
	mountParentDir = regexp.MustCompile(`(?i)mount c "\.\."`)
)

// RewriteRenderOutput switches the opengl render path to its non-bilinear
// variant for sharper pixel output. Matches the whole line only, never a
// substring elsewhere in the file. Idempotent.
func RewriteRenderOutput(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "output=opengl" {
			lines[i] = "output=openglnb"
		}
	}
	return strings.Join(lines, "\n")
}

// RewriteMountPaths corrects mount and path references for the flattened
// output layout: mount C "data" and mount C ".." become mount C ".", and any
// quoted path under data/ is re-rooted at ./. Idempotent: already-patched
// content matches none of the patterns.
func RewriteMountPaths(content string) string {
	content = mountDataDir.ReplaceAllString(content, `mount C "."`)
	content = mountParentDir.ReplaceAllString(content, `mount C "."`)
	content = strings.ReplaceAll(content, `"data/`, `"./`)
	return content
}

// RewriteCDImage redirects disc-image mounting from the non-audio-capable
// game.gog image to game.ins, which preserves CD audio tracks. The caller
// only applies this when game.ins actually exists in the output directory.
func RewriteCDImage(content string) string {
	return strings.ReplaceAll(content, "game.gog", "game.ins")
}
