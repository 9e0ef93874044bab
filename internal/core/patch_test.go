package core_test

import (
	"testing"

	"github.com/clipinski/gog-dosbox-setup/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestRewriteRenderOutput(t *testing.T) {
	in := "[sdl]\nfullscreen=false\noutput=opengl\n"
	out := core.RewriteRenderOutput(in)
	assert.Equal(t, "[sdl]\nfullscreen=false\noutput=openglnb\n", out)
}

func TestRewriteRenderOutput_FullLineOnly(t *testing.T) {
	// Substrings elsewhere must be left alone
	in := "# output=opengl is the default\nwindowresolution=opengl_special\n"
	assert.Equal(t, in, core.RewriteRenderOutput(in))
}

func TestRewriteRenderOutput_Idempotent(t *testing.T) {
	once := core.RewriteRenderOutput("output=opengl\n")
	twice := core.RewriteRenderOutput(once)
	assert.Equal(t, once, twice)
	assert.Contains(t, once, "output=openglnb")
}

func TestRewriteMountPaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase drive letter", `mount c "data"`, `mount C "."`},
		{"uppercase drive letter", `mount C "data"`, `mount C "."`},
		{"parent dir mount", `mount C ".."`, `mount C "."`},
		{"data subpath", `imgmount d "data/SOUND"`, `imgmount d "./SOUND"`},
		{"already patched", `mount C "."`, `mount C "."`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.RewriteMountPaths(tt.in))
		})
	}
}

func TestRewriteMountPaths_Idempotent(t *testing.T) {
	in := "mount c \"data\"\nmount C \"..\"\nimgmount d \"data/game.gog\" -t iso\n"
	once := core.RewriteMountPaths(in)
	assert.Equal(t, once, core.RewriteMountPaths(once))
}

func TestRewriteCDImage(t *testing.T) {
	in := `imgmount d "./game.gog" -t iso`
	out := core.RewriteCDImage(in)
	assert.Equal(t, `imgmount d "./game.ins" -t iso`, out)
	assert.NotContains(t, out, "game.gog")
}

func TestRewriteCDImage_Idempotent(t *testing.T) {
	once := core.RewriteCDImage(`imgmount d "./game.gog"`)
	assert.Equal(t, once, core.RewriteCDImage(once))
}
