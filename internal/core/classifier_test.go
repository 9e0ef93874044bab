package core_test

import (
	"testing"

	"github.com/clipinski/gog-dosbox-setup/internal/core"
	"github.com/clipinski/gog-dosbox-setup/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_LinuxArchive(t *testing.T) {
	installer, err := core.Classify("gog_beneath_a_steel_sky_2.0.0.4.sh")
	require.NoError(t, err)

	assert.Equal(t, domain.KindLinuxArchive, installer.Kind)
	assert.Equal(t, "BeneathASteelSky", installer.Name)
}

func TestClassify_WindowsPackage(t *testing.T) {
	installer, err := core.Classify("setup_tyrian_2000_1.0.0.4.exe")
	require.NoError(t, err)

	assert.Equal(t, domain.KindWindowsPackage, installer.Kind)
	assert.Equal(t, "Tyrian2000", installer.Name)
}

func TestClassify_UnsupportedExtension(t *testing.T) {
	_, err := core.Classify("some_game.zip")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedInstaller)
}

func TestClassify_CaseSensitiveSuffix(t *testing.T) {
	// Suffix match is case-sensitive; .SH is not a supported installer
	_, err := core.Classify("gog_game.SH")
	assert.ErrorIs(t, err, domain.ErrUnsupportedInstaller)
}

func TestDeriveOutputName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"gog prefix with dotted version", "gog_beneath_a_steel_sky_2.0.0.4.sh", "BeneathASteelSky"},
		{"setup prefix with dotted version", "setup_ultima_vii_2.1.0.16.exe", "UltimaVii"},
		{"underscore version", "gog_lure_of_the_temptress_1_1_0.sh", "LureOfTheTemptress"},
		{"build number version", "setup_tyrian_2000_2.1_(28043).exe", "Tyrian2000"},
		{"language suffix", "setup_gobliiins_en_2.1.0.8.exe", "Gobliiins"},
		{"language suffix without version", "gog_the_clue_de.sh", "TheClue"},
		{"no prefix", "teenagent_1.0.0.2.sh", "Teenagent"},
		{"uppercase prefix", "GOG_Flight_Of_The_Amazon_Queen_1.0.0.3.sh", "FlightOfTheAmazonQueen"},
		{"digits kept in title", "gog_tyrian_2000_1.0.0.4.sh", "Tyrian2000"},
		{"path is ignored", "/downloads/gog_toonstruck_1.0.0.6.sh", "Toonstruck"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.DeriveOutputName(tt.filename))
		})
	}
}

func TestDeriveOutputName_NeverEmpty(t *testing.T) {
	// Nothing left after stripping: fall back to the raw basename
	assert.Equal(t, "gog_.sh", core.DeriveOutputName("gog_.sh"))
	assert.Equal(t, "gog__.sh", core.DeriveOutputName("gog__.sh"))
}

func TestDeriveOutputName_UnexpectedCharacters(t *testing.T) {
	// Best-effort transform must not fail on odd input
	assert.NotEmpty(t, core.DeriveOutputName("gog_école_führer_1.0.0.1.sh"))
	assert.NotEmpty(t, core.DeriveOutputName("...sh"))
}
