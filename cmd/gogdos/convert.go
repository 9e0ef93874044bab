package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clipinski/gog-dosbox-setup/internal/core"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <installer> [output-dir]",
	Short: "Convert a GOG installer into a playable directory",
	Long: `Convert a GOG DOS game installer into a portable directory playable with a
locally installed DOSBox.

Supported installers are the Linux .sh archive and the Windows .exe package
(the latter requires innoextract on PATH). When no output directory is given,
a PascalCase name derived from the installer filename is used.

Top-level game entries that share a name with an installer-internal directory
(for example "tmp") are dropped on the Windows path; rename them beforehand
if a game genuinely ships one.

Examples:
  gogdos convert gog_beneath_a_steel_sky_2.0.0.4.sh
  gogdos convert setup_ultima_vii_2.1.0.16.exe UltimaVII
  gogdos convert --verbose gog_tyrian_2000_1.0.0.4.sh ~/Games/Tyrian2000`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	installerPath := args[0]
	if _, err := os.Stat(installerPath); err != nil {
		return fmt.Errorf("installer file not found: %s", installerPath)
	}

	installer, err := core.Classify(installerPath)
	if err != nil {
		return err
	}

	outputDir := ""
	if len(args) == 2 {
		outputDir = args[1]
	}

	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	// An interrupt cancels the running extraction tool and unwinds through
	// the pipeline, so the scratch tree is removed before exit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := service.Convert(ctx, installer, outputDir)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("%s %s (%s)\n", renderStyled(successStyle, "✓ Converted:"), result.OutputDir, formatSize(result.SizeBytes))
	fmt.Println(renderStyled(dimStyle, fmt.Sprintf("Next: cd %q && ./%s", result.OutputDir, core.LauncherFileName)))

	return nil
}
