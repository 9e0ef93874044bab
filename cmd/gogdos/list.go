package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List previously converted games",
	Long: `List the games recorded in the conversion library, newest first.

Examples:
  gogdos list`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	conversions, err := service.ListConversions()
	if err != nil {
		return fmt.Errorf("reading conversion library: %w", err)
	}

	if len(conversions) == 0 {
		fmt.Println("No conversions recorded.")
		fmt.Println("\nUse 'gogdos convert <installer>' to convert a game.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tOUTPUT\tSIZE\tDATE")
	fmt.Fprintln(w, "----\t----\t------\t----\t----")

	for _, c := range conversions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.Name,
			c.Kind,
			truncate(c.OutputPath, 40),
			formatSize(c.SizeBytes),
			c.CreatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d conversion(s)\n", len(conversions))

	return nil
}
