package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fieldset/trailhead"
	"github.com/fieldset/trailhead/internal/logging"
	"github.com/fieldset/trailhead/pkg/adapters/file"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trailhead",
	Short: "Trailhead is a conditional branching engine for forms",
	Long:  `Trailhead loads a form definition and walks its branching logic: fill it out interactively, export the flow graph, validate the authoring, or serve it over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("form", "f", "form.yaml", "Path to the form definition (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// newEngine builds the engine from the --form flag, honoring a path
// given as the first positional argument.
func newEngine(cmd *cobra.Command, args []string, extra ...trailhead.Option) (*trailhead.Engine, error) {
	path, _ := cmd.Flags().GetString("form")
	if !cmd.Flags().Changed("form") && len(args) > 0 {
		path = args[0]
	}

	opts := append([]trailhead.Option{}, extra...)
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		opts = append(opts, trailhead.WithLogger(logging.New(slog.LevelDebug)))
	}

	eng, err := trailhead.New(file.NewLoader(path), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load form %q: %w", path, err)
	}
	return eng, nil
}
