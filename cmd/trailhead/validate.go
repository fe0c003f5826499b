package main

import (
	"fmt"
	"os"

	"github.com/fieldset/trailhead/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [form]",
	Short: "Check the form's branching for authoring mistakes",
	Long:  `Reports dangling targets, unknown condition sources, backward jumps and unreachable questions. The engine tolerates all of these at runtime; this command exists so authors can fix them anyway.`,
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := newEngine(cmd, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		report := validator.Check(eng.Questions())
		fmt.Println(report.String())
		if report.HasErrors() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
