package main

import (
	"fmt"
	"strings"

	"github.com/fieldset/trailhead"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trailhead",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trailhead version %s\n", strings.TrimSpace(trailhead.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
