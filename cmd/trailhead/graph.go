package main

import (
	"fmt"
	"os"

	"github.com/fieldset/trailhead/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [form]",
	Short: "Export the branching graph visualization",
	Long:  `Inspects the form and outputs a Mermaid diagram (graph TD) of its questions, rules and fallthrough edges.`,
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := newEngine(cmd, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(eng.Inspect(), nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
