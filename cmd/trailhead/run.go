package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fieldset/trailhead"
	"github.com/fieldset/trailhead/internal/presentation/tui"
	"github.com/fieldset/trailhead/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [form]",
	Short: "Fill out the form interactively",
	Long:  `Walks the form question by question, resolving each next step from the answers given so far and showing progress along the anticipated path.`,
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := newEngine(cmd, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		jsonMode, _ := cmd.Flags().GetBool("json")
		if err := runInteractive(eng, jsonMode); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Print the collected answers as JSON instead of a summary")
}

func runInteractive(eng *trailhead.Engine, jsonMode bool) error {
	questions := eng.Questions()
	if len(questions) == 0 {
		return fmt.Errorf("the form has no questions")
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive && !jsonMode {
		tui.PrintBanner()
	}

	render := tui.NewRenderer()
	reader := bufio.NewReader(os.Stdin)
	answers := domain.Answers{}
	current := questions[0].ID

	for current != "" {
		q, err := eng.Question(current)
		if err != nil {
			// A rule jumped to a question that no longer exists; the
			// player treats that as end-of-form.
			break
		}

		if !jsonMode {
			pos, total := eng.Progress(current, answers)
			if pos > 0 {
				fmt.Printf("[%d/%d]\n", pos, total)
			}
			out, rerr := render("## " + q.Title)
			if rerr != nil {
				out = q.Title + "\n"
			}
			fmt.Print(out)
		}

		answer, err := promptAnswer(eng, q, reader, jsonMode)
		if err != nil {
			return err
		}
		if answer != nil {
			answers[q.ID] = answer
		}

		next := eng.Next(current, answers)
		if next.IsEnd() {
			break
		}
		current, _ = next.Target()
	}

	return printAnswers(answers, jsonMode)
}

// promptAnswer reads one answer, mapping numeric input onto the
// question's enumerated values when it has any.
func promptAnswer(eng *trailhead.Engine, q domain.Question, reader *bufio.Reader, jsonMode bool) (any, error) {
	values := eng.ValuesFor(q.ID)
	if !jsonMode && len(values) > 0 {
		for i, v := range values {
			fmt.Printf("  %d) %s\n", i+1, v)
		}
		if q.Type == domain.TypeCheckboxes {
			fmt.Println("  (comma-separate multiple choices)")
		}
	}

	fmt.Print("> ")
	text, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read answer: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		// Skipped question; the resolver treats it as unanswered.
		return nil, nil
	}

	if q.Type == domain.TypeCheckboxes {
		parts := strings.Split(text, ",")
		picked := make([]string, 0, len(parts))
		for _, p := range parts {
			picked = append(picked, pickValue(strings.TrimSpace(p), values))
		}
		return picked, nil
	}
	return pickValue(text, values), nil
}

// pickValue resolves "2" to the second enumerated value; anything else
// passes through verbatim.
func pickValue(input string, values []string) string {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(values) {
		return values[n-1]
	}
	return input
}

func printAnswers(answers domain.Answers, jsonMode bool) error {
	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(answers)
	}

	fmt.Println("\n--- Answers ---")
	for id, v := range answers {
		fmt.Printf("%s: %v\n", id, v)
	}
	return nil
}
