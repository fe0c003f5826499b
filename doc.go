/*
Package trailhead is a conditional branching engine for form flows: given an
ordered question list, per-question branch rules, and the answers collected so
far, it decides which question comes next and projects the anticipated path
through the form for progress display.

# Concept

A form is a directed graph authored by humans: each question carries an ordered
if/else-if chain of branch rules plus a tri-state default (not configured,
explicit end, or an explicit jump). Trailhead treats that graph as untrusted
input — dangling targets, backward jumps and cycles all degrade to a bounded,
best-effort answer instead of an error, because the engine runs inside
interactive render loops where stalling or throwing is strictly worse than a
truncated path.

# Usage

Load a form through any ports.FormLoader (memory and file adapters are
provided), then query the engine:

	package main

	import (
		"fmt"
		"log"

		"github.com/fieldset/trailhead"
		"github.com/fieldset/trailhead/pkg/adapters/memory"
		"github.com/fieldset/trailhead/pkg/domain"
	)

	func main() {
		loader := memory.NewLoader([]domain.Question{
			{
				ID:      "color",
				Type:    domain.TypeDropdown,
				Title:   "Favorite color?",
				Options: []string{"Red", "Blue"},
				Rules: []domain.BranchRule{{
					ID: "r1",
					Condition: domain.Condition{
						Source:   "color",
						Operator: domain.OpEquals,
						Value:    domain.ScalarValue("Red"),
					},
					Target: domain.GoTo("extra"),
				}},
			},
			{ID: "why", Type: domain.TypeShortText, Title: "Why blue?"},
			{ID: "extra", Type: domain.TypeShortText, Title: "Anything else?"},
		})

		eng, err := trailhead.New(loader)
		if err != nil {
			log.Fatal(err)
		}

		answers := domain.Answers{"color": "Red"}
		next := eng.Next("color", answers)          // GoTo("extra")
		path := eng.Path(answers)                   // [color extra]
		pos, total := eng.Progress("extra", answers) // 2, 2

		fmt.Println(next, len(path), pos, total)
	}

Every operation is synchronous and side-effect free over the immutable loaded
form, so an Engine may be shared freely across goroutines.
*/
package trailhead
