// Package tests provides reusable contract suites for driven-port
// adapters.
package tests

import (
	"testing"

	"github.com/fieldset/trailhead/pkg/ports"
)

// FormLoaderContractTest verifies that an adapter complies with
// ports.FormLoader. Callers pass a loader together with the question
// IDs it is expected to produce, in authoring order.
func FormLoaderContractTest(t *testing.T, loader ports.FormLoader, wantIDs []string) {
	t.Helper()

	t.Run("Load_Order", func(t *testing.T) {
		questions, err := loader.Load()
		if err != nil {
			t.Fatalf("unexpected error loading form: %v", err)
		}
		if len(questions) != len(wantIDs) {
			t.Fatalf("got %d questions, want %d", len(questions), len(wantIDs))
		}
		for i, id := range wantIDs {
			if questions[i].ID != id {
				t.Errorf("question %d: got %q, want %q", i, questions[i].ID, id)
			}
		}
	})

	t.Run("Load_Stable", func(t *testing.T) {
		first, err := loader.Load()
		if err != nil {
			t.Fatalf("unexpected error loading form: %v", err)
		}
		second, err := loader.Load()
		if err != nil {
			t.Fatalf("unexpected error reloading form: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("reload changed question count: %d vs %d", len(first), len(second))
		}
	})

	t.Run("Version_NonEmpty", func(t *testing.T) {
		if loader.Version() == "" {
			t.Error("expected a non-empty version after Load")
		}
	})
}
