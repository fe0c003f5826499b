// Package memory provides in-memory implementations of the ports:
// a FormLoader over a question slice and a ResponseStore guarded by a
// mutex. Both exist primarily for tests and embedded use, where a form
// definition already lives in the host process.
package memory

import (
	"fmt"

	"github.com/fieldset/trailhead/pkg/domain"
)

// Loader implements ports.FormLoader over a question slice.
type Loader struct {
	questions []domain.Question
	version   string
}

// NewLoader wraps an ordered question list. The slice is copied so
// later mutations by the caller do not leak into the engine.
func NewLoader(questions []domain.Question) *Loader {
	qs := make([]domain.Question, len(questions))
	copy(qs, questions)
	return &Loader{questions: qs, version: "memory"}
}

// WithVersion labels the revision reported by Version. Handy when the
// host rebuilds engines from changing authoring state.
func (l *Loader) WithVersion(v string) *Loader {
	l.version = v
	return l
}

// Load returns the question list.
func (l *Loader) Load() ([]domain.Question, error) {
	out := make([]domain.Question, len(l.questions))
	copy(out, l.questions)
	return out, nil
}

// Version identifies the loaded revision.
func (l *Loader) Version() string { return l.version }

// Validate is a convenience check for test fixtures: it fails on an
// empty ID so a typo'd fixture surfaces early instead of degrading
// silently at traversal time.
func (l *Loader) Validate() error {
	seen := make(map[string]bool, len(l.questions))
	for _, q := range l.questions {
		if q.ID == "" {
			return fmt.Errorf("question missing ID")
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question ID: %s", q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}
