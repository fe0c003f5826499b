package trailhead

import (
	"fmt"
	"log/slog"

	"github.com/fieldset/trailhead/internal/logging"
	"github.com/fieldset/trailhead/internal/runtime"
	"github.com/fieldset/trailhead/pkg/domain"
	"github.com/fieldset/trailhead/pkg/observability"
	"github.com/fieldset/trailhead/pkg/ports"
)

// Engine is the high-level entry point for the Trailhead library.
// It loads a form once through a ports.FormLoader, builds the traversal
// core over it, and exposes the branching operations a form player and
// an authoring UI consume.
//
// The loaded form is immutable; every method is a pure read and safe
// for concurrent use. When the authoring side changes the form, build
// a new Engine.
type Engine struct {
	core    *runtime.Engine
	loader  ports.FormLoader
	logger  *slog.Logger
	metrics *observability.Metrics
	start   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics wires Prometheus instrumentation into the engine.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithStartQuestion overrides the projection start (default: the first
// question in the list).
func WithStartQuestion(id string) Option {
	return func(e *Engine) {
		e.start = id
	}
}

// New initializes an Engine from the loader's current form revision.
func New(loader ports.FormLoader, opts ...Option) (*Engine, error) {
	if loader == nil {
		return nil, fmt.Errorf("a form loader is required")
	}

	eng := &Engine{loader: loader}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	questions, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load form: %w", err)
	}

	eng.core = runtime.NewEngine(questions)
	eng.logger.Debug("form loaded",
		"questions", eng.core.Len(),
		"revision", loader.Version(),
	)
	return eng, nil
}

// Questions returns the ordered question list.
func (e *Engine) Questions() []domain.Question {
	return e.core.Questions()
}

// Question looks up a single question by ID.
func (e *Engine) Question(id string) (domain.Question, error) {
	q, ok := e.core.Question(id)
	if !ok {
		return domain.Question{}, fmt.Errorf("%w: %s", domain.ErrQuestionNotFound, id)
	}
	return q, nil
}

// Next resolves the question to show after questionID under the given
// answers. The result is always End or a concrete target; an unknown
// questionID resolves to End. The target ID is not checked against the
// list here — a form player treats a dangling target as end-of-form.
func (e *Engine) Next(questionID string, answers domain.Answers) domain.NextRef {
	next := e.core.ResolveID(questionID, answers)
	e.metrics.ObserveResolution()
	e.logger.Debug("resolved next question", "from", questionID, "to", next.String())
	return next
}

// Path projects the anticipated traversal under the given answers,
// starting from the configured start question.
func (e *Engine) Path(answers domain.Answers) []domain.Question {
	return e.PathFrom(e.start, answers)
}

// PathFrom projects the anticipated traversal from an explicit start
// cursor. An empty startID means the first question.
func (e *Engine) PathFrom(startID string, answers domain.Answers) []domain.Question {
	proj := e.core.ProjectTrace(answers, startID)
	e.metrics.ObserveProjection(len(proj.Path))
	if proj.Cycle {
		e.metrics.ObserveCycle()
		e.logger.Warn("projection stopped on a cycle", "start", startID, "visited", len(proj.Path))
	}
	return proj.Path
}

// Progress locates currentID on the projected path and returns its
// 1-based position together with the path length, for percent-complete
// display. A question that does not lie on the path reports position
// zero; callers render that as indeterminate progress.
func (e *Engine) Progress(currentID string, answers domain.Answers) (position, total int) {
	path := e.PathFrom(e.start, answers)
	for i, q := range path {
		if q.ID == currentID {
			return i + 1, len(path)
		}
	}
	return 0, len(path)
}

// ConditionSources lists the questions eligible as condition sources
// for the rules of questionID: earlier questions with enumerable
// answers. Used by authoring UIs to populate the rule editor.
func (e *Engine) ConditionSources(questionID string) []domain.Question {
	q, ok := e.core.Question(questionID)
	if !ok {
		return nil
	}
	return e.core.ConditionSources(q)
}

// BranchTargets lists the questions eligible as branch targets for
// questionID: everything after it in the list.
func (e *Engine) BranchTargets(questionID string) []domain.Question {
	q, ok := e.core.Question(questionID)
	if !ok {
		return nil
	}
	return e.core.BranchTargets(q)
}

// ValuesFor enumerates the discrete answers questionID can produce,
// for use as condition values.
func (e *Engine) ValuesFor(questionID string) []string {
	q, ok := e.core.Question(questionID)
	if !ok {
		return nil
	}
	return runtime.ValuesFor(q)
}

// Inspect returns the full question list for visualization and
// introspection tools.
func (e *Engine) Inspect() []domain.Question {
	return e.core.Questions()
}

// Loader returns the underlying FormLoader used by the engine.
func (e *Engine) Loader() ports.FormLoader {
	return e.loader
}
