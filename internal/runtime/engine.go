package runtime

import "github.com/fieldset/trailhead/pkg/domain"

// Engine holds one immutable form as an index-addressed arena: the
// ordered question list plus an id-to-index map for O(1) lookup. The
// graph is author-entered and may contain dangling targets, backward
// references and cycles; the arena makes all of those cheap to detect
// without linked references.
//
// An Engine is read-only after construction and safe for concurrent
// use from any number of goroutines.
type Engine struct {
	questions []domain.Question
	index     map[string]int
}

// NewEngine builds the arena for an ordered question list. When two
// questions share an ID (an authoring mistake), the first occurrence
// wins, matching the behavior of a scan-from-the-front lookup.
func NewEngine(questions []domain.Question) *Engine {
	qs := make([]domain.Question, len(questions))
	copy(qs, questions)

	index := make(map[string]int, len(qs))
	for i, q := range qs {
		if _, exists := index[q.ID]; !exists {
			index[q.ID] = i
		}
	}
	return &Engine{questions: qs, index: index}
}

// Len returns the number of questions in the form.
func (e *Engine) Len() int { return len(e.questions) }

// Questions returns a copy of the ordered question list.
func (e *Engine) Questions() []domain.Question {
	out := make([]domain.Question, len(e.questions))
	copy(out, e.questions)
	return out
}

// Question returns the question with the given ID.
func (e *Engine) Question(id string) (domain.Question, bool) {
	i, ok := e.index[id]
	if !ok {
		return domain.Question{}, false
	}
	return e.questions[i], true
}

// Resolve picks the next target for a question under the given
// answers. Precedence, first match wins:
//
//  1. the question's branch rules in declared order — the first rule
//     whose condition holds contributes its target (possibly End);
//  2. an explicitly configured default-next (End or a specific ID);
//  3. structural order — the question that follows in the list, or
//     End when the question is last or absent from the list.
//
// The returned reference is always End or GoTo, never unset. Dangling
// target IDs pass through untouched; the projector and callers decide
// what a target that resolves to nothing means.
func (e *Engine) Resolve(q domain.Question, answers domain.Answers) domain.NextRef {
	for _, rule := range q.Rules {
		if !Evaluate(rule.Condition, answers) {
			continue
		}
		if !rule.Target.IsConfigured() {
			// Half-authored rule with no target: ignored rather than
			// treated as End, so the chain keeps its if/else-if shape.
			continue
		}
		return rule.Target
	}

	if q.DefaultNext.IsConfigured() {
		return q.DefaultNext
	}

	i, ok := e.index[q.ID]
	if !ok || i+1 >= len(e.questions) {
		return domain.End
	}
	return domain.GoTo(e.questions[i+1].ID)
}

// ResolveID is Resolve addressed by question ID. An unknown ID
// resolves to End.
func (e *Engine) ResolveID(id string, answers domain.Answers) domain.NextRef {
	q, ok := e.Question(id)
	if !ok {
		return domain.End
	}
	return e.Resolve(q, answers)
}

// Project simulates the traversal from startID (or the first question
// when startID is empty) and returns the anticipated path. It stops on
// the explicit end, on a revisited ID (cycle), on an ID that matches
// no question, or after 2×len(list) iterations.
//
// The cap is a bounded safety limit, not a proof about graph shapes:
// each iteration visits at most one new ID, so either the visited set
// or the counter terminates the loop in O(list length) work. The
// result is the longest well-formed prefix built before any stop
// condition — good enough for a progress bar that must render
// instantly over malformed author-entered graphs.
func (e *Engine) Project(answers domain.Answers, startID string) []domain.Question {
	return e.ProjectTrace(answers, startID).Path
}

// Projection is the outcome of one projector run: the path plus
// whether a cycle cut it short.
type Projection struct {
	Path  []domain.Question
	Cycle bool
}

// ProjectTrace is Project with the cycle flag exposed, for callers
// that report on malformed graphs (metrics, validation tooling).
func (e *Engine) ProjectTrace(answers domain.Answers, startID string) Projection {
	proj := Projection{Path: make([]domain.Question, 0, len(e.questions))}
	if len(e.questions) == 0 {
		return proj
	}

	cursor := startID
	if cursor == "" {
		cursor = e.questions[0].ID
	}

	visited := make(map[string]bool, len(e.questions))
	next := domain.GoTo(cursor)

	for steps := 0; steps < 2*len(e.questions); steps++ {
		id, ok := next.Target()
		if !ok {
			break // explicit end
		}
		if visited[id] {
			proj.Cycle = true
			break
		}
		q, ok := e.Question(id)
		if !ok {
			break // dangling reference
		}
		visited[id] = true
		proj.Path = append(proj.Path, q)
		next = e.Resolve(q, answers)
	}
	return proj
}
