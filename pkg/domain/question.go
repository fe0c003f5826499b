package domain

// QuestionType identifies the input widget and, for the branching
// engine, the shape of the answer a question can produce.
type QuestionType string

const (
	// TypeDropdown presents a single-select list of options.
	TypeDropdown QuestionType = "dropdown"
	// TypeMultipleChoice presents a single-select radio group.
	TypeMultipleChoice QuestionType = "multiple_choice"
	// TypeCheckboxes presents a multi-select group; answers are lists.
	TypeCheckboxes QuestionType = "checkboxes"
	// TypeYesNo is a boolean-like question answered "Yes" or "No".
	TypeYesNo QuestionType = "yes_no"
	// TypeRating is a bounded numeric scale, 1..5 by default.
	TypeRating QuestionType = "rating"
	// TypeScale is a bounded numeric scale, 1..10 by default.
	TypeScale QuestionType = "scale"
	// TypeShortText is a free-form single-line input.
	TypeShortText QuestionType = "short_text"
	// TypeLongText is a free-form multi-line input.
	TypeLongText QuestionType = "long_text"
)

// Default bounds for the numeric scale types when Min/Max are zero.
const (
	RatingDefaultMin = 1
	RatingDefaultMax = 5
	ScaleDefaultMin  = 1
	ScaleDefaultMax  = 10
)

// Conditionable reports whether answers of this type have a small
// enumerable value space and may therefore serve as condition sources.
// Free-form text types are excluded: their answers cannot be offered
// as a pick-list in an authoring UI.
func (t QuestionType) Conditionable() bool {
	switch t {
	case TypeDropdown, TypeMultipleChoice, TypeCheckboxes, TypeYesNo, TypeRating, TypeScale:
		return true
	}
	return false
}

// Choice reports whether the type carries an explicit option list.
func (t QuestionType) Choice() bool {
	switch t {
	case TypeDropdown, TypeMultipleChoice, TypeCheckboxes:
		return true
	}
	return false
}

// Question is a single step in a form flow.
//
// Questions are authored and mutated elsewhere; the engine only reads
// them. IDs are opaque and must be unique within a form. By convention
// a rule's condition source precedes the owning question and branch
// targets follow it, but the runtime tolerates violations of both.
type Question struct {
	ID    string       `json:"id" yaml:"id"`
	Type  QuestionType `json:"type" yaml:"type"`
	Title string       `json:"title" yaml:"title"`

	// Options holds the selectable values for choice-like types.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`

	// Min and Max bound the numeric scale types. Zero means "use the
	// default for the type" (1..5 for rating, 1..10 for scale).
	Min int `json:"min,omitempty" yaml:"min,omitempty"`
	Max int `json:"max,omitempty" yaml:"max,omitempty"`

	// Rules is the ordered if/else-if chain evaluated by the resolver.
	Rules []BranchRule `json:"rules,omitempty" yaml:"rules,omitempty"`

	// DefaultNext applies when no rule matches. Its zero value means
	// "not configured": fall back to list order.
	DefaultNext NextRef `json:"default_next,omitempty" yaml:"default_next,omitempty"`
}
