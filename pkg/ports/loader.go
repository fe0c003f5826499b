package ports

import "github.com/fieldset/trailhead/pkg/domain"

// FormLoader supplies the ordered question list the engine traverses.
// This decouples the engine from where forms are authored and stored
// (files, memory, an authoring service).
type FormLoader interface {
	// Load returns the ordered question list. Implementations return
	// the questions as authored; the engine tolerates dangling IDs,
	// cycles and backward references, so loaders do not validate.
	Load() ([]domain.Question, error)

	// Version identifies the loaded revision for logs and caching.
	// Loaders without a meaningful revision return a constant.
	Version() string
}
