package ports

import (
	"context"

	"github.com/fieldset/trailhead/pkg/domain"
)

// ResponseStore persists in-progress answer sets keyed by session ID,
// so a respondent can leave and resume a form. Implementations must
// return domain.ErrSessionNotFound for unknown sessions.
type ResponseStore interface {
	Save(ctx context.Context, sessionID string, answers domain.Answers) error
	Load(ctx context.Context, sessionID string) (domain.Answers, error)
	Delete(ctx context.Context, sessionID string) error

	// List returns the known session IDs in lexical order.
	List(ctx context.Context) ([]string, error)
}
