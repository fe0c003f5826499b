package tests

import (
	"context"
	"testing"
	"time"

	"github.com/fieldset/trailhead/pkg/domain"
	"github.com/fieldset/trailhead/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResponseStoreContract verifies that a ResponseStore implementation
// adheres to the interface contract. Adapter test suites call this
// against their concrete backend.
func RunResponseStoreContract(t *testing.T, store ports.ResponseStore) {
	ctx := context.Background()
	sessionID := "contract-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		answers := domain.Answers{
			"color":  "Red",
			"topics": []any{"price", "support"},
		}

		require.NoError(t, store.Save(ctx, sessionID, answers))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "Red", loaded["color"])
		// JSON-backed stores decode lists as []any; only require the
		// elements to survive canonically.
		v, ok := loaded.Lookup("topics")
		require.True(t, ok)
		assert.True(t, v.IsList())
		assert.Equal(t, []string{"price", "support"}, v.Values())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, domain.Answers{"q": "a"}))
		require.NoError(t, store.Delete(ctx, sessionID))

		_, err := store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		require.NoError(t, store.Save(ctx, id1, domain.Answers{}))
		require.NoError(t, store.Save(ctx, id2, domain.Answers{}))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
