package repository_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
)

func TestOutboxRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewOutboxRepository(db)

	newItem := func(t *testing.T) *models.OutboxItem {
		contact := seedContact(t, db, "O", "", "o@example.com")
		item := &models.OutboxItem{
			Channel:   models.ChannelEmail,
			ContactID: contact.ID,
			ToAddress: "o@example.com",
			Subject:   strPtr("Welcome"),
			Body:      "Hello O",
			Locale:    "en",
			MergeVars: models.Vars{"first_name": "O"},
		}
		require.NoError(t, repo.Create(ctx, item))
		return item
	}

	t.Run("Create and ListPending", func(t *testing.T) {
		cleanupTestData(db)
		first := newItem(t)
		second := newItem(t)

		pending, err := repo.ListPending(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, first.ID, pending[0].ID)
		assert.Equal(t, second.ID, pending[1].ID)
		assert.Equal(t, "O", pending[0].MergeVars["first_name"])

		page, err := repo.ListPending(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, second.ID, page[0].ID)
	})

	t.Run("Claim then MarkSent", func(t *testing.T) {
		cleanupTestData(db)
		item := newItem(t)
		now := time.Now().UTC()

		claimed, err := repo.Claim(ctx, item.ID, "reviewer-1", now)
		require.NoError(t, err)
		assert.Equal(t, models.OutboxStatusSending, claimed.Status)
		require.NotNil(t, claimed.ReviewerUserID)
		assert.Equal(t, "reviewer-1", *claimed.ReviewerUserID)

		sent, err := repo.MarkSent(ctx, item.ID, "prov-42", now)
		require.NoError(t, err)
		assert.Equal(t, models.OutboxStatusSent, sent.Status)
		require.NotNil(t, sent.ProviderMessageID)
		assert.Equal(t, "prov-42", *sent.ProviderMessageID)
		assert.NotNil(t, sent.SentAt)

		pending, err := repo.ListPending(ctx, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("Claim then MarkFailed", func(t *testing.T) {
		cleanupTestData(db)
		item := newItem(t)

		_, err := repo.Claim(ctx, item.ID, "reviewer-1", time.Now())
		require.NoError(t, err)

		failed, err := repo.MarkFailed(ctx, item.ID, "gateway down")
		require.NoError(t, err)
		assert.Equal(t, models.OutboxStatusFailed, failed.Status)
		require.NotNil(t, failed.Error)
		assert.Equal(t, "gateway down", *failed.Error)
	})

	t.Run("only one concurrent claim wins", func(t *testing.T) {
		cleanupTestData(db)
		item := newItem(t)

		var wins, conflicts int32
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Claim(ctx, item.ID, "reviewer", time.Now())
				switch {
				case err == nil:
					atomic.AddInt32(&wins, 1)
				case assert.ErrorIs(t, err, apperrors.ErrConflict):
					atomic.AddInt32(&conflicts, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins)
		assert.Equal(t, int32(7), conflicts)
	})

	t.Run("Reject guards status", func(t *testing.T) {
		cleanupTestData(db)
		item := newItem(t)

		rejected, err := repo.Reject(ctx, item.ID, "reviewer-2", "tone", time.Now())
		require.NoError(t, err)
		assert.Equal(t, models.OutboxStatusRejected, rejected.Status)
		require.NotNil(t, rejected.Error)
		assert.Equal(t, "tone", *rejected.Error)

		_, err = repo.Claim(ctx, item.ID, "reviewer-1", time.Now())
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		_, err = repo.Reject(ctx, item.ID, "reviewer-2", "again", time.Now())
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		_, err = repo.MarkSent(ctx, item.ID, "p", time.Now())
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		_, err = repo.Reject(ctx, "missing", "r", "x", time.Now())
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
