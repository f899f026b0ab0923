package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
)

func TestContactAndCallRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewRepository(db)

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})

	t.Run("GetByPhone and SetSMSOptOutByPhone", func(t *testing.T) {
		cleanupTestData(db)
		seeded := seedContact(t, db, "Cara", "+15554000", "")
		shared := seedContact(t, db, "Cara Work", "+15554000", "")
		other := seedContact(t, db, "Bo", "+15554999", "")

		got, err := repo.Contact().GetByPhone(ctx, "+15554000")
		require.NoError(t, err)
		assert.Contains(t, []string{seeded.ID, shared.ID}, got.ID)
		assert.False(t, got.SMSOptOut)

		n, err := repo.Contact().SetSMSOptOutByPhone(ctx, "+15554000", true)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		for _, id := range []string{seeded.ID, shared.ID} {
			got, err = repo.Contact().GetByID(ctx, id)
			require.NoError(t, err)
			assert.True(t, got.SMSOptOut, id)
		}
		got, err = repo.Contact().GetByID(ctx, other.ID)
		require.NoError(t, err)
		assert.False(t, got.SMSOptOut)

		n, err = repo.Contact().SetSMSOptOutByPhone(ctx, "+15554000", true)
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = repo.Contact().SetSMSOptOutByPhone(ctx, "+19999999", true)
		require.NoError(t, err)
		assert.Zero(t, n)

		_, err = repo.Contact().GetByPhone(ctx, "+19999999")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("call log status updates", func(t *testing.T) {
		cleanupTestData(db)
		contact := seedContact(t, db, "Dee", "+15554001", "")
		th, err := repo.Thread().GetOrCreate(ctx, contact.ID, models.ChannelVoice)
		require.NoError(t, err)

		call := &models.CallLog{ContactID: contact.ID, ThreadID: &th.ID, ProviderCallID: "call-1", Status: "initiated"}
		require.NoError(t, repo.Call().Create(ctx, call))
		assert.NotEmpty(t, call.ID)

		updated, err := repo.Call().UpdateStatus(ctx, "call-1", "completed")
		require.NoError(t, err)
		assert.Equal(t, "completed", updated.Status)
		assert.Equal(t, call.ID, updated.ID)

		_, err = repo.Call().UpdateStatus(ctx, "call-x", "completed")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
