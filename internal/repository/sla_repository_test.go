package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
)

func TestSLARepository_SeededPolicies(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	policies, err := repository.NewSLARepository(db).ListPolicies(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, policies, 2)
	assert.Equal(t, "first-response", policies[0].Name)
	assert.Equal(t, 30*time.Minute, policies[0].Target())
	assert.Equal(t, "same-day", policies[1].Name)
}

func TestSLARepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewRepository(db)

	setup := func(t *testing.T) (*models.Thread, *models.SlaPolicy) {
		cleanupTestData(db)
		contact := seedContact(t, db, "S", "+15552000", "")
		th, err := repo.Thread().GetOrCreate(ctx, contact.ID, models.ChannelSMS)
		require.NoError(t, err)
		policy := &models.SlaPolicy{Name: "fast", TargetMinutes: 15, Active: true}
		require.NoError(t, repo.SLA().CreatePolicy(ctx, policy))
		return th, policy
	}

	t.Run("ListPolicies filters inactive", func(t *testing.T) {
		_, active := setup(t)
		require.NoError(t, repo.SLA().CreatePolicy(ctx, &models.SlaPolicy{Name: "off", TargetMinutes: 60}))

		policies, err := repo.SLA().ListPolicies(ctx, true)
		require.NoError(t, err)
		require.Len(t, policies, 1)
		assert.Equal(t, active.ID, policies[0].ID)

		all, err := repo.SLA().ListPolicies(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("UpsertOpen keeps one open instance per policy", func(t *testing.T) {
		th, policy := setup(t)
		start := time.Now().UTC().Truncate(time.Second)

		first, err := repo.SLA().UpsertOpen(ctx, th.ID, policy.ID, start, start.Add(policy.Target()))
		require.NoError(t, err)
		second, err := repo.SLA().UpsertOpen(ctx, th.ID, policy.ID, start.Add(time.Minute), start.Add(time.Minute+policy.Target()))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.True(t, second.DueAt.Equal(start.Add(time.Minute+policy.Target())))

		slas, err := repo.SLA().ListByThread(ctx, th.ID)
		require.NoError(t, err)
		assert.Len(t, slas, 1)
	})

	t.Run("MarkMet only closes instances started before the reply", func(t *testing.T) {
		th, policy := setup(t)
		start := time.Now().UTC().Add(-10 * time.Minute)

		_, err := repo.SLA().UpsertOpen(ctx, th.ID, policy.ID, start, start.Add(policy.Target()))
		require.NoError(t, err)

		n, err := repo.SLA().MarkMet(ctx, th.ID, start.Add(-time.Minute))
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = repo.SLA().MarkMet(ctx, th.ID, start.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		slas, err := repo.SLA().ListByThread(ctx, th.ID)
		require.NoError(t, err)
		require.Len(t, slas, 1)
		assert.Equal(t, models.SlaStatusMet, slas[0].Status)
		assert.NotNil(t, slas[0].MetAt)

		// A met instance frees the slot for the next inbound.
		_, err = repo.SLA().UpsertOpen(ctx, th.ID, policy.ID, start.Add(2*time.Minute), start.Add(2*time.Minute+policy.Target()))
		require.NoError(t, err)
		slas, err = repo.SLA().ListByThread(ctx, th.ID)
		require.NoError(t, err)
		assert.Len(t, slas, 2)
	})

	t.Run("MarkBreached sweeps overdue instances", func(t *testing.T) {
		th, policy := setup(t)
		now := time.Now().UTC()

		_, err := repo.SLA().UpsertOpen(ctx, th.ID, policy.ID, now.Add(-time.Hour), now.Add(-45*time.Minute))
		require.NoError(t, err)

		n, err := repo.SLA().MarkBreached(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.SLA().MarkBreached(ctx, now)
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = repo.SLA().MarkMet(ctx, th.ID, now)
		require.NoError(t, err)
		assert.Zero(t, n)

		slas, err := repo.SLA().ListByThread(ctx, th.ID)
		require.NoError(t, err)
		require.Len(t, slas, 1)
		assert.Equal(t, models.SlaStatusBreached, slas[0].Status)
	})
}
