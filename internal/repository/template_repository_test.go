package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
)

func TestTemplateRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewTemplateRepository(db)

	create := func(t *testing.T, name string) *models.Template {
		tpl := &models.Template{Name: name, Channel: models.ChannelEmail, Kind: models.TemplateKindManual, IsActive: true}
		require.NoError(t, repo.Create(ctx, tpl))
		return tpl
	}

	t.Run("Create, List and Deactivate", func(t *testing.T) {
		cleanupTestData(db)
		a := create(t, "alpha")
		b := create(t, "beta")

		require.NoError(t, repo.Deactivate(ctx, b.ID))

		active, err := repo.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, a.ID, active[0].ID)

		all, err := repo.List(ctx, true)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		assert.ErrorIs(t, repo.Deactivate(ctx, "missing"), apperrors.ErrNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		cleanupTestData(db)
		tpl := create(t, "old")

		tpl.Name = "new"
		tpl.Body = strPtr("Hi {{.first_name}}")
		require.NoError(t, repo.Update(ctx, tpl))

		got, err := repo.GetByID(ctx, tpl.ID)
		require.NoError(t, err)
		assert.Equal(t, "new", got.Name)
		require.NotNil(t, got.Body)
		assert.Equal(t, "Hi {{.first_name}}", *got.Body)

		missing := &models.Template{ID: "missing", Name: "x", Channel: models.ChannelSMS, Kind: models.TemplateKindManual}
		assert.ErrorIs(t, repo.Update(ctx, missing), apperrors.ErrNotFound)
	})

	t.Run("CreateVersion numbers per locale", func(t *testing.T) {
		cleanupTestData(db)
		tpl := create(t, "versions")

		tests := []struct {
			locale  string
			version int
		}{
			{"en", 1},
			{"en", 2},
			{"es", 1},
			{"en", 3},
		}
		for _, tt := range tests {
			v := &models.TemplateVersion{TemplateID: tpl.ID, Locale: tt.locale, Body: "body"}
			require.NoError(t, repo.CreateVersion(ctx, v))
			assert.Equal(t, tt.version, v.Version)
			assert.Equal(t, models.VersionStatusDraft, v.Status)
		}

		versions, err := repo.ListVersions(ctx, tpl.ID)
		require.NoError(t, err)
		assert.Len(t, versions, 4)

		err = repo.CreateVersion(ctx, &models.TemplateVersion{TemplateID: "missing", Locale: "en", Body: "b"})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("ApproveVersion is one-way", func(t *testing.T) {
		cleanupTestData(db)
		tpl := create(t, "approve")
		v := &models.TemplateVersion{TemplateID: tpl.ID, Locale: "en", Body: "body"}
		require.NoError(t, repo.CreateVersion(ctx, v))

		approved, err := repo.ApproveVersion(ctx, v.ID, time.Now())
		require.NoError(t, err)
		assert.Equal(t, models.VersionStatusApproved, approved.Status)
		assert.NotNil(t, approved.ApprovedAt)

		_, err = repo.ApproveVersion(ctx, v.ID, time.Now())
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		_, err = repo.ApproveVersion(ctx, "missing", time.Now())
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Find lookups", func(t *testing.T) {
		cleanupTestData(db)
		tpl := create(t, "find")

		none, err := repo.FindLatestVersion(ctx, tpl.ID)
		require.NoError(t, err)
		assert.Nil(t, none)

		en1 := &models.TemplateVersion{TemplateID: tpl.ID, Locale: "en", Body: "en v1"}
		require.NoError(t, repo.CreateVersion(ctx, en1))
		en2 := &models.TemplateVersion{TemplateID: tpl.ID, Locale: "en", Body: "en v2"}
		require.NoError(t, repo.CreateVersion(ctx, en2))
		fr1 := &models.TemplateVersion{TemplateID: tpl.ID, Locale: "fr", Body: "fr v1"}
		require.NoError(t, repo.CreateVersion(ctx, fr1))

		approved, err := repo.FindApprovedVersion(ctx, tpl.ID, "en")
		require.NoError(t, err)
		assert.Nil(t, approved)

		_, err = repo.ApproveVersion(ctx, en1.ID, time.Now())
		require.NoError(t, err)
		_, err = repo.ApproveVersion(ctx, en2.ID, time.Now())
		require.NoError(t, err)

		approved, err = repo.FindApprovedVersion(ctx, tpl.ID, "en")
		require.NoError(t, err)
		require.NotNil(t, approved)
		assert.Equal(t, en2.ID, approved.ID)

		approved, err = repo.FindApprovedVersion(ctx, tpl.ID, "fr")
		require.NoError(t, err)
		assert.Nil(t, approved)

		latest, err := repo.FindLatestVersion(ctx, tpl.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, en2.ID, latest.ID)
	})
}
