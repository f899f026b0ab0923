package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/popeskul/crm-comms/internal/models"
)

func setupTestDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	cleanup := func() {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func applyMigrations(db *sqlx.DB) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

func cleanupTestData(db *sqlx.DB) {
	_, _ = db.Exec(`TRUNCATE TABLE call_logs, reminder_queue, thread_slas, sla_policies, outbox_items,
		template_versions, templates, messages, threads, contacts CASCADE`)
}

// seedContact inserts a contact directly; contacts are owned by another
// service and have no create path here.
func seedContact(t *testing.T, db *sqlx.DB, first, phone, email string) *models.Contact {
	t.Helper()

	c := &models.Contact{ID: uuid.New().String(), FirstName: first, LastName: "Tester"}
	if phone != "" {
		c.Phone = &phone
	}
	if email != "" {
		c.Email = &email
	}

	_, err := db.Exec(`INSERT INTO contacts (id, first_name, last_name, phone, email) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.FirstName, c.LastName, c.Phone, c.Email)
	require.NoError(t, err)
	return c
}

func seedTemplate(t *testing.T, db *sqlx.DB, channel models.Channel) string {
	t.Helper()

	id := uuid.New().String()
	_, err := db.Exec(`INSERT INTO templates (id, name, channel, kind) VALUES ($1, $2, $3, 'automation')`,
		id, fmt.Sprintf("tpl-%s", id[:8]), channel)
	require.NoError(t, err)
	return id
}

func strPtr(s string) *string {
	return &s
}
