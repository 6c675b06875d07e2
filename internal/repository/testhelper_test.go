package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"comment-service/internal/infrastructure/database"
)

// TestDB is a disposable PostgreSQL instance with the comments schema.
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// SetupTestDB starts PostgreSQL in a container and migrates it with the
// embedded migrations the server applies at startup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("comments"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	tdb := &TestDB{Container: container}

	tdb.ConnStr, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tdb.Cleanup(t)
		t.Fatalf("connection string: %v", err)
	}

	if _, err := database.Migrate(tdb.ConnStr); err != nil {
		tdb.Cleanup(t)
		t.Fatalf("migrate: %v", err)
	}

	tdb.Pool, err = database.NewPostgres(ctx, database.PoolConfig{
		URL:      tdb.ConnStr,
		MaxConns: 4,
	})
	if err != nil {
		tdb.Cleanup(t)
		t.Fatalf("connect: %v", err)
	}

	return tdb
}

// Cleanup closes the pool and terminates the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	}
}

// TruncateTables empties tables between subtests and restarts their ids.
func (tdb *TestDB) TruncateTables(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if _, err := tdb.Pool.Exec(context.Background(), "TRUNCATE TABLE "+pgx.Identifier{table}.Sanitize()+" RESTART IDENTITY"); err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
}
