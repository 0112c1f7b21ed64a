//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"workhours/config"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/infra/persistence/postgres"
	"workhours/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "workhours"
	pgPassword = "secret"
	pgDatabase = "workhours"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port.Port(), pgUser, pgPassword, pgDatabase)
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(ctx, db))

	return db
}

func testDeps() (*config.Config, *slog.Logger) {
	cfg := &config.Config{}
	cfg.Env.Timezone = "UTC"

	return cfg, slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClockStateMachine(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	cfg, logger := testDeps()

	clock := impl.NewClockService(impl.ClockServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		Config:    cfg,
		Logger:    logger,
	})
	ownerID := uuid.New()

	_, err := clock.ClockOut(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrNotClockedIn)

	session, err := clock.ClockIn(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, session.IsActive)

	_, err = clock.ClockIn(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyClockedIn)

	status, err := clock.CurrentStatus(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, status.IsClockedIn)

	result, err := clock.ClockOut(ctx, ownerID)
	require.NoError(t, err)
	assert.False(t, result.Session.IsActive)
	require.NotNil(t, result.WorkLog)
	assert.Equal(t, ownerID, result.WorkLog.OwnerID)

	logs, err := postgres.NewWorkLogRepository(db).List(ctx, ownerID, entity.WorkLogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, result.WorkLog.ID, logs[0].ID)

	// Idle again, so a new session may start.
	_, err = clock.ClockIn(ctx, ownerID)
	require.NoError(t, err)

	sessions, err := clock.ListSessions(ctx, ownerID, 10)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestActiveSessionIndexRejectsSecondSession(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	repo := postgres.NewClockSessionRepository(db)
	ownerID := uuid.New()

	require.NoError(t, repo.Create(ctx, &entity.ClockSession{OwnerID: ownerID, ClockInTime: time.Now()}))
	err := repo.Create(ctx, &entity.ClockSession{OwnerID: ownerID, ClockInTime: time.Now()})
	assert.ErrorIs(t, err, repository.ErrActiveSessionExists)

	// Other owners are unaffected.
	require.NoError(t, repo.Create(ctx, &entity.ClockSession{OwnerID: uuid.New(), ClockInTime: time.Now()}))
}

func TestConcurrentClockInOpensOneSession(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	cfg, logger := testDeps()

	clock := impl.NewClockService(impl.ClockServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		Config:    cfg,
		Logger:    logger,
	})
	ownerID := uuid.New()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := clock.ClockIn(ctx, ownerID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domainerrors.ErrAlreadyClockedIn):
				rejected++
			default:
				t.Errorf("unexpected clock-in error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
}
