//go:build integration

package pg_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/infrastructure/pg"
	"keypadCalc/internal/pkg/testutil"
)

// pgContainer поднимается один раз в TestMain для всех тестов пакета.
var pgContainer *testutil.PostgresContainer

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), testutil.StartupTimeout)
	defer cancel()

	var err error
	pgContainer, err = testutil.NewPostgresContainer(ctx)
	if err != nil {
		log.Fatalf("postgres container: %v", err)
	}

	code := m.Run()

	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("postgres terminate: %v", err)
	}
	os.Exit(code)
}

// setupPgDB подключается к тестовой БД, прогоняет миграцию и очищает таблицу.
func setupPgDB(t *testing.T) *pg.DB {
	t.Helper()
	ctx := context.Background()

	db, err := pg.New(ctx, &pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, pg.Migrate(ctx, db))
	require.NoError(t, pg.Migrate(ctx, db), "миграция должна быть идемпотентной")
	_, err = db.ExecContext(ctx, "TRUNCATE TABLE evaluations RESTART IDENTITY")
	require.NoError(t, err)
	return db
}

func TestEvaluationRepo_SaveAndHistory(t *testing.T) {
	db := setupPgDB(t)
	repo := pg.NewEvaluationRepo(db, testutil.NewTestLogger())
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	evs := []domain.Evaluation{
		{SessionID: "s1", Operand1: "3", Operator: "+", Operand2: "4", Result: "7", Display: "7", Timestamp: now.Add(-2 * time.Second)},
		{SessionID: "s1", Operand1: "7", Operator: "*", Operand2: "2", Result: "14", Display: "14", Timestamp: now.Add(-time.Second)},
		{SessionID: "s2", Operand1: "5", Operator: "/", Operand2: "0", Display: "Cannot divide by 0", Error: "division by zero", Timestamp: now},
	}
	for _, ev := range evs {
		require.NoError(t, repo.SaveEvaluation(ctx, ev))
	}

	history, err := repo.GetHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, "Cannot divide by 0", history[0].Display, "первая запись: самая новая")
	assert.Equal(t, "division by zero", history[0].Error)
	assert.Empty(t, history[0].Result)
	assert.Equal(t, "14", history[1].Result)
	assert.Equal(t, "7", history[2].Result)
	assert.NotZero(t, history[0].ID)
	assert.True(t, now.Equal(history[0].Timestamp.UTC()))
}

func TestEvaluationRepo_HistoryLimit(t *testing.T) {
	db := setupPgDB(t)
	repo := pg.NewEvaluationRepo(db, testutil.NewTestLogger())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.SaveEvaluation(ctx, domain.Evaluation{
			SessionID: "s1", Operand1: "1", Operator: "+", Operand2: "1", Result: "2", Display: "2",
			Timestamp: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	history, err := repo.GetHistory(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestEvaluationRepo_HistoryEmpty(t *testing.T) {
	db := setupPgDB(t)
	repo := pg.NewEvaluationRepo(db, testutil.NewTestLogger())

	history, err := repo.GetHistory(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestEvaluationRepo_Ping(t *testing.T) {
	db := setupPgDB(t)
	repo := pg.NewEvaluationRepo(db, testutil.NewTestLogger())

	assert.NoError(t, repo.Ping(context.Background()))
}
