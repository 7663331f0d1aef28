//go:build integration

package mongo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/infrastructure/mongo"
	"keypadCalc/internal/pkg/testutil"
)

var mongoContainer *testutil.MongoContainer

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), testutil.StartupTimeout)
	defer cancel()

	var err error
	mongoContainer, err = testutil.NewMongoContainer(ctx)
	if err != nil {
		log.Fatalf("mongo container: %v", err)
	}

	code := m.Run()

	if err := mongoContainer.Terminate(ctx); err != nil {
		log.Printf("mongo terminate: %v", err)
	}
	os.Exit(code)
}

// setupMongoRepo подключается к тестовой MongoDB и очищает коллекцию.
func setupMongoRepo(t *testing.T) *mongo.EvaluationRepo {
	t.Helper()
	ctx := context.Background()

	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "testdb",
		Collection: "evaluations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")
	t.Cleanup(func() { _ = client.Close() })

	_, err = client.Coll().DeleteMany(ctx, bson.M{})
	require.NoError(t, err)

	return mongo.NewEvaluationRepo(client, testutil.NewTestLogger())
}

func TestEvaluationRepo_SaveAndHistory(t *testing.T) {
	repo := setupMongoRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, repo.SaveEvaluation(ctx, domain.Evaluation{
		SessionID: "s1", Operand1: "0.1", Operator: "+", Operand2: "0.2", Result: "0.3", Display: "0.3", Timestamp: now.Add(-time.Second),
	}))
	require.NoError(t, repo.SaveEvaluation(ctx, domain.Evaluation{
		SessionID: "s1", Operand1: "5", Operator: "/", Operand2: "0", Display: "Cannot divide by 0", Error: "division by zero", Timestamp: now,
	}))

	history, err := repo.GetHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "division by zero", history[0].Error, "первая запись: самая новая")
	assert.Equal(t, "0.3", history[1].Result)
	assert.True(t, now.Equal(history[0].Timestamp))
}

func TestEvaluationRepo_HistoryLimit(t *testing.T) {
	repo := setupMongoRepo(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.SaveEvaluation(ctx, domain.Evaluation{
			SessionID: "s1", Operand1: "1", Operator: "+", Operand2: "1", Result: "2", Display: "2",
			Timestamp: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	history, err := repo.GetHistory(ctx, 1)

	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestEvaluationRepo_Ping(t *testing.T) {
	repo := setupMongoRepo(t)

	assert.NoError(t, repo.Ping(context.Background()))
}
