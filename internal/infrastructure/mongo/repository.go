package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/ports"
)

var _ ports.IEvaluationRepository = (*EvaluationRepo)(nil)

// evaluationDoc: документ в коллекции evaluations (ID в домене: int для совместимости с PG, при чтении остаётся 0).
type evaluationDoc struct {
	SessionID string    `bson:"session_id"`
	Operand1  string    `bson:"operand1"`
	Operator  string    `bson:"operator"`
	Operand2  string    `bson:"operand2"`
	Result    string    `bson:"result"`
	Display   string    `bson:"display"`
	Error     string    `bson:"error,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

// EvaluationRepo реализует ports.IEvaluationRepository для MongoDB.
type EvaluationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewEvaluationRepo возвращает репозиторий истории вычислений.
func NewEvaluationRepo(client *Client, log *slog.Logger) *EvaluationRepo {
	return &EvaluationRepo{client: client, log: log}
}

// SaveEvaluation сохраняет вычисление в коллекцию.
func (r *EvaluationRepo) SaveEvaluation(ctx context.Context, ev domain.Evaluation) error {
	doc := evaluationDoc{
		SessionID: ev.SessionID,
		Operand1:  ev.Operand1,
		Operator:  ev.Operator,
		Operand2:  ev.Operand2,
		Result:    ev.Result,
		Display:   ev.Display,
		Error:     ev.Error,
		CreatedAt: ev.Timestamp,
	}
	_, err := r.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		r.log.Debug("SaveEvaluation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние limit вычислений (новые сначала).
func (r *EvaluationRepo) GetHistory(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []evaluationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Evaluation, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Evaluation{
			SessionID: d.SessionID,
			Operand1:  d.Operand1,
			Operator:  d.Operator,
			Operand2:  d.Operand2,
			Result:    d.Result,
			Display:   d.Display,
			Error:     d.Error,
			Timestamp: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *EvaluationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
