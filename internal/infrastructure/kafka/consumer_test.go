package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/mocks"
)

func newTestConsumer(t *testing.T) (*Consumer, *mocks.MockIKeypadUseCase) {
	t.Helper()
	uc := mocks.NewMockIKeypadUseCase(gomock.NewController(t))
	return &Consumer{uc: uc, log: slog.New(slog.NewTextHandler(io.Discard, nil))}, uc
}

func TestConsumer_HandleDecodesEvaluation(t *testing.T) {
	c, uc := newTestConsumer(t)
	uc.EXPECT().HandleEvaluationEvent(gomock.Any(), domain.Evaluation{
		SessionID: "s1", Operand1: "3", Operator: "+", Operand2: "4", Result: "7", Display: "7",
	}).Return(nil)

	commit := c.handle(context.Background(), kafka.Message{
		Key:   []byte("s1"),
		Value: []byte(`{"session_id":"s1","operand1":"3","operator":"+","operand2":"4","result":"7","display":"7","timestamp":"0001-01-01T00:00:00Z"}`),
	})

	assert.True(t, commit)
}

func TestConsumer_HandleSkipsMalformed(t *testing.T) {
	c, _ := newTestConsumer(t)

	assert.True(t, c.handle(context.Background(), kafka.Message{Value: []byte("{not json")}))
}

func TestConsumer_HandleLeavesFailedUncommitted(t *testing.T) {
	c, uc := newTestConsumer(t)
	uc.EXPECT().HandleEvaluationEvent(gomock.Any(), gomock.Any()).Return(errors.New("analytics down"))

	assert.False(t, c.handle(context.Background(), kafka.Message{Value: []byte(`{"session_id":"s1"}`)}))
}
