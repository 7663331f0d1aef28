package keypad

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/ports"
)

var _ KeypadServiceServer = (*Server)(nil)

// Server реализует gRPC KeypadService, вызывает use case калькулятора.
type Server struct {
	uc  ports.IKeypadUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер калькулятора.
func New(uc ports.IKeypadUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// OpenSession открывает сессию и возвращает её экран.
func (s *Server) OpenSession(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	screen, err := s.uc.OpenSession(ctx)
	if err != nil {
		return nil, s.toStatus("open session", err)
	}
	return screenStruct(screen)
}

// Press: нажатие клавиши. Поля запроса: session_id, key.
func (s *Server) Press(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, "session_id")
	if err != nil {
		return nil, err
	}
	key, err := requiredString(req, "key")
	if err != nil {
		return nil, err
	}
	screen, err := s.uc.Press(ctx, sessionID, key)
	if err != nil {
		return nil, s.toStatus("press", err)
	}
	return screenStruct(screen)
}

// Push: нажатие экранной кнопки. Поля запроса: session_id, action, value.
func (s *Server) Push(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, "session_id")
	if err != nil {
		return nil, err
	}
	action, err := requiredString(req, "action")
	if err != nil {
		return nil, err
	}
	screen, err := s.uc.Push(ctx, sessionID, action, req.GetFields()["value"].GetStringValue())
	if err != nil {
		return nil, s.toStatus("push", err)
	}
	return screenStruct(screen)
}

// History возвращает последние вычисления. Поле запроса: limit (0: по умолчанию).
func (s *Server) History(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	limit := int(req.GetFields()["limit"].GetNumberValue())
	if limit < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "invalid limit: %d", limit)
	}
	list, err := s.uc.History(ctx, limit)
	if err != nil {
		return nil, s.toStatus("history", err)
	}
	items := make([]any, len(list))
	for i, ev := range list {
		items[i] = map[string]any{
			"id":         ev.ID,
			"session_id": ev.SessionID,
			"operand1":   ev.Operand1,
			"operator":   ev.Operator,
			"operand2":   ev.Operand2,
			"result":     ev.Result,
			"display":    ev.Display,
			"error":      ev.Error,
			"timestamp":  ev.Timestamp.UTC().Format(time.RFC3339Nano),
		}
	}
	out, err := structpb.NewStruct(map[string]any{"items": items})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return out, nil
}

func (s *Server) toStatus(action string, err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return status.Errorf(codes.NotFound, "%v", err)
	}
	s.log.Error(action+" failed", "error", err)
	return status.Errorf(codes.Internal, "%v", err)
}

func requiredString(req *structpb.Struct, field string) (string, error) {
	v := req.GetFields()[field].GetStringValue()
	if v == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	return v, nil
}

func screenStruct(screen *domain.Screen) (*structpb.Struct, error) {
	if screen == nil {
		return &structpb.Struct{}, nil
	}
	out, err := structpb.NewStruct(map[string]any{
		"session_id": screen.SessionID,
		"display":    screen.Display,
		"accepted":   screen.Accepted,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return out, nil
}
