package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"keypadCalc/internal/api/grpc/interceptors"
	"keypadCalc/internal/api/grpc/keypad"
	"keypadCalc/internal/ports"
)

// Config: настройки gRPC-сервера. Переменные: CALCULATOR_GRPC_HOST, CALCULATOR_GRPC_PORT.
type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
}

// Addr возвращает адрес "host:port".
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server: gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	addr   string
}

// NewServer создаёт gRPC-сервер, регистрирует KeypadService и стандартный health-сервис.
// Интерцепторы: recovery и логирование (метод, latency_ms, grpc_code).
func NewServer(addr string, uc ports.IKeypadUseCase, log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.RecoveryUnaryInterceptor(log),
		interceptors.LoggingUnaryInterceptor(log),
	))
	keypad.Register(s, keypad.New(uc, log))

	hs := health.NewServer()
	hs.SetServingStatus(keypad.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	return &Server{grpc: s, health: hs, addr: addr}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve принимает соединения на готовом listener (блокируется).
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop переводит health в NOT_SERVING и останавливает сервер (graceful).
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
