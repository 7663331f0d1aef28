package keypad

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName: полное имя gRPC-сервиса.
const ServiceName = "keypad.v1.KeypadService"

// Имена методов в формате "/<service>/<method>".
const (
	OpenSessionMethod = "/" + ServiceName + "/OpenSession"
	PressMethod       = "/" + ServiceName + "/Press"
	PushMethod        = "/" + ServiceName + "/Push"
	HistoryMethod     = "/" + ServiceName + "/History"
)

// KeypadServiceServer: серверная сторона сервиса. Сообщения: well-known типы protobuf:
// запросы и ответы передаются как google.protobuf.Struct с полями session_id, key, action, value, limit, display, accepted, items.
type KeypadServiceServer interface {
	OpenSession(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Press(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Push(context.Context, *structpb.Struct) (*structpb.Struct, error)
	History(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc описывает сервис для grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*KeypadServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "OpenSession", Handler: unary(OpenSessionMethod, newEmpty, KeypadServiceServer.OpenSession)},
		{MethodName: "Press", Handler: unary(PressMethod, newStruct, KeypadServiceServer.Press)},
		{MethodName: "Push", Handler: unary(PushMethod, newStruct, KeypadServiceServer.Push)},
		{MethodName: "History", Handler: unary(HistoryMethod, newStruct, KeypadServiceServer.History)},
	},
	Streams: []grpc.StreamDesc{},
}

// Register регистрирует реализацию сервиса на gRPC-сервере.
func Register(s grpc.ServiceRegistrar, srv KeypadServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func newEmpty() *emptypb.Empty    { return &emptypb.Empty{} }
func newStruct() *structpb.Struct { return &structpb.Struct{} }

// unary собирает обработчик метода так же, как это делает protoc-gen-go-grpc: декодирует запрос и пропускает вызов через интерцептор.
func unary[Req proto.Message](fullMethod string, newReq func() Req, call func(KeypadServiceServer, context.Context, Req) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(KeypadServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(KeypadServiceServer), ctx, req.(Req))
		})
	}
}

// Client: клиентская сторона сервиса поверх grpc.ClientConnInterface.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient создаёт клиента сервиса.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// OpenSession открывает сессию.
func (c *Client) OpenSession(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, OpenSessionMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Press отправляет нажатие клавиши.
func (c *Client) Press(ctx context.Context, sessionID, key string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{"session_id": sessionID, "key": key})
	if err != nil {
		return nil, err
	}
	return c.invoke(ctx, PressMethod, in, opts...)
}

// Push отправляет нажатие экранной кнопки.
func (c *Client) Push(ctx context.Context, sessionID, action, value string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{"session_id": sessionID, "action": action, "value": value})
	if err != nil {
		return nil, err
	}
	return c.invoke(ctx, PushMethod, in, opts...)
}

// History запрашивает последние limit вычислений.
func (c *Client) History(ctx context.Context, limit int, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	return c.invoke(ctx, HistoryMethod, in, opts...)
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
