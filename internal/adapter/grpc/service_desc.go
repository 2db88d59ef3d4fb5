package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service exchanges well-known protobuf types only, so it is described
// here directly instead of from a generated .proto package.

const (
	ShiftTradeServiceName = "shifttrade.v1.ShiftTradeService"

	ShiftTradeService_ImportWorkbook_FullMethodName = "/shifttrade.v1.ShiftTradeService/ImportWorkbook"
	ShiftTradeService_ImportText_FullMethodName     = "/shifttrade.v1.ShiftTradeService/ImportText"
	ShiftTradeService_Reconcile_FullMethodName      = "/shifttrade.v1.ShiftTradeService/Reconcile"
	ShiftTradeService_ListImports_FullMethodName    = "/shifttrade.v1.ShiftTradeService/ListImports"
)

// ShiftTradeServiceServer is the server API for ShiftTradeService
type ShiftTradeServiceServer interface {
	ImportWorkbook(context.Context, *wrapperspb.BytesValue) (*structpb.Struct, error)
	ImportText(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Reconcile(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListImports(context.Context, *wrapperspb.Int32Value) (*structpb.Struct, error)
}

// RegisterShiftTradeServiceServer registers the service implementation on a gRPC server
func RegisterShiftTradeServiceServer(s grpc.ServiceRegistrar, srv ShiftTradeServiceServer) {
	s.RegisterService(&ShiftTradeService_ServiceDesc, srv)
}

func _ShiftTradeService_ImportWorkbook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftTradeServiceServer).ImportWorkbook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftTradeService_ImportWorkbook_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftTradeServiceServer).ImportWorkbook(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftTradeService_ImportText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftTradeServiceServer).ImportText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftTradeService_ImportText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftTradeServiceServer).ImportText(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftTradeService_Reconcile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftTradeServiceServer).Reconcile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftTradeService_Reconcile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftTradeServiceServer).Reconcile(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftTradeService_ListImports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftTradeServiceServer).ListImports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftTradeService_ListImports_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftTradeServiceServer).ListImports(ctx, req.(*wrapperspb.Int32Value))
	}
	return interceptor(ctx, in, info, handler)
}

// ShiftTradeService_ServiceDesc is the grpc.ServiceDesc for ShiftTradeService
var ShiftTradeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ShiftTradeServiceName,
	HandlerType: (*ShiftTradeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ImportWorkbook",
			Handler:    _ShiftTradeService_ImportWorkbook_Handler,
		},
		{
			MethodName: "ImportText",
			Handler:    _ShiftTradeService_ImportText_Handler,
		},
		{
			MethodName: "Reconcile",
			Handler:    _ShiftTradeService_Reconcile_Handler,
		},
		{
			MethodName: "ListImports",
			Handler:    _ShiftTradeService_ListImports_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// ShiftTradeServiceClient is the client API for ShiftTradeService
type ShiftTradeServiceClient interface {
	ImportWorkbook(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ImportText(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Reconcile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListImports(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type shiftTradeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewShiftTradeServiceClient creates a client for ShiftTradeService
func NewShiftTradeServiceClient(cc grpc.ClientConnInterface) ShiftTradeServiceClient {
	return &shiftTradeServiceClient{cc}
}

func (c *shiftTradeServiceClient) ImportWorkbook(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ShiftTradeService_ImportWorkbook_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftTradeServiceClient) ImportText(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ShiftTradeService_ImportText_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftTradeServiceClient) Reconcile(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ShiftTradeService_Reconcile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftTradeServiceClient) ListImports(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ShiftTradeService_ListImports_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
