package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Service definition for holonet.Holonet. Requests and responses are
// google.protobuf.Struct so clients need no generated message types.
//
//	service Holonet {
//	  rpc ListFavorites(google.protobuf.Struct) returns (google.protobuf.Struct);
//	  rpc ListEntities(google.protobuf.Struct) returns (google.protobuf.Struct);
//	}

const (
	Holonet_ListFavorites_FullMethodName = "/holonet.Holonet/ListFavorites"
	Holonet_ListEntities_FullMethodName  = "/holonet.Holonet/ListEntities"
)

type HolonetClient interface {
	ListFavorites(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListEntities(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type holonetClient struct {
	cc grpc.ClientConnInterface
}

func NewHolonetClient(cc grpc.ClientConnInterface) HolonetClient {
	return &holonetClient{cc}
}

func (c *holonetClient) ListFavorites(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Holonet_ListFavorites_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *holonetClient) ListEntities(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Holonet_ListEntities_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type HolonetServer interface {
	ListFavorites(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListEntities(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterHolonetServer(s grpc.ServiceRegistrar, srv HolonetServer) {
	s.RegisterService(&Holonet_ServiceDesc, srv)
}

func _Holonet_ListFavorites_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HolonetServer).ListFavorites(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Holonet_ListFavorites_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HolonetServer).ListFavorites(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Holonet_ListEntities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HolonetServer).ListEntities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Holonet_ListEntities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HolonetServer).ListEntities(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var Holonet_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "holonet.Holonet",
	HandlerType: (*HolonetServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListFavorites",
			Handler:    _Holonet_ListFavorites_Handler,
		},
		{
			MethodName: "ListEntities",
			Handler:    _Holonet_ListEntities_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "holonet.proto",
}
