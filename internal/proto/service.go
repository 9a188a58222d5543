package proto

import (
	"context"

	_ "github.com/dmitrijs2005/profilekeeper/internal/codec"
	"github.com/dmitrijs2005/profilekeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "profilekeeper.ProfileService"

const (
	ProfileService_Ping_FullMethodName             = "/profilekeeper.ProfileService/Ping"
	ProfileService_GetSampleProfile_FullMethodName = "/profilekeeper.ProfileService/GetSampleProfile"
	ProfileService_GetProfile_FullMethodName       = "/profilekeeper.ProfileService/GetProfile"
	ProfileService_SearchProfiles_FullMethodName   = "/profilekeeper.ProfileService/SearchProfiles"
	ProfileService_CreateProfile_FullMethodName    = "/profilekeeper.ProfileService/CreateProfile"
	ProfileService_UpdateProfile_FullMethodName    = "/profilekeeper.ProfileService/UpdateProfile"
	ProfileService_DeleteProfile_FullMethodName    = "/profilekeeper.ProfileService/DeleteProfile"
)

// ProfileServiceClient is the client API for ProfileService.
type ProfileServiceClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)
	GetSampleProfile(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*Profile, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*Profile, error)
	SearchProfiles(ctx context.Context, in *SearchProfilesRequest, opts ...grpc.CallOption) (*SearchProfilesResponse, error)
	CreateProfile(ctx context.Context, in *Profile, opts ...grpc.CallOption) (*Profile, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*Profile, error)
	DeleteProfile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type profileServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewProfileServiceClient returns a stub that sends every call with the JSON
// content-subtype.
func NewProfileServiceClient(cc grpc.ClientConnInterface) ProfileServiceClient {
	return &profileServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(common.CodecName)}, opts...)
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *profileServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, ProfileService_Ping_FullMethodName, in, opts)
}

func (c *profileServiceClient) GetSampleProfile(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, ProfileService_GetSampleProfile_FullMethodName, in, opts)
}

func (c *profileServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, ProfileService_GetProfile_FullMethodName, in, opts)
}

func (c *profileServiceClient) SearchProfiles(ctx context.Context, in *SearchProfilesRequest, opts ...grpc.CallOption) (*SearchProfilesResponse, error) {
	return invoke[SearchProfilesResponse](ctx, c.cc, ProfileService_SearchProfiles_FullMethodName, in, opts)
}

func (c *profileServiceClient) CreateProfile(ctx context.Context, in *Profile, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, ProfileService_CreateProfile_FullMethodName, in, opts)
}

func (c *profileServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, ProfileService_UpdateProfile_FullMethodName, in, opts)
}

func (c *profileServiceClient) DeleteProfile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, ProfileService_DeleteProfile_FullMethodName, in, opts)
}

// ProfileServiceServer is the server API for ProfileService.
// Implementations must embed UnimplementedProfileServiceServer.
type ProfileServiceServer interface {
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)
	GetSampleProfile(context.Context, *emptypb.Empty) (*Profile, error)
	GetProfile(context.Context, *GetProfileRequest) (*Profile, error)
	SearchProfiles(context.Context, *SearchProfilesRequest) (*SearchProfilesResponse, error)
	CreateProfile(context.Context, *Profile) (*Profile, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*Profile, error)
	DeleteProfile(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	mustEmbedUnimplementedProfileServiceServer()
}

// UnimplementedProfileServiceServer answers every method with codes.Unimplemented.
type UnimplementedProfileServiceServer struct{}

func (UnimplementedProfileServiceServer) Ping(context.Context, *emptypb.Empty) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedProfileServiceServer) GetSampleProfile(context.Context, *emptypb.Empty) (*Profile, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSampleProfile not implemented")
}
func (UnimplementedProfileServiceServer) GetProfile(context.Context, *GetProfileRequest) (*Profile, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedProfileServiceServer) SearchProfiles(context.Context, *SearchProfilesRequest) (*SearchProfilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchProfiles not implemented")
}
func (UnimplementedProfileServiceServer) CreateProfile(context.Context, *Profile) (*Profile, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateProfile not implemented")
}
func (UnimplementedProfileServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*Profile, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateProfile not implemented")
}
func (UnimplementedProfileServiceServer) DeleteProfile(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteProfile not implemented")
}
func (UnimplementedProfileServiceServer) mustEmbedUnimplementedProfileServiceServer() {}

func RegisterProfileServiceServer(s grpc.ServiceRegistrar, srv ProfileServiceServer) {
	s.RegisterService(&ProfileService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a gRPC unary method handler.
func unaryHandler[Req any, Resp any](method string, call func(ProfileServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ProfileServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ProfileServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ProfileService_ServiceDesc is the grpc.ServiceDesc for ProfileService.
var ProfileService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProfileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    unaryHandler(ProfileService_Ping_FullMethodName, ProfileServiceServer.Ping),
		},
		{
			MethodName: "GetSampleProfile",
			Handler:    unaryHandler(ProfileService_GetSampleProfile_FullMethodName, ProfileServiceServer.GetSampleProfile),
		},
		{
			MethodName: "GetProfile",
			Handler:    unaryHandler(ProfileService_GetProfile_FullMethodName, ProfileServiceServer.GetProfile),
		},
		{
			MethodName: "SearchProfiles",
			Handler:    unaryHandler(ProfileService_SearchProfiles_FullMethodName, ProfileServiceServer.SearchProfiles),
		},
		{
			MethodName: "CreateProfile",
			Handler:    unaryHandler(ProfileService_CreateProfile_FullMethodName, ProfileServiceServer.CreateProfile),
		},
		{
			MethodName: "UpdateProfile",
			Handler:    unaryHandler(ProfileService_UpdateProfile_FullMethodName, ProfileServiceServer.UpdateProfile),
		},
		{
			MethodName: "DeleteProfile",
			Handler:    unaryHandler(ProfileService_DeleteProfile_FullMethodName, ProfileServiceServer.DeleteProfile),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "profilekeeper.proto",
}
