package client

import (
	"context"
	"errors"
	"math"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
	"github.com/dmitrijs2005/profilekeeper/internal/profile"
	pb "github.com/dmitrijs2005/profilekeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastGetReq    *pb.GetProfileRequest
	lastSearchReq *pb.SearchProfilesRequest
	lastCreateReq *pb.Profile
	lastUpdateReq *pb.UpdateProfileRequest
	lastDeleteReq *wrapperspb.StringValue
	hadDeadline   bool

	// outputs preset
	pingResp *pb.PingResponse
	pingErr  error

	profileResp *pb.Profile
	profileErr  error

	searchResp *pb.SearchProfilesResponse
	searchErr  error

	deleteErr error
}

func (f *fakePB) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	_, f.hadDeadline = ctx.Deadline()
	return f.pingResp, f.pingErr
}
func (f *fakePB) GetSampleProfile(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*pb.Profile, error) {
	return f.profileResp, f.profileErr
}
func (f *fakePB) GetProfile(ctx context.Context, in *pb.GetProfileRequest, opts ...grpc.CallOption) (*pb.Profile, error) {
	f.lastGetReq = in
	return f.profileResp, f.profileErr
}
func (f *fakePB) SearchProfiles(ctx context.Context, in *pb.SearchProfilesRequest, opts ...grpc.CallOption) (*pb.SearchProfilesResponse, error) {
	f.lastSearchReq = in
	return f.searchResp, f.searchErr
}
func (f *fakePB) CreateProfile(ctx context.Context, in *pb.Profile, opts ...grpc.CallOption) (*pb.Profile, error) {
	f.lastCreateReq = in
	return f.profileResp, f.profileErr
}
func (f *fakePB) UpdateProfile(ctx context.Context, in *pb.UpdateProfileRequest, opts ...grpc.CallOption) (*pb.Profile, error) {
	f.lastUpdateReq = in
	return f.profileResp, f.profileErr
}
func (f *fakePB) DeleteProfile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	f.lastDeleteReq = in
	return &emptypb.Empty{}, f.deleteErr
}

/*************
 * requestIDInterceptor tests
 *************/

func TestInterceptor_AddsRequestID(t *testing.T) {
	c := &GRPCClient{}

	var got []string
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(common.RequestIDHeaderName)
		return nil
	}

	require.NoError(t, c.requestIDInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0])
}

func TestInterceptor_KeepsCallerRequestID(t *testing.T) {
	c := &GRPCClient{}
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.RequestIDHeaderName, "mine", "other", "v")

	var md metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	require.NoError(t, c.requestIDInterceptor(ctx, "/svc/Method", nil, nil, nil, invoker))
	assert.Equal(t, []string{"mine"}, md.Get(common.RequestIDHeaderName))
	assert.Equal(t, []string{"v"}, md.Get("other"))
}

func TestInterceptor_PropagatesError(t *testing.T) {
	c := &GRPCClient{}
	want := status.Error(codes.Internal, "x")

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return want
	}

	assert.Equal(t, want, c.requestIDInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.NoError(t, c.mapError(nil))
	require.Equal(t, ErrNotFound, c.mapError(status.Error(codes.NotFound, "x")))
	require.Equal(t, ErrAlreadyExists, c.mapError(status.Error(codes.AlreadyExists, "x")))
	require.Equal(t, ErrInvalidArgument, c.mapError(status.Error(codes.InvalidArgument, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	e := status.Error(codes.Internal, "boom")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
	require.ErrorIs(t, c.mapError(e), e)
}

/*************
 * method tests
 *************/

func TestPing_OK(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f, timeout: time.Second}

	require.NoError(t, c.Ping(context.Background()))
	assert.True(t, f.hadDeadline, "timeout must be applied")
}

func TestPing_NoTimeout(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f}

	require.NoError(t, c.Ping(context.Background()))
	assert.False(t, f.hadDeadline)
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "DEGRADED"}}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_MapsRPCError(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingErr: status.Error(codes.Unavailable, "down")}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestSample(t *testing.T) {
	c := &GRPCClient{client: &fakePB{profileResp: pb.FromProfile(profile.Sample())}}

	p, err := c.Sample(context.Background())
	require.NoError(t, err)
	assert.True(t, p.Equal(profile.Sample()))
}

func TestGetByIDAndUsername(t *testing.T) {
	f := &fakePB{profileResp: pb.FromProfile(profile.Sample())}
	c := &GRPCClient{client: f}

	_, err := c.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, &pb.GetProfileRequest{UserId: "1"}, f.lastGetReq)

	p, err := c.GetByUsername(context.Background(), "papy123")
	require.NoError(t, err)
	assert.Equal(t, &pb.GetProfileRequest{Username: "papy123"}, f.lastGetReq)
	assert.Equal(t, "Jean", p.FirstName())

	f.profileErr = status.Error(codes.NotFound, "nope")
	_, err = c.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearch(t *testing.T) {
	f := &fakePB{searchResp: &pb.SearchProfilesResponse{Profiles: []*pb.Profile{
		{Username: "papa"}, {Username: "papy123"},
	}}}
	c := &GRPCClient{client: f}

	got, err := c.Search(context.Background(), "pap", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "papa", got[0].Username())
	assert.Equal(t, &pb.SearchProfilesRequest{Prefix: "pap", Limit: 5}, f.lastSearchReq)

	f.searchErr = errors.New("transport")
	_, err = c.Search(context.Background(), "pap", 5)
	require.ErrorContains(t, err, "rpc error:")
}

func TestSearch_ClampsLimit(t *testing.T) {
	f := &fakePB{searchResp: &pb.SearchProfilesResponse{}}
	c := &GRPCClient{client: f}

	_, err := c.Search(context.Background(), "pap", math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), f.lastSearchReq.Limit)

	_, err = c.Search(context.Background(), "pap", math.MinInt)
	require.NoError(t, err)
	assert.Equal(t, int32(0), f.lastSearchReq.Limit)
}

func TestCreate(t *testing.T) {
	f := &fakePB{profileResp: &pb.Profile{UserId: "01J", Username: "papa"}}
	c := &GRPCClient{client: f}

	got, err := c.Create(context.Background(), profile.NewDisplay("papa", "", "", ""))
	require.NoError(t, err)
	assert.Equal(t, "01J", got.UserID())
	assert.Equal(t, "papa", f.lastCreateReq.Username)

	f.profileErr = status.Error(codes.AlreadyExists, "taken")
	_, err = c.Create(context.Background(), profile.NewDisplay("papa", "", "", ""))
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUpdate(t *testing.T) {
	f := &fakePB{profileResp: pb.FromProfile(profile.Sample())}
	c := &GRPCClient{client: f}

	_, err := c.Update(context.Background(), "1", profile.Patch{Bio: profile.String("hi")})
	require.NoError(t, err)
	require.NotNil(t, f.lastUpdateReq)
	assert.Equal(t, "1", f.lastUpdateReq.UserId)
	require.NotNil(t, f.lastUpdateReq.Bio)
	assert.Equal(t, "hi", *f.lastUpdateReq.Bio)
	assert.Nil(t, f.lastUpdateReq.Username)
}

func TestDelete(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	require.NoError(t, c.Delete(context.Background(), "1"))
	assert.Equal(t, "1", f.lastDeleteReq.GetValue())

	f.deleteErr = status.Error(codes.InvalidArgument, "empty")
	require.ErrorIs(t, c.Delete(context.Background(), ""), ErrInvalidArgument)
}

func TestClose_NilConn(t *testing.T) {
	c := &GRPCClient{}
	assert.NoError(t, c.Close())
}

/*************
 * over the wire
 *************/

type headerCapturingServer struct {
	pb.UnimplementedProfileServiceServer
	requestIDs chan string
}

func (s *headerCapturingServer) Ping(ctx context.Context, _ *emptypb.Empty) (*pb.PingResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	ids := md.Get(common.RequestIDHeaderName)
	if len(ids) > 0 {
		s.requestIDs <- ids[0]
	}
	return &pb.PingResponse{Status: "OK"}, nil
}

func TestGRPCClient_OverBufconn(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	fake := &headerCapturingServer{requestIDs: make(chan string, 1)}
	pb.RegisterProfileServiceServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c := &GRPCClient{endpointURL: "passthrough:///bufnet", timeout: 2 * time.Second}
	require.NoError(t, c.InitGRPCClient(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})))
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Ping(context.Background()))
	assert.NotEmpty(t, <-fake.requestIDs)

	_, err := c.Sample(context.Background())
	assert.ErrorContains(t, err, "rpc error:", "unimplemented maps to a wrapped rpc error")
}

func TestNewProfileKeeperClient(t *testing.T) {
	c, err := NewProfileKeeperClient("127.0.0.1:1", time.Second)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NoError(t, c.Close())
}
