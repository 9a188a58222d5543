package client

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
	"github.com/dmitrijs2005/profilekeeper/internal/profile"
	pb "github.com/dmitrijs2005/profilekeeper/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.ProfileServiceClient
}

// withRequestID keeps an x-request-id already present in ctx and adds a
// fresh one otherwise.
func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.RequestIDHeaderName, uuid.NewString())

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

// NewProfileKeeperClient connects lazily to endpointURL. A positive timeout
// bounds every call.
func NewProfileKeeperClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewProfileServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) Sample(ctx context.Context) (*profile.Profile, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetSampleProfile(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.ToProfile(), nil
}

func (s *GRPCClient) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	return s.getProfile(ctx, &pb.GetProfileRequest{UserId: id})
}

func (s *GRPCClient) GetByUsername(ctx context.Context, username string) (*profile.Profile, error) {
	return s.getProfile(ctx, &pb.GetProfileRequest{Username: username})
}

func (s *GRPCClient) getProfile(ctx context.Context, req *pb.GetProfileRequest) (*profile.Profile, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetProfile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.ToProfile(), nil
}

func (s *GRPCClient) Search(ctx context.Context, prefix string, limit int) ([]*profile.Profile, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// the server treats a non-positive limit as its default
	switch {
	case limit > math.MaxInt32:
		limit = math.MaxInt32
	case limit < 0:
		limit = 0
	}

	resp, err := s.client.SearchProfiles(ctx, &pb.SearchProfilesRequest{Prefix: prefix, Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}

	res := make([]*profile.Profile, 0, len(resp.GetProfiles()))
	for _, p := range resp.GetProfiles() {
		res = append(res, p.ToProfile())
	}
	return res, nil
}

func (s *GRPCClient) Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateProfile(ctx, pb.FromProfile(p))
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.ToProfile(), nil
}

func (s *GRPCClient) Update(ctx context.Context, id string, patch profile.Patch) (*profile.Profile, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpdateProfile(ctx, pb.NewUpdateProfileRequest(id, patch))
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.ToProfile(), nil
}

func (s *GRPCClient) Delete(ctx context.Context, id string) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.DeleteProfile(ctx, wrapperspb.String(id)); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return ErrInvalidArgument
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
