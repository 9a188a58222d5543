package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
	pb "github.com/dmitrijs2005/profilekeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// toStatus maps service errors to gRPC status errors.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Ping(ctx context.Context, req *emptypb.Empty) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) GetSampleProfile(ctx context.Context, req *emptypb.Empty) (*pb.Profile, error) {

	p, err := s.profiles.Sample(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return pb.FromProfile(p), nil

}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.Profile, error) {

	if req.UserId != "" {
		p, err := s.profiles.Get(ctx, req.UserId)
		if err != nil {
			return nil, s.toStatus(ctx, err)
		}
		return pb.FromProfile(p), nil
	}

	if req.Username != "" {
		p, err := s.profiles.Lookup(ctx, req.Username)
		if err != nil {
			return nil, s.toStatus(ctx, err)
		}
		return pb.FromProfile(p), nil
	}

	return nil, status.Error(codes.InvalidArgument, "user_id or username is required")

}

func (s *GRPCServer) SearchProfiles(ctx context.Context, req *pb.SearchProfilesRequest) (*pb.SearchProfilesResponse, error) {

	found, err := s.profiles.Search(ctx, req.Prefix, int(req.Limit))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.SearchProfilesResponse{Profiles: pb.FromProfiles(found)}, nil

}

func (s *GRPCServer) CreateProfile(ctx context.Context, req *pb.Profile) (*pb.Profile, error) {

	created, err := s.profiles.Create(ctx, req.ToProfile())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Profile created", "user_id", created.UserID(), "username", created.Username())
	return pb.FromProfile(created), nil

}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.Profile, error) {

	updated, err := s.profiles.Update(ctx, req.UserId, req.Patch())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Profile updated", "user_id", updated.UserID())
	return pb.FromProfile(updated), nil

}

func (s *GRPCServer) DeleteProfile(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {

	if err := s.profiles.Delete(ctx, req.GetValue()); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Profile deleted", "user_id", req.GetValue())
	return &emptypb.Empty{}, nil

}
