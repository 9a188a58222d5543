package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/profilekeeper/internal/logging"
	"github.com/dmitrijs2005/profilekeeper/internal/profile"
	pb "github.com/dmitrijs2005/profilekeeper/internal/proto"
	"google.golang.org/grpc"
)

// ProfileService is the business layer the handlers delegate to.
type ProfileService interface {
	Sample(ctx context.Context) (*profile.Profile, error)
	Get(ctx context.Context, id string) (*profile.Profile, error)
	Lookup(ctx context.Context, username string) (*profile.Profile, error)
	Search(ctx context.Context, prefix string, limit int) ([]*profile.Profile, error)
	Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error)
	Update(ctx context.Context, id string, patch profile.Patch) (*profile.Profile, error)
	Delete(ctx context.Context, id string) error
}

type GRPCServer struct {
	pb.UnimplementedProfileServiceServer
	address  string
	profiles ProfileService
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ps ProfileService) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		profiles: ps,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor))

	// registers service
	pb.RegisterProfileServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	// a stop that lands before Serve surfaces as ErrServerStopped
	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
