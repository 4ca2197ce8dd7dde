// Package grpc exposes the relay service over gRPC as the RagServices
// service.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/cryptox"
	"github.com/dmitrijs2005/ragrelay/internal/logging"
	pb "github.com/dmitrijs2005/ragrelay/internal/proto"
	"github.com/dmitrijs2005/ragrelay/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// keepaliveMinTime is the shortest client ping interval the server accepts.
const keepaliveMinTime = 30 * time.Second

// Relay is the business side of the RPC handlers.
type Relay interface {
	Register(ctx context.Context, email, name string, cred cryptox.TransportCredential) services.Reply
	Login(ctx context.Context, email string, cred cryptox.TransportCredential) services.Reply
	GetAPIKey(ctx context.Context, email string, cred cryptox.TransportCredential) services.Reply
}

type GRPCServer struct {
	pb.UnimplementedRagServicesServer
	address string
	relay   Relay
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, r Relay) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		relay:   r,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{MinTime: keepaliveMinTime}),
		grpc.ChainUnaryInterceptor(s.requestIDInterceptor),
	)

	// registers service
	pb.RegisterRagServicesServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
