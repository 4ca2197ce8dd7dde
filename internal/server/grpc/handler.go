package grpc

import (
	"context"

	"github.com/dmitrijs2005/ragrelay/internal/cryptox"
	pb "github.com/dmitrijs2005/ragrelay/internal/proto"
	"github.com/dmitrijs2005/ragrelay/internal/server/services"
)

// Every relay outcome, failures included, is a successful RPC carrying the
// reply text. Only transport-level faults become gRPC status errors.

func (s *GRPCServer) Registration(ctx context.Context, req *pb.RegistrationCredentials) (*pb.ResponseString, error) {
	reply := s.relay.Register(ctx, req.GetEmail(), req.GetName(), cryptox.TransportCredential{
		EncryptedPassword: req.GetEncryptedPassword(),
		Nonce:             req.GetNonce(),
		Tag:               req.GetTag(),
	})
	return s.respond(ctx, "Registration", req.GetEmail(), reply), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginCredentials) (*pb.ResponseString, error) {
	reply := s.relay.Login(ctx, req.GetEmail(), loginCredential(req))
	return s.respond(ctx, "Login", req.GetEmail(), reply), nil
}

func (s *GRPCServer) GetApiKey(ctx context.Context, req *pb.LoginCredentials) (*pb.ResponseString, error) {
	reply := s.relay.GetAPIKey(ctx, req.GetEmail(), loginCredential(req))
	return s.respond(ctx, "GetApiKey", req.GetEmail(), reply), nil
}

// respond logs the outcome and wraps the reply text. The text itself may be
// a token and is never logged.
func (s *GRPCServer) respond(ctx context.Context, method, email string, reply services.Reply) *pb.ResponseString {
	s.logger.Debug(ctx, "request processed", "method", method, "email", email, "outcome", reply.Kind.String())
	return &pb.ResponseString{Reply: reply.Text}
}

func loginCredential(req *pb.LoginCredentials) cryptox.TransportCredential {
	return cryptox.TransportCredential{
		EncryptedPassword: req.GetEncryptedPassword(),
		Nonce:             req.GetNonce(),
		Tag:               req.GetTag(),
	}
}
