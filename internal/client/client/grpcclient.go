package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/common"
	"github.com/dmitrijs2005/ragrelay/internal/cryptox"
	pb "github.com/dmitrijs2005/ragrelay/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Channel settings of the reference client: pick_first balancing, no
// transparent retries, keepalive pings time out after 10s.
const (
	serviceConfig    = `{"loadBalancingConfig":[{"pick_first":{}}]}`
	keepaliveTime    = time.Minute
	keepaliveTimeout = 10 * time.Second
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.RagServicesClient
	codec       *cryptox.TransportCodec
}

// withRequestID tags the outgoing call with a request id unless the caller
// already set one.
func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
}

func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

// NewRelayClient connects lazily to the relay at endpointURL and seals
// passwords with key. Extra dial options are appended to the defaults.
func NewRelayClient(endpointURL string, key []byte, opts ...grpc.DialOption) (*GRPCClient, error) {
	codec, err := cryptox.NewTransportCodec(key)
	if err != nil {
		return nil, err
	}

	c := &GRPCClient{endpointURL: endpointURL, codec: codec}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultServiceConfig(serviceConfig),
		grpc.WithDisableRetry(),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{Time: keepaliveTime, Timeout: keepaliveTimeout}),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}

	conn, err := grpc.NewClient(s.endpointURL, append(dialOpts, opts...)...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewRagServicesClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, name, password string) (string, error) {

	cred, err := s.codec.Encode(password)
	if err != nil {
		return "", err
	}

	req := &pb.RegistrationCredentials{
		Email:             email,
		Name:              name,
		EncryptedPassword: cred.EncryptedPassword,
		Nonce:             cred.Nonce,
		Tag:               cred.Tag,
	}

	resp, err := s.client.Registration(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetReply(), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, error) {

	req, err := s.loginRequest(email, password)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetReply(), nil
}

// GetAPIKey returns a fresh RAGFlow API token, or the relay's explanation
// of why none was issued.
func (s *GRPCClient) GetAPIKey(ctx context.Context, email, password string) (string, error) {

	req, err := s.loginRequest(email, password)
	if err != nil {
		return "", err
	}

	resp, err := s.client.GetApiKey(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetReply(), nil
}

func (s *GRPCClient) loginRequest(email, password string) (*pb.LoginCredentials, error) {
	cred, err := s.codec.Encode(password)
	if err != nil {
		return nil, err
	}
	return &pb.LoginCredentials{
		Email:             email,
		EncryptedPassword: cred.EncryptedPassword,
		Nonce:             cred.Nonce,
		Tag:               cred.Tag,
	}, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.InvalidArgument, codes.Internal, codes.Unimplemented:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
