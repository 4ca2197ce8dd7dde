// Package services contains the server-side relay logic. RelayService turns
// a transport-encrypted credential into the downstream encoding, calls the
// RAGFlow API and maps its answer to a single reply string.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ragrelay/internal/common"
	"github.com/dmitrijs2005/ragrelay/internal/cryptox"
	"github.com/dmitrijs2005/ragrelay/internal/logging"
	"github.com/dmitrijs2005/ragrelay/internal/server/ragflow"
)

// Method names as they appear in logs and metrics.
const (
	MethodRegistration = "Registration"
	MethodLogin        = "Login"
	MethodGetAPIKey    = "GetApiKey"
)

// TransportDecoder opens credentials sealed by the relay client.
type TransportDecoder interface {
	Decode(cred cryptox.TransportCredential) (string, error)
}

// DownstreamEncoder produces the credential form the downstream API expects.
type DownstreamEncoder interface {
	Encode(plaintext string) (string, error)
}

// Downstream is the subset of the RAGFlow API the relay uses.
type Downstream interface {
	Register(ctx context.Context, email, nickname, password string) (*ragflow.Response, error)
	Login(ctx context.Context, email, password string) (*ragflow.Response, string, error)
	NewToken(ctx context.Context, authorization string) (*ragflow.Response, error)
}

// Recorder receives one observation per finished call.
type Recorder interface {
	ObserveCall(method, outcome string)
}

// RelayService is stateless apart from its injected collaborators and is
// safe for concurrent use.
type RelayService struct {
	transport  TransportDecoder
	downstream DownstreamEncoder
	api        Downstream
	recorder   Recorder
	logger     logging.Logger
}

// NewRelayService wires a relay. recorder may be nil.
func NewRelayService(t TransportDecoder, d DownstreamEncoder, api Downstream, r Recorder, l logging.Logger) *RelayService {
	if l == nil {
		l = logging.Nop()
	}
	return &RelayService{
		transport:  t,
		downstream: d,
		api:        api,
		recorder:   r,
		logger:     l.With("module", "relay"),
	}
}

// Register creates a downstream account for email with the given nickname.
func (s *RelayService) Register(ctx context.Context, email, name string, cred cryptox.TransportCredential) Reply {
	reply := s.register(ctx, email, name, cred)
	s.finish(ctx, MethodRegistration, reply)
	return reply
}

// Login authenticates email against the downstream.
func (s *RelayService) Login(ctx context.Context, email string, cred cryptox.TransportCredential) Reply {
	reply := s.login(ctx, email, cred)
	s.finish(ctx, MethodLogin, reply)
	return reply
}

// GetAPIKey logs in and asks the downstream for a fresh API token.
func (s *RelayService) GetAPIKey(ctx context.Context, email string, cred cryptox.TransportCredential) Reply {
	reply := s.getAPIKey(ctx, email, cred)
	s.finish(ctx, MethodGetAPIKey, reply)
	return reply
}

func (s *RelayService) register(ctx context.Context, email, name string, cred cryptox.TransportCredential) Reply {
	password, abort := s.reencode(ctx, cred)
	if abort != nil {
		return *abort
	}

	res, err := s.api.Register(ctx, email, name, password)
	if err != nil {
		return failedReply("Request failed", err)
	}
	return mapResponse(res)
}

func (s *RelayService) login(ctx context.Context, email string, cred cryptox.TransportCredential) Reply {
	password, abort := s.reencode(ctx, cred)
	if abort != nil {
		return *abort
	}

	res, _, err := s.api.Login(ctx, email, password)
	if err != nil {
		return failedReply("Request failed", err)
	}
	return mapResponse(res)
}

func (s *RelayService) getAPIKey(ctx context.Context, email string, cred cryptox.TransportCredential) Reply {
	password, abort := s.reencode(ctx, cred)
	if abort != nil {
		return *abort
	}

	res, authorization, err := s.api.Login(ctx, email, password)
	if err != nil {
		return failedReply("Request login failed", err)
	}
	if !res.OK() {
		return rejectedReply("Error logging in", res.Code, res.MessageOr(""))
	}
	if authorization == "" {
		return failedReply("Request login failed", common.ErrMissingAuthorization)
	}

	res, err = s.api.NewToken(ctx, authorization)
	if err != nil {
		return failedReply("Request getting new token failed", err)
	}
	if !res.OK() {
		return rejectedReply("Error getting new token", res.Code, res.MessageOr(""))
	}

	token, err := res.Token()
	if err != nil {
		return failedReply("Request getting new token failed", err)
	}
	return okReply(token)
}

// reencode turns the transport credential into the downstream credential.
// A non-nil Reply means the call must stop and answer with it.
func (s *RelayService) reencode(ctx context.Context, cred cryptox.TransportCredential) (string, *Reply) {
	plaintext, err := s.transport.Decode(cred)
	if err != nil {
		s.logger.Warn(ctx, "transport credential rejected", "error", err)
		return "", &Reply{Kind: ReplyInvalidCredential, Text: invalidCredentialAnswer}
	}

	password, err := s.downstream.Encode(plaintext)
	if err != nil {
		if errors.Is(err, common.ErrKeyLoad) {
			s.logger.Error(ctx, "downstream public key unavailable", "error", err)
			return "", &Reply{Kind: ReplyMisconfigured, Text: misconfiguredAnswer}
		}
		r := failedReply("Request failed", err)
		return "", &r
	}
	return password, nil
}

func mapResponse(res *ragflow.Response) Reply {
	if !res.OK() {
		return rejectedReply("Error", res.Code, res.MessageOr(""))
	}
	return okReply(res.MessageOr(defaultAnswer))
}

func (s *RelayService) finish(ctx context.Context, method string, reply Reply) {
	if s.recorder != nil {
		s.recorder.ObserveCall(method, reply.Kind.String())
	}
	s.logger.Debug(ctx, "relay call finished", "method", method, "outcome", reply.Kind.String(), "code", reply.Code)
}
