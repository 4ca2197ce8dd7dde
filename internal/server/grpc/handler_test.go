package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/ragrelay/internal/cryptox"
	"github.com/dmitrijs2005/ragrelay/internal/logging"
	pb "github.com/dmitrijs2005/ragrelay/internal/proto"
	"github.com/dmitrijs2005/ragrelay/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relayCall struct {
	method string
	email  string
	name   string
	cred   cryptox.TransportCredential
}

type fakeRelay struct {
	reply services.Reply
	calls []relayCall
}

func (f *fakeRelay) Register(_ context.Context, email, name string, cred cryptox.TransportCredential) services.Reply {
	f.calls = append(f.calls, relayCall{method: "Register", email: email, name: name, cred: cred})
	return f.reply
}

func (f *fakeRelay) Login(_ context.Context, email string, cred cryptox.TransportCredential) services.Reply {
	f.calls = append(f.calls, relayCall{method: "Login", email: email, cred: cred})
	return f.reply
}

func (f *fakeRelay) GetAPIKey(_ context.Context, email string, cred cryptox.TransportCredential) services.Reply {
	f.calls = append(f.calls, relayCall{method: "GetAPIKey", email: email, cred: cred})
	return f.reply
}

func newTestServer(r Relay) *GRPCServer {
	s, _ := NewGRPCServer("", logging.Nop(), r)
	return s
}

func TestRegistration_PassesFieldsThrough(t *testing.T) {
	relay := &fakeRelay{reply: services.Reply{Kind: services.ReplyOK, Text: "Bob, welcome aboard!"}}
	s := newTestServer(relay)

	resp, err := s.Registration(context.Background(), &pb.RegistrationCredentials{
		Email:             "u2@example.com",
		Name:              "Bob",
		EncryptedPassword: "ct",
		Nonce:             "n",
		Tag:               "t",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob, welcome aboard!", resp.GetReply())

	require.Len(t, relay.calls, 1)
	assert.Equal(t, relayCall{
		method: "Register",
		email:  "u2@example.com",
		name:   "Bob",
		cred:   cryptox.TransportCredential{EncryptedPassword: "ct", Nonce: "n", Tag: "t"},
	}, relay.calls[0])
}

func TestLoginAndGetApiKey_FailuresAreReplies(t *testing.T) {
	relay := &fakeRelay{reply: services.Reply{Kind: services.ReplyRequestFailed, Text: "Request failed: boom"}}
	s := newTestServer(relay)
	req := &pb.LoginCredentials{Email: "e", EncryptedPassword: "ct", Nonce: "n", Tag: "t"}

	resp, err := s.Login(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Request failed: boom", resp.GetReply())

	resp, err = s.GetApiKey(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Request failed: boom", resp.GetReply())

	require.Len(t, relay.calls, 2)
	assert.Equal(t, "Login", relay.calls[0].method)
	assert.Equal(t, "GetAPIKey", relay.calls[1].method)
	assert.Equal(t, "ct", relay.calls[1].cred.EncryptedPassword)
}

func TestHandlers_LogOneDebugLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	relay := &fakeRelay{reply: services.Reply{Kind: services.ReplyOK, Text: "ragflow-abc123"}}
	s, err := NewGRPCServer("", logger, relay)
	require.NoError(t, err)

	_, err = s.GetApiKey(context.Background(), &pb.LoginCredentials{Email: "u@example.com"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"DEBUG"`)
	assert.Contains(t, lines[0], `"email":"u@example.com"`)
	assert.NotContains(t, buf.String(), "ragflow-abc123")
}

func TestHandlers_SilentAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	s, err := NewGRPCServer("", logger, &fakeRelay{})
	require.NoError(t, err)

	_, err = s.Login(context.Background(), &pb.LoginCredentials{Email: "u@example.com"})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
