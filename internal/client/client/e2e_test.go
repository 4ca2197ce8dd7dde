package client

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/cryptox"
	"github.com/dmitrijs2005/ragrelay/internal/cryptox/cryptoxtest"
	"github.com/dmitrijs2005/ragrelay/internal/logging"
	"github.com/dmitrijs2005/ragrelay/internal/server/ragflow"
	"github.com/dmitrijs2005/ragrelay/internal/server/ragflow/ragflowtest"
	"github.com/dmitrijs2005/ragrelay/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	gs "github.com/dmitrijs2005/ragrelay/internal/server/grpc"
)

func startRelay(t *testing.T, downstreamURL string) *GRPCClient {
	t.Helper()

	_, keyPath := cryptoxtest.WritePublicKey(t)
	return startRelayWithKey(t, downstreamURL, keyPath)
}

func startRelayWithKey(t *testing.T, downstreamURL, keyPath string) *GRPCClient {
	t.Helper()

	codec, err := cryptox.NewTransportCodec(testKey)
	require.NoError(t, err)

	relay := services.NewRelayService(
		codec,
		cryptox.NewDownstreamCodec(cryptox.FileKeyLoader{Path: keyPath}),
		ragflow.NewClient(downstreamURL, &http.Client{Timeout: 2 * time.Second}),
		nil,
		logging.Nop(),
	)

	srv, err := gs.NewGRPCServer("bufconn", logging.Nop(), relay)
	require.NoError(t, err)

	lis := bufconn.Listen(1024 * 1024)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	c, err := NewRelayClient("passthrough:///bufnet", testKey,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		<-done
	})
	return c
}

func TestEndToEnd(t *testing.T) {
	priv, keyPath := cryptoxtest.WritePublicKey(t)
	fake := ragflowtest.New(t, priv)
	c := startRelayWithKey(t, fake.URL, keyPath)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reply, err := c.Login(ctx, "u1@example.com", "pw123")
	require.NoError(t, err)
	assert.Contains(t, reply, "not registered")

	reply, err = c.Register(ctx, "u2@example.com", "Bob", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "Bob, welcome aboard!", reply)

	reply, err = c.Login(ctx, "u2@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "Welcome back!", reply)

	reply, err = c.GetAPIKey(ctx, "u2@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "ragflow-abc123", reply)
}

func TestEndToEnd_DownstreamUnreachable(t *testing.T) {
	c := startRelay(t, "http://127.0.0.1:1")

	reply, err := c.Register(context.Background(), "u@example.com", "U", "pw123")
	require.NoError(t, err, "downstream faults must not surface as RPC errors")
	assert.Regexp(t, "^Request failed: ", reply)
}

func TestEndToEnd_InvalidUTF8Email(t *testing.T) {
	c := startRelay(t, "http://127.0.0.1:1")

	_, err := c.Login(context.Background(), "\xff\xfe", "pw123")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
