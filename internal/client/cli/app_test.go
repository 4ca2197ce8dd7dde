package cli

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/client/client"
	"github.com/dmitrijs2005/ragrelay/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method   string
	email    string
	name     string
	password string
	deadline bool
}

type fakeClient struct {
	reply  string
	err    error
	calls  []call
	closed bool
}

func (f *fakeClient) record(ctx context.Context, c call) (string, error) {
	_, c.deadline = ctx.Deadline()
	f.calls = append(f.calls, c)
	return f.reply, f.err
}

func (f *fakeClient) Register(ctx context.Context, email, name, password string) (string, error) {
	return f.record(ctx, call{method: "Register", email: email, name: name, password: password})
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	return f.record(ctx, call{method: "Login", email: email, password: password})
}

func (f *fakeClient) GetAPIKey(ctx context.Context, email, password string) (string, error) {
	return f.record(ctx, call{method: "GetAPIKey", email: email, password: password})
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

type harness struct {
	fake    *fakeClient
	dialCfg *config.Config
	out     bytes.Buffer
}

func run(t *testing.T, h *harness, stdin string, args ...string) error {
	t.Helper()

	a := &App{dial: func(cfg *config.Config) (client.Client, error) {
		h.dialCfg = cfg
		return h.fake, nil
	}}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&h.out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	return cmd.Execute()
}

func TestRegisterCmd_Flags(t *testing.T) {
	h := &harness{fake: &fakeClient{reply: "Bob, welcome aboard!"}}

	err := run(t, h, "", "register", "-e", "u2@example.com", "-n", "Bob", "-p", "pw123")
	require.NoError(t, err)

	assert.Equal(t, "Bob, welcome aboard!\n", h.out.String())
	require.Len(t, h.fake.calls, 1)
	assert.Equal(t, call{method: "Register", email: "u2@example.com", name: "Bob", password: "pw123", deadline: true}, h.fake.calls[0])
	assert.True(t, h.fake.closed)
}

func TestRegisterCmd_Prompts(t *testing.T) {
	h := &harness{fake: &fakeClient{reply: "ok"}}

	err := run(t, h, "u3@example.com\ntyped-secret\nCarol\n", "register")
	require.NoError(t, err)

	require.Len(t, h.fake.calls, 1)
	assert.Equal(t, "u3@example.com", h.fake.calls[0].email)
	assert.Equal(t, "Carol", h.fake.calls[0].name)
	assert.Equal(t, "typed-secret", h.fake.calls[0].password)
}

func TestLoginAndAPIKeyCmds(t *testing.T) {
	h := &harness{fake: &fakeClient{reply: "Welcome back!"}}
	require.NoError(t, run(t, h, "", "login", "--email", "u@example.com", "--password", "pw"))
	assert.Equal(t, "Login", h.fake.calls[0].method)

	h.fake.reply = "ragflow-abc123"
	require.NoError(t, run(t, h, "", "apikey", "-e", "u@example.com", "-p", "pw"))
	assert.Equal(t, "GetAPIKey", h.fake.calls[1].method)
	assert.Equal(t, "Welcome back!\nragflow-abc123\n", h.out.String())
}

func TestRelayFailureReplyIsPrinted(t *testing.T) {
	h := &harness{fake: &fakeClient{reply: "Error 109: Email: u1@example.com is not registered!"}}

	require.NoError(t, run(t, h, "", "login", "-e", "u1@example.com", "-p", "pw123"))
	assert.Contains(t, h.out.String(), "not registered")
}

func TestRPCErrorFailsCommand(t *testing.T) {
	h := &harness{fake: &fakeClient{err: client.ErrUnavailable}}

	err := run(t, h, "", "login", "-e", "u@example.com", "-p", "pw")
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.True(t, h.fake.closed)
}

func TestEmptyEmailRejected(t *testing.T) {
	h := &harness{fake: &fakeClient{}}

	err := run(t, h, "\n", "login", "-p", "pw")
	assert.ErrorContains(t, err, "email is required")
	assert.Empty(t, h.fake.calls)
}

func TestLoginCmd_PipedCredentials(t *testing.T) {
	h := &harness{fake: &fakeClient{reply: "Welcome back!"}}

	require.NoError(t, run(t, h, "u@x\npw\n", "login"))

	require.Len(t, h.fake.calls, 1)
	assert.Equal(t, "u@x", h.fake.calls[0].email)
	assert.Equal(t, "pw", h.fake.calls[0].password)
	assert.Equal(t, "Welcome back!\n", h.out.String())
}

func TestPasswordPromptError(t *testing.T) {
	h := &harness{fake: &fakeClient{}}
	err := run(t, h, "", "apikey", "-e", "u@example.com")
	assert.ErrorContains(t, err, "read password")
	assert.Empty(t, h.fake.calls)
}

func TestPersistentFlagsOverrideConfig(t *testing.T) {
	h := &harness{fake: &fakeClient{}}

	err := run(t, h, "", "--addr", "relay:50061", "--key", "0123456789abcdef", "--timeout", "3s",
		"login", "-e", "e", "-p", "p")
	require.NoError(t, err)

	require.NotNil(t, h.dialCfg)
	assert.Equal(t, "relay:50061", h.dialCfg.ServerEndpointAddr)
	assert.Equal(t, "0123456789abcdef", h.dialCfg.TransportKey)
	assert.Equal(t, 3*time.Second, h.dialCfg.CallTimeout)
}

func TestVersionCmd(t *testing.T) {
	h := &harness{fake: &fakeClient{}}

	// a broken config must not matter for version
	require.NoError(t, run(t, h, "", "--config", "/nonexistent.json", "version"))
	assert.Contains(t, h.out.String(), "Build version: ")
}

func TestProbeCmd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":100,"message":"<MethodNotAllowed '405: Method Not Allowed'>"}`)
	})
	mux.HandleFunc("/nonexistent", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":100,"message":"<NotFound '404: Not Found'>"}`)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	h := &harness{fake: &fakeClient{}}
	require.NoError(t, run(t, h, "", "probe", "--base-url", ts.URL, "/v1/user/login"))
	assert.Equal(t, ts.URL+"/v1/user/login → Active (HTTP 200)\n", h.out.String())

	h.out.Reset()
	err := run(t, h, "", "probe", "-u", ts.URL, "/v1/user/login", "/nonexistent")
	assert.ErrorContains(t, err, "1 check(s) failed")
	assert.Contains(t, h.out.String(), "Invalid endpoint")
}

func TestProbeCmd_Relay(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	go func() {
		for {
			c, err := lis.Accept()
			if err != nil {
				return
			}
			_ = c.Close()
		}
	}()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":0}`)
	}))
	defer ts.Close()

	h := &harness{fake: &fakeClient{}}
	require.NoError(t, run(t, h, "", "-a", lis.Addr().String(), "probe", "--relay", "-u", ts.URL, "/v1/system/healthz"))
	assert.Contains(t, h.out.String(), "→ Listening")
}
