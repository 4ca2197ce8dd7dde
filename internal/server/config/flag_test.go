package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/cryptox"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		initial   *Config
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-u", "http://localhost:9380", "-k", "/keys/public.pem",
			"-s", "0123456789abcdef", "-t", "4s", "-m", ":9100", "-l", "debug",
		},
			expected: &Config{
				EndpointAddrGRPC:  "127.0.0.1:9090",
				DownstreamBaseURL: "http://localhost:9380",
				PublicKeyPath:     "/keys/public.pem",
				TransportKey:      "0123456789abcdef",
				DownstreamTimeout: 4 * time.Second,
				MetricsAddr:       ":9100",
				LogLevel:          "debug",
			}},
		{name: "foreign flags are ignored", args: []string{"cmd", "-c", "cfg.json", "-e", ".env", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"}},
		{name: "explicit key drops passphrase", args: []string{"cmd", "-s", "0123456789abcdef"},
			initial:  &Config{TransportPassphrase: "envpass", TransportSalt: "envsalt"},
			expected: &Config{TransportKey: "0123456789abcdef"}},
		{name: "passphrase kept without key flag", args: []string{"cmd", "-l", "warn"},
			initial:  &Config{TransportPassphrase: "envpass", TransportSalt: "envsalt"},
			expected: &Config{TransportPassphrase: "envpass", TransportSalt: "envsalt", LogLevel: "warn"}},
		{name: "bad duration", args: []string{"cmd", "-t", "soon"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			if tt.initial != nil {
				*config = *tt.initial
			}
			err := parseFlags(config)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if diff := cmp.Diff(tt.expected, config); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig_KeyFlagOverridesEnvPassphrase(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("GRPC_SECRET_PASSPHRASE", "envpass")
	t.Setenv("GRPC_SECRET_SALT", "envsalt")
	os.Args = []string{"server", "-s", "0123456789abcdef"}

	c, err := LoadConfig()
	require.NoError(t, err)

	key, err := cryptox.ResolveTransportKey(c.TransportKey, c.TransportPassphrase, c.TransportSalt)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abcdef"), key)
}
