package config

import (
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/cryptox"
)

// Config holds runtime settings for the relay CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the relay gRPC endpoint.
//   - TransportKey / TransportPassphrase / TransportSalt: must match the relay.
//   - CallTimeout: deadline for one RPC.
//   - DownstreamBaseURL: RAGFlow API root, used by the probe command only.
type Config struct {
	ServerEndpointAddr  string
	TransportKey        string
	TransportPassphrase string
	TransportSalt       string
	CallTimeout         time.Duration
	DownstreamBaseURL   string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.TransportKey = "16byteslongkey!!"
	c.CallTimeout = 30 * time.Second
	c.DownstreamBaseURL = "http://localhost:9380"
}

// Key resolves the configured transport key material to AES key bytes.
func (c *Config) Key() ([]byte, error) {
	return cryptox.ResolveTransportKey(c.TransportKey, c.TransportPassphrase, c.TransportSalt)
}

// Load builds a Config from defaults, then the JSON file at jsonPath and the
// dotenv file at envFile (both optional, empty means skip), then the
// environment.
func Load(jsonPath, envFile string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, jsonPath); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, envFile); err != nil {
		return nil, err
	}
	return cfg, nil
}
