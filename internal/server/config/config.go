// Package config handles configuration for the relay server: defaults, an
// optional JSON file, an optional dotenv file, the process environment and
// command-line flags, applied in that order.
package config

import (
	"errors"
	"time"
)

// DefaultTransportKey is the pre-shared key the reference clients ship with.
// NOTE: it is public knowledge and must be overridden outside development.
const DefaultTransportKey = "16byteslongkey!!"

// Config holds runtime settings for the relay server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DownstreamBaseURL: RAGFlow API root, e.g. "http://ragflow:9380".
//   - PublicKeyPath: PEM file with the RAGFlow RSA public key.
//   - TransportKey / TransportPassphrase / TransportSalt: pre-shared transport
//     key, either given directly or derived from a passphrase.
//   - DownstreamTimeout: upper bound for each downstream HTTP request.
//   - CachePublicKey: keep the parsed public key until the file changes.
//   - MetricsAddr: bind address for /metrics; empty disables it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC    string
	DownstreamBaseURL   string
	PublicKeyPath       string
	TransportKey        string
	TransportPassphrase string
	TransportSalt       string
	DownstreamTimeout   time.Duration
	CachePublicKey      bool
	MetricsAddr         string
	LogLevel            string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DownstreamBaseURL = "http://ragflow:9380"
	c.PublicKeyPath = "conf/public.pem"
	c.TransportKey = DefaultTransportKey
	c.DownstreamTimeout = 10 * time.Second
	c.CachePublicKey = true
	c.LogLevel = "info"
}

// Validate reports settings the relay cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.EndpointAddrGRPC == "" {
		errs = append(errs, errors.New("grpc address is empty"))
	}
	if c.DownstreamBaseURL == "" {
		errs = append(errs, errors.New("downstream base url is empty"))
	}
	if c.PublicKeyPath == "" {
		errs = append(errs, errors.New("public key path is empty"))
	}
	if c.TransportKey == "" && c.TransportPassphrase == "" {
		errs = append(errs, errors.New("neither transport key nor passphrase is set"))
	}
	if c.TransportPassphrase != "" && c.TransportSalt == "" {
		errs = append(errs, errors.New("transport passphrase requires a salt"))
	}
	if c.DownstreamTimeout <= 0 {
		errs = append(errs, errors.New("downstream timeout must be positive"))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, an optional dotenv file, the environment and
// finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
