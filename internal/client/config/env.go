package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// EnvConfig lists the environment variables the CLI understands.
type EnvConfig struct {
	ServerEndpointAddr  string        `env:"GRPC_ADDR" env-description:"relay address host:port"`
	TransportKey        string        `env:"GRPC_SECRET_KEY" env-description:"pre-shared AES key"`
	TransportPassphrase string        `env:"GRPC_SECRET_PASSPHRASE" env-description:"passphrase the AES key is derived from"`
	TransportSalt       string        `env:"GRPC_SECRET_SALT" env-description:"salt for the passphrase derivation"`
	CallTimeout         time.Duration `env:"GRPC_CALL_TIMEOUT" env-description:"deadline for one relay call"`
	DownstreamBaseURL   string        `env:"RAGFLOW_API_URL" env-description:"RAGFlow API root, for probe"`
}

func parseEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var e EnvConfig
	if err := cleanenv.ReadEnv(&e); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	setString(&cfg.ServerEndpointAddr, e.ServerEndpointAddr)
	setString(&cfg.TransportKey, e.TransportKey)
	setString(&cfg.TransportPassphrase, e.TransportPassphrase)
	setString(&cfg.TransportSalt, e.TransportSalt)
	setString(&cfg.DownstreamBaseURL, e.DownstreamBaseURL)
	if e.CallTimeout != 0 {
		cfg.CallTimeout = e.CallTimeout
	}
	return nil
}

// EnvUsage describes the environment variables, for --help output.
func EnvUsage() string {
	var e EnvConfig
	u, err := cleanenv.GetDescription(&e, nil)
	if err != nil {
		return ""
	}
	return u
}
