package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/flagx"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	defaultRagflowHost = "ragflow"
	defaultRagflowPort = "9380"
)

// EnvConfig lists the environment variables the relay understands. The
// names follow the docker-compose deployment the relay runs in.
type EnvConfig struct {
	GRPCPort            string        `env:"GRPC_PORT" env-description:"gRPC listen port"`
	RagflowAPIURL       string        `env:"RAGFLOW_API_URL" env-description:"RAGFlow API root URL"`
	RagflowHost         string        `env:"RAGFLOW_HOST" env-description:"RAGFlow host, used when RAGFLOW_API_URL is unset"`
	RagflowPort         string        `env:"SVR_HTTP_PORT" env-description:"RAGFlow HTTP port, used when RAGFLOW_API_URL is unset"`
	PublicKeyPath       string        `env:"PUBLIC_KEY_PATH" env-description:"RAGFlow RSA public key PEM"`
	TransportKey        string        `env:"GRPC_SECRET_KEY" env-description:"pre-shared AES key"`
	TransportPassphrase string        `env:"GRPC_SECRET_PASSPHRASE" env-description:"passphrase the AES key is derived from"`
	TransportSalt       string        `env:"GRPC_SECRET_SALT" env-description:"salt for the passphrase derivation"`
	DownstreamTimeout   time.Duration `env:"DOWNSTREAM_TIMEOUT" env-description:"downstream HTTP timeout"`
	CachePublicKey      string        `env:"CACHE_PUBLIC_KEY" env-description:"cache the parsed public key (true/false)"`
	MetricsAddr         string        `env:"METRICS_ADDR" env-description:"Prometheus listen address"`
	LogLevel            string        `env:"LOG_LEVEL" env-description:"debug, info, warn or error"`
}

// parseEnv loads the dotenv file named by -e/-env-file, if any, and then
// overlays the process environment. Variables already set in the process
// win over the dotenv file.
func parseEnv(config *Config) error {

	if envFile := flagx.EnvFileFlags(); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var e EnvConfig
	if err := cleanenv.ReadEnv(&e); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	return e.apply(config)
}

func (e *EnvConfig) apply(config *Config) error {
	if e.GRPCPort != "" {
		config.EndpointAddrGRPC = net.JoinHostPort("", e.GRPCPort)
	}

	switch {
	case e.RagflowAPIURL != "":
		config.DownstreamBaseURL = e.RagflowAPIURL
	case e.RagflowHost != "" || e.RagflowPort != "":
		host, port := e.RagflowHost, e.RagflowPort
		if host == "" {
			host = defaultRagflowHost
		}
		if port == "" {
			port = defaultRagflowPort
		}
		config.DownstreamBaseURL = "http://" + net.JoinHostPort(host, port)
	}

	setString(&config.PublicKeyPath, e.PublicKeyPath)
	setString(&config.TransportKey, e.TransportKey)
	setString(&config.TransportPassphrase, e.TransportPassphrase)
	setString(&config.TransportSalt, e.TransportSalt)
	setString(&config.MetricsAddr, e.MetricsAddr)
	setString(&config.LogLevel, e.LogLevel)

	if e.DownstreamTimeout != 0 {
		config.DownstreamTimeout = e.DownstreamTimeout
	}
	if e.CachePublicKey != "" {
		v, err := strconv.ParseBool(e.CachePublicKey)
		if err != nil {
			return fmt.Errorf("CACHE_PUBLIC_KEY: %w", err)
		}
		config.CachePublicKey = v
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
