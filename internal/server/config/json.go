package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/filex"
	"github.com/dmitrijs2005/ragrelay/internal/flagx"
	"github.com/dmitrijs2005/ragrelay/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "10s" and integer nanoseconds.
//
// Only fields present in the file override the current value.
type JsonConfig struct {
	EndpointAddrGRPC    string          `json:"endpoint_addr_grpc"`
	DownstreamBaseURL   string          `json:"downstream_base_url"`
	PublicKeyPath       string          `json:"public_key_path"`
	TransportKey        string          `json:"transport_key"`
	TransportPassphrase string          `json:"transport_passphrase"`
	TransportSalt       string          `json:"transport_salt"`
	DownstreamTimeout   *timex.Duration `json:"downstream_timeout"`
	CachePublicKey      *bool           `json:"cache_public_key"`
	MetricsAddr         string          `json:"metrics_addr"`
	LogLevel            string          `json:"log_level"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag. Without either flag nothing is loaded.
//
// A relative public_key_path is resolved against the directory of the JSON
// file, so a config and its key can be shipped side by side.
func parseJson(config *Config) error {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", jsonConfigFile, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	c.PublicKeyPath = filex.ResolveRelative(jsonConfigFile, c.PublicKeyPath)
	c.apply(config)
	return nil
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DownstreamBaseURL, c.DownstreamBaseURL)
	setString(&config.PublicKeyPath, c.PublicKeyPath)
	setString(&config.TransportKey, c.TransportKey)
	setString(&config.TransportPassphrase, c.TransportPassphrase)
	setString(&config.TransportSalt, c.TransportSalt)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.LogLevel, c.LogLevel)

	if c.DownstreamTimeout != nil {
		config.DownstreamTimeout = time.Duration(c.DownstreamTimeout.Duration)
	}
	if c.CachePublicKey != nil {
		config.CachePublicKey = *c.CachePublicKey
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
