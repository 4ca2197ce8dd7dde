package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields left
// out of the file keep their current value.
type JsonConfig struct {
	ServerEndpointAddr  string          `json:"server_endpoint_addr"`
	TransportKey        string          `json:"transport_key"`
	TransportPassphrase string          `json:"transport_passphrase"`
	TransportSalt       string          `json:"transport_salt"`
	CallTimeout         *timex.Duration `json:"call_timeout"`
	DownstreamBaseURL   string          `json:"downstream_base_url"`
}

// parseJson overlays cfg with values from the JSON file at path. An empty
// path loads nothing.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setString(&cfg.TransportKey, jc.TransportKey)
	setString(&cfg.TransportPassphrase, jc.TransportPassphrase)
	setString(&cfg.TransportSalt, jc.TransportSalt)
	setString(&cfg.DownstreamBaseURL, jc.DownstreamBaseURL)
	if jc.CallTimeout != nil {
		cfg.CallTimeout = time.Duration(jc.CallTimeout.Duration)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
