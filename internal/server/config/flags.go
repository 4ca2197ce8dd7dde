package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ragrelay/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-u string     downstream base URL (e.g., "http://ragflow:9380")
//	-k string     RAGFlow public key PEM path
//	-s string     transport key (raw, or "base64:"-prefixed)
//	-t duration   downstream request timeout (e.g., "10s")
//	-m string     metrics bind address, empty disables /metrics
//	-l string     log level
//
// An explicit -s replaces any passphrase from earlier layers, so the given key
// is the one in use.
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so -c and -e handled elsewhere do not collide.
func parseFlags(config *Config) error {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-k", "-s", "-t", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DownstreamBaseURL, "u", config.DownstreamBaseURL, "RAGFlow API base URL")
	fs.StringVar(&config.PublicKeyPath, "k", config.PublicKeyPath, "RAGFlow public key path")
	fs.StringVar(&config.TransportKey, "s", config.TransportKey, "transport key")
	fs.DurationVar(&config.DownstreamTimeout, "t", config.DownstreamTimeout, "downstream request timeout")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics address")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "s" {
			config.TransportPassphrase = ""
			config.TransportSalt = ""
		}
	})
	return nil
}
