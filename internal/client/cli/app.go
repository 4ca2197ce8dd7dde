package cli

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ragrelay/internal/buildinfo"
	"github.com/dmitrijs2005/ragrelay/internal/client/client"
	"github.com/dmitrijs2005/ragrelay/internal/client/config"
	"github.com/dmitrijs2005/ragrelay/internal/common"
	"github.com/spf13/cobra"
)

// dialFunc opens a relay client; replaced in tests.
type dialFunc func(cfg *config.Config) (client.Client, error)

func dialRelay(cfg *config.Config) (client.Client, error) {
	key, err := cfg.Key()
	if err != nil {
		return nil, err
	}
	return client.NewRelayClient(cfg.ServerEndpointAddr, key)
}

// App holds the state shared by all commands of one invocation.
type App struct {
	dial dialFunc
	cfg  *config.Config

	configPath string
	envFile    string
	addr       string
	key        string
	timeout    time.Duration
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{dial: dialRelay})
}

func newRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "ragrelay-client",
		Short:        "Talk to RAGFlow through the ragrelay credential relay",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "JSON config file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file")
	root.PersistentFlags().StringVarP(&a.addr, "addr", "a", "", "relay address host:port")
	root.PersistentFlags().StringVar(&a.key, "key", "", "transport key (raw, or base64: prefixed)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "deadline for one relay call")

	root.SetUsageTemplate(root.UsageTemplate() + "\nEnvironment:\n" + config.EnvUsage())

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.apiKeyCmd(),
		a.probeCmd(),
		versionCmd(),
	)
	return root
}

func (a *App) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("addr") {
		cfg.ServerEndpointAddr = a.addr
	}
	if cmd.Flags().Changed("key") {
		cfg.TransportKey = a.key
		cfg.TransportPassphrase = ""
	}
	if cmd.Flags().Changed("timeout") {
		cfg.CallTimeout = a.timeout
	}

	a.cfg = cfg
	return nil
}

// withRelay opens a relay client, runs fn under the call timeout and closes
// the client.
func (a *App) withRelay(ctx context.Context, fn func(ctx context.Context, c client.Client) (string, error)) (string, error) {
	c, err := a.dial(a.cfg)
	if err != nil {
		return "", err
	}
	defer c.Close()

	if a.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.CallTimeout)
		defer cancel()
	}

	return fn(ctx, c)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

// credentials collects email and password from flags, prompting for
// whatever is missing.
func credentials(cmd *cobra.Command, in *bufio.Reader, email, password *string) error {
	if *email == "" {
		v, err := GetSimpleText(in, "Email", cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("read email: %w", err)
		}
		*email = v
	}
	if *email == "" {
		return fmt.Errorf("email is required")
	}

	if *password == "" {
		pw, err := GetPassword(in, cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		*password = string(pw)
		common.WipeByteArray(pw)
	}
	return nil
}
