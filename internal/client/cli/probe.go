package cli

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/ragrelay/internal/netx"
	"github.com/spf13/cobra"
)

// defaultProbeEndpoints are the RAGFlow routes the relay depends on, plus the
// health check.
var defaultProbeEndpoints = []string{
	"/v1/user/register",
	"/v1/user/login",
	"/v1/system/new_token",
	"/v1/system/healthz",
}

func (a *App) probeCmd() *cobra.Command {
	var baseURL string
	var relay bool

	cmd := &cobra.Command{
		Use:   "probe [endpoint...]",
		Short: "Check that RAGFlow serves the relay's endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = a.cfg.DownstreamBaseURL
			}
			endpoints := args
			if len(endpoints) == 0 {
				endpoints = defaultProbeEndpoints
			}

			out := cmd.OutOrStdout()
			failed := 0

			if relay {
				if err := netx.DialCheck(cmd.Context(), a.cfg.ServerEndpointAddr, netx.DialTimeout); err != nil {
					fmt.Fprintf(out, "relay %s → Unreachable (%v)\n", a.cfg.ServerEndpointAddr, err)
					failed++
				} else {
					fmt.Fprintf(out, "relay %s → Listening\n", a.cfg.ServerEndpointAddr)
				}
			}

			httpClient := &http.Client{}
			for _, ep := range endpoints {
				st, err := netx.CheckEndpoint(cmd.Context(), httpClient, baseURL, ep)
				if err != nil {
					fmt.Fprintf(out, "%s → Unreachable (%v)\n", st.URL, err)
					failed++
					continue
				}
				fmt.Fprintln(out, st.String())
				if !st.Active {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&baseURL, "base-url", "u", "", "RAGFlow API root (default from config)")
	cmd.Flags().BoolVar(&relay, "relay", false, "also check that the relay accepts TCP connections")
	return cmd
}
