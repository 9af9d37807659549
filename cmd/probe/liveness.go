package probe

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github/cloex/go-exchange/internal/config"
)

const probeTimeout = 5 * time.Second

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Checks whether the local server process is alive",
		Long: `Performs a liveness probe against the management endpoint.

Hits /-/healthy of the locally running server and exits non-zero
when the server does not answer with 200.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool(verboseFlag)
			runProbe("/-/healthy", verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Print the probe response body")

	return cmd
}

func runProbe(path string, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	client := &http.Client{Timeout: probeTimeout}
	res, err := client.Get(probeURL(cfg.Echo.ListenAddress, path)) //nolint:noctx
	if err != nil {
		fmt.Fprintf(os.Stderr, "Probe %s failed: %v\n", path, err)
		os.Exit(1)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if verbose {
		fmt.Fprintln(os.Stdout, string(body))
	}

	if res.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Probe %s returned %d\n", path, res.StatusCode)
		os.Exit(1)
	}
}

// probeURL resolves the listen address to a local URL, mapping a bare ":port"
// to localhost.
func probeURL(listenAddress string, path string) string {
	host := listenAddress
	if len(host) > 0 && host[0] == ':' {
		host = "localhost" + host
	}
	return "http://" + host + path
}
