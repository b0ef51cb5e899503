package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bitwild/webstack/internal/healthcheck"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Probe a running server",
	Long: `Probe a running server by requesting its root route. Exits zero when the
server answers with the greeting, non-zero otherwise.

Used as the container health check, and with --wait as a readiness gate
in scripts:

  webstack healthcheck                          # Single probe
  webstack healthcheck --wait 30s               # Block until ready
  webstack healthcheck --url http://app:8000/   # Probe another host`,
	Run: func(cmd *cobra.Command, args []string) {
		url, _ := cmd.Flags().GetString("url")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		wait, _ := cmd.Flags().GetDuration("wait")

		opts := healthcheck.Options{
			URL:     url,
			Timeout: timeout,
		}

		if wait > 0 {
			ctx, cancel := context.WithTimeout(context.Background(), wait)
			defer cancel()

			// Spinner while waiting
			s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
			s.Suffix = " Waiting for server..."
			s.Start()
			err := healthcheck.Wait(ctx, opts, time.Second)
			s.Stop()

			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println("Server is ready")
			return
		}

		if err := healthcheck.Probe(context.Background(), opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}
