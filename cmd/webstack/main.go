package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "webstack",
	Short: "Webstack - application server behind the reverse proxy",
	Long: `Webstack is the application server of the web stack. It serves the site
root over plain HTTP and is designed to run behind the bundled nginx
reverse proxy, which terminates TLS and forwards requests to it.`,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(healthcheckCmd)
	rootCmd.AddCommand(versionCmd)

	// Listener flags override APP_HOST/APP_PORT from the environment
	serveCmd.Flags().String("host", "", "Host to bind the listener to (default: 0.0.0.0)")
	serveCmd.Flags().Int("port", 0, "Port to bind the listener to (default: 8000)")

	healthcheckCmd.Flags().String("url", "http://127.0.0.1:8000/", "URL to probe")
	healthcheckCmd.Flags().Duration("timeout", 3*time.Second, "Timeout for a single probe request")
	healthcheckCmd.Flags().Duration("wait", 0, "Keep probing until the server is ready or this much time has passed")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
