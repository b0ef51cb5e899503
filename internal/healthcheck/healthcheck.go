package healthcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bitwild/webstack/internal/logging"
)

// DefaultTimeout bounds a single probe request.
const DefaultTimeout = 3 * time.Second

// Options configures a liveness probe against a running server.
type Options struct {
	URL     string
	Timeout time.Duration
}

// Probe performs a single GET against opts.URL and reports whether the
// server answered with a 200 and a non-empty body. Transport failures wrap
// logging.ErrConnection; bad answers wrap logging.ErrService.
func Probe(ctx context.Context, opts Options) error {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return fmt.Errorf("invalid probe URL: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: probe request failed: %v", logging.ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: probe failed with status %d", logging.ErrService, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return fmt.Errorf("%w: failed to read probe response: %v", logging.ErrConnection, err)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: probe returned an empty response", logging.ErrService)
	}

	return nil
}

// Wait polls the server until a probe succeeds or ctx expires. The last
// probe error is wrapped into the returned error on expiry.
func Wait(ctx context.Context, opts Options, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastErr error
	for {
		if lastErr = Probe(ctx, opts); lastErr == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("server did not become ready: %w", lastErr)
		case <-ticker.C:
		}
	}
}
