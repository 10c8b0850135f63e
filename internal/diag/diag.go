// Package diag performs one-shot reachability checks against the configured
// backend services. There is no serving process to probe periodically, so
// unlike a server-side health subsystem these checks run once on demand,
// typically at CLI startup or via the check command.
package diag

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-faster/errors"
)

// Result is the outcome of probing one backend.
type Result struct {
	Name    string
	BaseURL string
	Latency time.Duration
	Err     error
}

// Healthy reports whether the probe succeeded.
func (r Result) Healthy() bool {
	return r.Err == nil
}

// CheckBackends probes every named base URL concurrently with a HEAD-like GET
// and reports per-backend results sorted by name. A backend is considered
// reachable when it answers with any status below 500 within the timeout.
func CheckBackends(ctx context.Context, timeout time.Duration, backends map[string]string) []Result {
	client := &http.Client{Timeout: timeout}

	results := make([]Result, 0, len(backends))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, baseURL := range backends {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := probe(ctx, client, name, baseURL)
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results
}

func probe(ctx context.Context, client *http.Client, name, baseURL string) Result {
	start := time.Now()
	result := Result{Name: name, BaseURL: baseURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		result.Err = errors.Wrap(err, "build probe request")
		return result
	}

	resp, err := client.Do(req)
	result.Latency = time.Since(start)
	if err != nil {
		result.Err = errors.Wrap(err, "probe")
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		result.Err = errors.Errorf("backend unhealthy: status %d", resp.StatusCode)
	}
	return result
}
