package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// StdinSource is the location that reads standard input.
const StdinSource = "-"

// NewHTTPClient returns a retrying client for remote sources. Transient
// failures (connection errors, 5xx, 429) are retried up to retryMax times.
func NewHTTPClient(timeout time.Duration, retryMax int) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = retryMax
	c.HTTPClient.Timeout = timeout
	c.Logger = nil // suppress retryablehttp's default logging
	return c
}

// IsRemote reports whether location is an http:// or https:// URL.
func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// open returns a reader for location. The caller closes it.
func (s *Scanner) open(ctx context.Context, location string) (io.ReadCloser, error) {
	switch {
	case location == StdinSource:
		return io.NopCloser(s.opts.Stdin), nil
	case IsRemote(location):
		return s.fetch(ctx, location)
	default:
		return openFile(location)
	}
}

// openFile opens a local file, rejecting directories up front so they report
// [NotReadable] rather than failing on the first read.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, classify(path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, &IOError{Source: path, Reason: NotReadable, Err: errors.New("is a directory")}
	}
	return f, nil
}

// fetch GETs url and returns the response body on a 2xx status.
func (s *Scanner) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &IOError{Source: url, Reason: NotReadable, Err: err}
	}
	req.Header.Set("Accept", "text/plain")

	slog.Debug("fetching remote source", "url", url)
	resp, err := s.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, &IOError{Source: url, Reason: NotReadable, Err: err}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Body, nil
	}
	resp.Body.Close()

	statusErr := fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return nil, &IOError{Source: url, Reason: NotFound, Err: statusErr}
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &IOError{Source: url, Reason: PermissionDenied, Err: statusErr}
	default:
		return nil, &IOError{Source: url, Reason: NotReadable, Err: statusErr}
	}
}
