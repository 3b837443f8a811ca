// Package fetch provides best-effort retrieval of the report's branding assets.
// Logo loading is bounded by a short timeout and is never fatal: callers fall
// back to a text label when it fails.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultLogoTimeout bounds the logo download. The decision between image and
// text fallback must land before any page is drawn, so the bound is short.
const DefaultLogoTimeout = 3 * time.Second

// maxLogoBytes caps the accepted asset size.
const maxLogoBytes = 2 << 20

// userAgent is the user agent string for asset requests.
const userAgent = "Mozilla/5.0 (compatible; CandidateReport/1.0)"

// Error represents a failure to retrieve an asset.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Logo downloads the logo image at urlStr, enforcing the timeout and a size
// cap. A non-image response is rejected. The returned bytes are nil only on
// error.
func Logo(ctx context.Context, urlStr string, timeout time.Duration) ([]byte, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	if timeout <= 0 {
		timeout = DefaultLogoTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes+1))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	if len(data) > maxLogoBytes {
		return nil, &Error{URL: urlStr, Message: "asset exceeds size limit"}
	}

	if kind := http.DetectContentType(data); !strings.HasPrefix(kind, "image/") {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("not an image: %s", kind)}
	}

	return data, nil
}

// LogoOrFallback wraps Logo for callers that only care about degradation: it
// returns the image bytes, or nil after logging why the text fallback will be
// used. An empty URL skips the fetch silently.
func LogoOrFallback(ctx context.Context, urlStr string, timeout time.Duration, verbose bool) []byte {
	if urlStr == "" {
		return nil
	}
	data, err := Logo(ctx, urlStr, timeout)
	if err != nil {
		if verbose {
			log.Printf("[FETCH] logo unavailable, falling back to text label: %v", err)
		}
		return nil
	}
	return data
}
