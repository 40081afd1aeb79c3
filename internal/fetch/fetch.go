// Package fetch retrieves job-description pages over HTTP and extracts their
// main text content.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the screener to job boards.
	DefaultUserAgent = "Mozilla/5.0 (compatible; resume-screener/1.0)"
)

// Error wraps fetch failures with the URL they occurred on.
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

// URL retrieves the HTML content of a page.
func URL(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return string(body), nil
}

// jobPostingSelectors are tried in order to locate the posting body before
// falling back to the whole document body.
var jobPostingSelectors = []string{
	".job-description",
	".jobDescriptionContent",
	"#job-description",
	"article",
	"main",
}

// noiseSelectors name elements stripped before text extraction.
var noiseSelectors = []string{"script", "style", "nav", "header", "footer", "noscript"}

// ExtractMainText parses HTML and returns the main body text with noise
// elements removed.
func ExtractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}

	for _, selector := range jobPostingSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return sel.First().Text(), nil
		}
	}
	return doc.Find("body").Text(), nil
}
