package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-screener/internal/fetch"
)

// FetchJobDescription retrieves a job description from a URL and returns its
// cleaned main text.
func FetchJobDescription(ctx context.Context, urlStr string) (string, error) {
	html, err := fetch.URL(ctx, urlStr)
	if err != nil {
		return "", err
	}
	text, err := fetch.ExtractMainText(html)
	if err != nil {
		return "", fmt.Errorf("failed to extract job description text: %w", err)
	}
	return CleanText(text), nil
}
