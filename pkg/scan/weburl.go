// pkg/scan/weburl.go

package scan

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"ada/pkg/ai"
)

// Pages can be huge; cap what we hand to the model.
const maxPageText = 8000

// IngestURL fetches a shared page, strips it down to readable text and runs
// the scan extraction on it.
func (s *Service) IngestURL(ctx context.Context, url string) (*ai.ExtractedContent, error) {
	text, err := fetchReadableText(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.ExtractText(ctx, text)
}

func fetchReadableText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("bad url: %w", err)
	}
	httpc := &http.Client{Timeout: 15 * time.Second}
	resp, err := httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching url: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching url: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing page: %w", err)
	}
	doc.Find("script, style, nav, footer, noscript").Remove()

	text := doc.Find("body").Text()
	text = collapseWhitespace(text)
	if text == "" {
		return "", fmt.Errorf("no readable text at %s", url)
	}
	if len(text) > maxPageText {
		text = text[:maxPageText]
	}
	return text, nil
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r':
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
		case '\n':
			if !lastSpace {
				b.WriteRune('\n')
			}
			lastSpace = true
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return strings.TrimSpace(b.String())
}
