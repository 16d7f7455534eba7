package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const minContentLength = 50

// HTTPFetcher fetches a page, strips markup, and returns the cleaned text.
type HTTPFetcher struct {
	Client    *http.Client
	UserAgent string
	limiter   *rate.Limiter
}

// NewHTTPFetcher creates a fetcher with optional proxy support and a
// per-minute request budget shared across all fetches.
func NewHTTPFetcher(timeout time.Duration, requestsPerMinute int, userAgent, proxyURL string) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if requestsPerMinute < 1 {
		requestsPerMinute = 1
	}
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		UserAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
	}
}

func (f *HTTPFetcher) Name() string { return "http" }

// Fetch downloads the page at target and extracts its readable text.
func (f *HTTPFetcher) Fetch(ctx context.Context, target string) (*Document, error) {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid url: %s", target)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", target, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return nil, fmt.Errorf("fetch %s: unsupported content type %s", target, ct)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	text := extractText(doc)
	if len(text) < minContentLength {
		return nil, fmt.Errorf("fetch %s: insufficient content", target)
	}

	return &Document{
		Source:    target,
		Title:     title,
		Text:      text,
		WordCount: wordCount(text),
		FetchedAt: time.Now(),
	}, nil
}

// extractText strips non-content elements, then tries article-like
// containers before falling back to paragraph text.
func extractText(doc *goquery.Document) string {
	doc.Find("script, style, nav, footer, header, aside, form, button").Remove()

	for _, selector := range []string{"article", "main", "[role=main]", ".article-content", ".story-body"} {
		if sel := doc.Find(selector); sel.Length() > 0 {
			if text := paragraphText(sel); len(text) >= minContentLength {
				return text
			}
		}
	}
	return paragraphText(doc.Find("body"))
}

func paragraphText(sel *goquery.Selection) string {
	var paragraphs []string
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := strings.TrimSpace(p.Text()); t != "" {
			paragraphs = append(paragraphs, t)
		}
	})
	if len(paragraphs) == 0 {
		return CleanText(sel.Text())
	}
	return CleanText(strings.Join(paragraphs, "\n\n"))
}
