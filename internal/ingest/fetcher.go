package ingest

import (
	"context"
	"time"
)

// Document is a fetched, cleaned block of text ready for analysis.
type Document struct {
	Source    string    `json:"source"`
	Title     string    `json:"title,omitempty"`
	Text      string    `json:"text"`
	WordCount int       `json:"word_count"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fetcher defines the interface for acquiring document text.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (*Document, error)
	Name() string
}

// MockFetcher returns controllable fixed text for development and testing.
type MockFetcher struct {
	Text  string
	Title string
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(_ context.Context, target string) (*Document, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	text := CleanText(m.Text)
	return &Document{
		Source:    target,
		Title:     m.Title,
		Text:      text,
		WordCount: wordCount(text),
		FetchedAt: time.Now(),
	}, nil
}
