package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileFetcher reads documents from the local filesystem.
type FileFetcher struct{}

// NewFileFetcher creates a new FileFetcher.
func NewFileFetcher() *FileFetcher { return &FileFetcher{} }

func (f *FileFetcher) Name() string { return "file" }

// Fetch reads and cleans the file at target.
func (f *FileFetcher) Fetch(ctx context.Context, target string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	text := CleanText(string(data))
	if text == "" {
		return nil, fmt.Errorf("document %s is empty after cleaning", target)
	}
	return &Document{
		Source:    target,
		Title:     filepath.Base(target),
		Text:      text,
		WordCount: wordCount(text),
		FetchedAt: time.Now(),
	}, nil
}
