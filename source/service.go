package source

import (
	"bytes"
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/tagmerge/merger"
)

const outputFileMode = 0644

// Service loads sources into a merged table and stores rendered output
type Service struct {
	fs     afs.Service
	logger zerolog.Logger
}

// New creates a source service
func New(fs afs.Service, logger zerolog.Logger) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{
		fs:     fs,
		logger: logger,
	}
}

// Load ingests the source at URL into table, the reader is released even when parsing fails
func (s *Service) Load(ctx context.Context, table *merger.Table, URL string) (*merger.Column, error) {
	reader, err := s.fs.OpenURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v: %w", URL, err)
	}
	defer reader.Close()

	column, err := table.Ingest(reader, URL)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().
		Str("source", URL).
		Str("column", column.Name).
		Int("records", len(column.Tags)).
		Msg("Loaded column")
	return column, nil
}

// LoadAll loads every URL in order, stopping at the first failure
func (s *Service) LoadAll(ctx context.Context, table *merger.Table, URLs ...string) error {
	for _, URL := range URLs {
		if _, err := s.Load(ctx, table, URL); err != nil {
			return err
		}
	}
	return nil
}

// Store uploads data to URL
func (s *Service) Store(ctx context.Context, URL string, data []byte) error {
	if err := s.fs.Upload(ctx, URL, outputFileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to store %v: %w", URL, err)
	}
	s.logger.Debug().
		Str("output", URL).
		Int("bytes", len(data)).
		Msg("Stored output")
	return nil
}
