package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/content-admin/internal/domain"
	"github.com/jsamuelsen/content-admin/internal/ports"
)

// ContentService orchestrates Content use cases.
type ContentService struct {
	contents ports.ContentStore
	logger   *slog.Logger
}

// ContentServiceConfig contains the dependencies of ContentService.
type ContentServiceConfig struct {
	Contents ports.ContentStore
	Logger   *slog.Logger
}

// NewContentService creates a new content service.
func NewContentService(cfg ContentServiceConfig) *ContentService {
	return &ContentService{
		contents: cfg.Contents,
		logger:   cfg.Logger,
	}
}

// Create validates input and persists a new Content.
func (s *ContentService) Create(ctx context.Context, input ContentInput) (*domain.Content, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	content, err := s.contents.CreateContent(ctx, strings.TrimSpace(input.Title))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create content", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "created content", slog.String("content_id", content.ID.String()))

	return content, nil
}

// Get returns one Content.
func (s *ContentService) Get(ctx context.Context, id domain.ContentID) (*domain.Content, error) {
	return s.contents.FindContent(ctx, id)
}

// List returns every Content in creation order.
func (s *ContentService) List(ctx context.Context) ([]*domain.Content, error) {
	contents, err := s.contents.ListContents(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list contents", slog.Any("error", err))
		return nil, err
	}

	return contents, nil
}
