// Package ports defines the interfaces the application layer depends on.
// Adapters (SQLite, PostgreSQL, mocks) implement them.
//
// Port conventions:
//   - Context as first parameter
//   - Domain types in, domain types out
//   - Failures reported with domain errors (ErrNotFound, ErrValidation, ...)
package ports

import (
	"context"

	"github.com/jsamuelsen/content-admin/internal/domain"
)

// ContentStore persists Content records.
type ContentStore interface {
	// CreateContent validates and inserts a Content, returning it with the
	// store-assigned ID and timestamp.
	// Returns domain.ErrValidation when the title is blank.
	CreateContent(ctx context.Context, title string) (*domain.Content, error)

	// FindContent returns the Content with the given ID.
	// Returns domain.ErrNotFound if it does not exist.
	FindContent(ctx context.Context, id domain.ContentID) (*domain.Content, error)

	// ListContents returns every Content in creation order.
	ListContents(ctx context.Context) ([]*domain.Content, error)
}

// QuestionStore persists Question records. Every lookup and mutation is scoped
// to the owning Content, so a Question is never reachable through another
// Content's path.
type QuestionStore interface {
	// ListQuestions returns the Content's Questions in insertion order.
	ListQuestions(ctx context.Context, contentID domain.ContentID) ([]*domain.Question, error)

	// FindQuestion returns a Question within the Content's scope.
	// Returns domain.ErrNotFound if it does not exist there.
	FindQuestion(ctx context.Context, contentID domain.ContentID, id domain.QuestionID) (*domain.Question, error)

	// CreateQuestion validates attrs and inserts a new Question.
	// Returns domain.ErrValidation without writing anything when attrs are invalid,
	// and domain.ErrNotFound when the Content does not exist.
	CreateQuestion(ctx context.Context, contentID domain.ContentID, attrs domain.QuestionAttrs) (*domain.Question, error)

	// UpdateQuestion validates attrs and applies them to an existing Question.
	// Returns domain.ErrValidation without writing anything when attrs are invalid,
	// and domain.ErrNotFound when the Question is not in the Content's scope.
	UpdateQuestion(ctx context.Context, contentID domain.ContentID, id domain.QuestionID, attrs domain.QuestionAttrs) (*domain.Question, error)

	// DeleteQuestion removes a Question immediately.
	// Returns domain.ErrNotFound if nothing was deleted.
	DeleteQuestion(ctx context.Context, contentID domain.ContentID, id domain.QuestionID) error
}

// Store is the full persistence collaborator: both record types, a readiness
// check, and a Close for shutdown.
type Store interface {
	ContentStore
	QuestionStore
	HealthChecker

	// Close releases the underlying database handle.
	Close() error
}
