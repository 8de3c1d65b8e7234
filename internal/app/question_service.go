package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/content-admin/internal/domain"
	"github.com/jsamuelsen/content-admin/internal/ports"
)

// QuestionService orchestrates Question use cases. Every operation first
// resolves the owning Content, so an unknown content_id is reported as
// domain.ErrNotFound for entity Content.
type QuestionService struct {
	questions ports.QuestionStore
	contents  ports.ContentStore
	logger    *slog.Logger
}

// QuestionServiceConfig contains the dependencies of QuestionService.
type QuestionServiceConfig struct {
	Questions ports.QuestionStore
	Contents  ports.ContentStore
	Logger    *slog.Logger
}

// NewQuestionService creates a new question service.
func NewQuestionService(cfg QuestionServiceConfig) *QuestionService {
	return &QuestionService{
		questions: cfg.Questions,
		contents:  cfg.Contents,
		logger:    cfg.Logger,
	}
}

// Content returns the owning Content.
func (s *QuestionService) Content(ctx context.Context, contentID domain.ContentID) (*domain.Content, error) {
	content, err := s.contents.FindContent(ctx, contentID)
	if err != nil {
		s.logFailure(ctx, "failed to find content", err, slog.String("content_id", contentID.String()))
		return nil, err
	}

	return content, nil
}

// List returns the Content and its Questions in insertion order.
func (s *QuestionService) List(ctx context.Context, contentID domain.ContentID) (*domain.Content, []*domain.Question, error) {
	content, err := s.Content(ctx, contentID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questions.ListQuestions(ctx, contentID)
	if err != nil {
		s.logFailure(ctx, "failed to list questions", err, slog.String("content_id", contentID.String()))
		return nil, nil, err
	}

	s.logger.DebugContext(ctx, "listed questions",
		slog.String("content_id", contentID.String()),
		slog.Int("count", len(questions)),
	)

	return content, questions, nil
}

// Find returns the Content and one of its Questions.
func (s *QuestionService) Find(ctx context.Context, contentID domain.ContentID, id domain.QuestionID) (*domain.Content, *domain.Question, error) {
	content, err := s.Content(ctx, contentID)
	if err != nil {
		return nil, nil, err
	}

	question, err := s.questions.FindQuestion(ctx, contentID, id)
	if err != nil {
		s.logFailure(ctx, "failed to find question", err,
			slog.String("content_id", contentID.String()),
			slog.String("question_id", id.String()),
		)

		return nil, nil, err
	}

	return content, question, nil
}

// Create validates input and persists a new Question under the Content.
// Invalid input returns domain.ErrValidation and writes nothing.
func (s *QuestionService) Create(ctx context.Context, contentID domain.ContentID, input QuestionInput) (*domain.Question, error) {
	if _, err := s.Content(ctx, contentID); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		s.logger.InfoContext(ctx, "rejected question",
			slog.String("content_id", contentID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	question, err := s.questions.CreateQuestion(ctx, contentID, input.Attrs())
	if err != nil {
		s.logFailure(ctx, "failed to create question", err, slog.String("content_id", contentID.String()))
		return nil, err
	}

	s.logger.InfoContext(ctx, "created question",
		slog.String("content_id", contentID.String()),
		slog.String("question_id", question.ID.String()),
	)

	return question, nil
}

// Update validates input and applies it to an existing Question.
// Invalid input returns domain.ErrValidation and leaves the Question unchanged.
func (s *QuestionService) Update(ctx context.Context, contentID domain.ContentID, id domain.QuestionID, input QuestionInput) (*domain.Question, error) {
	if _, err := s.Content(ctx, contentID); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		s.logger.InfoContext(ctx, "rejected question update",
			slog.String("content_id", contentID.String()),
			slog.String("question_id", id.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	question, err := s.questions.UpdateQuestion(ctx, contentID, id, input.Attrs())
	if err != nil {
		s.logFailure(ctx, "failed to update question", err,
			slog.String("content_id", contentID.String()),
			slog.String("question_id", id.String()),
		)

		return nil, err
	}

	s.logger.InfoContext(ctx, "updated question",
		slog.String("content_id", contentID.String()),
		slog.String("question_id", id.String()),
	)

	return question, nil
}

// Delete removes a Question. It returns domain.ErrNotFound when the Question
// is not in the Content's scope.
func (s *QuestionService) Delete(ctx context.Context, contentID domain.ContentID, id domain.QuestionID) error {
	if _, err := s.Content(ctx, contentID); err != nil {
		return err
	}

	if err := s.questions.DeleteQuestion(ctx, contentID, id); err != nil {
		s.logFailure(ctx, "failed to delete question", err,
			slog.String("content_id", contentID.String()),
			slog.String("question_id", id.String()),
		)

		return err
	}

	s.logger.InfoContext(ctx, "deleted question",
		slog.String("content_id", contentID.String()),
		slog.String("question_id", id.String()),
	)

	return nil
}

// logFailure logs lookup misses at info and everything else at error.
func (s *QuestionService) logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.Any("error", err))

	if domain.IsNotFound(err) {
		s.logger.InfoContext(ctx, msg, attrs...)
		return
	}

	s.logger.ErrorContext(ctx, msg, attrs...)
}
