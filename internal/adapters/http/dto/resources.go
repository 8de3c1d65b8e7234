package dto

import (
	"time"

	"github.com/jsamuelsen/content-admin/internal/domain"
)

// ContentResponse is the JSON representation of a Content.
type ContentResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuestionResponse is the JSON representation of a Question.
type QuestionResponse struct {
	ID        int64     `json:"id"`
	ContentID int64     `json:"contentId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListResponse wraps a collection so the envelope can grow without breaking clients.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// NewContentResponse converts a domain Content.
func NewContentResponse(c *domain.Content) ContentResponse {
	return ContentResponse{
		ID:        int64(c.ID),
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
	}
}

// NewQuestionResponse converts a domain Question.
func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:        int64(q.ID),
		ContentID: int64(q.ContentID),
		Title:     q.Title,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// NewContentList converts Contents, preserving order.
func NewContentList(contents []*domain.Content) ListResponse[ContentResponse] {
	items := make([]ContentResponse, 0, len(contents))
	for _, c := range contents {
		items = append(items, NewContentResponse(c))
	}

	return ListResponse[ContentResponse]{Items: items}
}

// NewQuestionList converts Questions, preserving order.
func NewQuestionList(questions []*domain.Question) ListResponse[QuestionResponse] {
	items := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		items = append(items, NewQuestionResponse(q))
	}

	return ListResponse[QuestionResponse]{Items: items}
}
