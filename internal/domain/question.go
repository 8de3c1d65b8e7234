package domain

import (
	"strconv"
	"strings"
	"time"
)

// EntityQuestion is the entity name used in Question errors.
const EntityQuestion = "Question"

// QuestionID identifies a Question. IDs are assigned by the store.
type QuestionID int64

// String returns the decimal form used in URLs.
func (id QuestionID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseQuestionID parses a path parameter. Non-numeric ids such as "test"
// are reported as not found rather than as a malformed request.
func ParseQuestionID(raw string) (QuestionID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, NewNotFoundError(EntityQuestion, raw)
	}

	return QuestionID(n), nil
}

// Question belongs to exactly one Content and always has a title.
// A zero ID means the Question has not been saved yet.
type Question struct {
	ID        QuestionID
	ContentID ContentID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuestion returns an unsaved Question scoped to the given Content.
func NewQuestion(contentID ContentID) *Question {
	return &Question{ContentID: contentID}
}

// Persisted reports whether the store has assigned an identifier.
func (q *Question) Persisted() bool {
	return q.ID != 0
}

// Validate checks the Question invariants.
func (q *Question) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(q.Title) == "" {
		fields["title"] = "can't be blank"
	}

	if q.ContentID <= 0 {
		fields["content"] = "must exist"
	}

	if len(fields) > 0 {
		return NewValidationErrorWithFields(EntityQuestion, fields)
	}

	return nil
}

// QuestionAttrs are the mutable attributes of a Question.
type QuestionAttrs struct {
	Title string
}

// WithAttrs returns a copy of q with attrs applied. q itself is left untouched.
func (q *Question) WithAttrs(attrs QuestionAttrs) *Question {
	updated := *q
	updated.Title = strings.TrimSpace(attrs.Title)

	return &updated
}
