package domain

import (
	"strconv"
	"strings"
	"time"
)

// EntityContent is the entity name used in Content errors.
const EntityContent = "Content"

// ContentID identifies a Content. IDs are assigned by the store.
type ContentID int64

// String returns the decimal form used in URLs.
func (id ContentID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseContentID parses a path parameter. Anything that is not a positive
// integer cannot name a stored Content and is reported as not found.
func ParseContentID(raw string) (ContentID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, NewNotFoundError(EntityContent, raw)
	}

	return ContentID(n), nil
}

// Content is the parent entity that owns an ordered collection of Questions.
type Content struct {
	ID        ContentID
	Title     string
	CreatedAt time.Time
}

// Validate checks the Content invariants.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return NewValidationError(EntityContent, "title", "can't be blank")
	}

	return nil
}
