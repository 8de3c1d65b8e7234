package app

import (
	"context"
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen/content-admin/internal/domain"
)

// Flash messages shown by the admin UI.
const (
	MsgQuestionNotFound  = "Could not find the specified Question"
	MsgQuestionCreated   = "Question was successfully created."
	MsgQuestionUpdated   = "Question was successfully updated."
	MsgQuestionDestroyed = "Question was successfully destroyed."
)

// QuestionResource maps the admin question operations onto outcomes.
// A missing Question becomes a flash plus redirect and invalid input
// becomes a redirect back to the form. Only errors it cannot absorb,
// such as an unknown Content, come back as Failed.
type QuestionResource struct {
	service *QuestionService
}

// NewQuestionResource creates a resource backed by service.
func NewQuestionResource(service *QuestionService) *QuestionResource {
	return &QuestionResource{service: service}
}

// Index renders the Content's Questions in insertion order.
func (r *QuestionResource) Index(ctx context.Context, contentID domain.ContentID) Outcome {
	content, questions, err := r.service.List(ctx, contentID)
	if err != nil {
		return Failed(err)
	}

	return Rendered(ViewQuestionIndex, &IndexData{Content: content, Questions: questions})
}

// Show renders one Question, or redirects to the list when it does not exist.
func (r *QuestionResource) Show(ctx context.Context, contentID domain.ContentID, rawID string) Outcome {
	return r.lookup(ctx, contentID, rawID, ViewQuestionShow)
}

// New renders the creation form with an unsaved Question.
func (r *QuestionResource) New(ctx context.Context, contentID domain.ContentID) Outcome {
	content, err := r.service.Content(ctx, contentID)
	if err != nil {
		return Failed(err)
	}

	return Rendered(ViewQuestionNew, &QuestionData{Content: content, Question: domain.NewQuestion(contentID)})
}

// Edit renders the mutation form, with the same lookup contract as Show.
func (r *QuestionResource) Edit(ctx context.Context, contentID domain.ContentID, rawID string) Outcome {
	return r.lookup(ctx, contentID, rawID, ViewQuestionEdit)
}

// Create persists a new Question and redirects to it. Invalid input
// persists nothing and redirects back to the creation form.
func (r *QuestionResource) Create(ctx context.Context, contentID domain.ContentID, input QuestionInput) Outcome {
	question, err := r.service.Create(ctx, contentID, input)

	switch {
	case err == nil:
		return Redirected(
			Location{Route: RouteQuestionDetail, ContentID: contentID, QuestionID: question.ID},
			successFlash(MsgQuestionCreated),
		)
	case domain.IsValidation(err):
		return Redirected(Location{Route: RouteQuestionNew, ContentID: contentID}, validationFlash(err))
	default:
		return Failed(err)
	}
}

// Update applies input and redirects to the list. Invalid input leaves the
// Question unchanged and redirects back to the mutation form.
func (r *QuestionResource) Update(ctx context.Context, contentID domain.ContentID, rawID string, input QuestionInput) Outcome {
	id, err := domain.ParseQuestionID(rawID)
	if err != nil {
		return r.unparsableID(ctx, contentID, notFound(contentID))
	}

	_, err = r.service.Update(ctx, contentID, id, input)

	switch {
	case err == nil:
		return Redirected(Location{Route: RouteQuestionList, ContentID: contentID}, successFlash(MsgQuestionUpdated))
	case domain.IsValidation(err):
		return Redirected(
			Location{Route: RouteQuestionEdit, ContentID: contentID, QuestionID: id},
			validationFlash(err),
		)
	case isQuestionNotFound(err):
		return notFound(contentID)
	default:
		return Failed(err)
	}
}

// Destroy deletes the Question and redirects to the list. A Question that is
// already gone still redirects to the list.
func (r *QuestionResource) Destroy(ctx context.Context, contentID domain.ContentID, rawID string) Outcome {
	list := Location{Route: RouteQuestionList, ContentID: contentID}

	id, err := domain.ParseQuestionID(rawID)
	if err != nil {
		return r.unparsableID(ctx, contentID, Redirected(list, nil))
	}

	err = r.service.Delete(ctx, contentID, id)

	switch {
	case err == nil:
		return Redirected(list, successFlash(MsgQuestionDestroyed))
	case isQuestionNotFound(err):
		return Redirected(list, nil)
	default:
		return Failed(err)
	}
}

func (r *QuestionResource) lookup(ctx context.Context, contentID domain.ContentID, rawID string, view View) Outcome {
	id, err := domain.ParseQuestionID(rawID)
	if err != nil {
		return r.unparsableID(ctx, contentID, notFound(contentID))
	}

	content, question, err := r.service.Find(ctx, contentID, id)

	switch {
	case err == nil:
		return Rendered(view, &QuestionData{Content: content, Question: question})
	case isQuestionNotFound(err):
		return notFound(contentID)
	default:
		return Failed(err)
	}
}

// unparsableID returns fallback for an id that cannot name any Question,
// unless the Content itself is missing.
func (r *QuestionResource) unparsableID(ctx context.Context, contentID domain.ContentID, fallback Outcome) Outcome {
	if _, err := r.service.Content(ctx, contentID); err != nil {
		return Failed(err)
	}

	return fallback
}

func notFound(contentID domain.ContentID) Outcome {
	return Redirected(
		Location{Route: RouteQuestionList, ContentID: contentID},
		&Flash{Kind: FlashError, Messages: []string{MsgQuestionNotFound}},
	)
}

// isQuestionNotFound distinguishes a missing Question from a missing Content.
func isQuestionNotFound(err error) bool {
	var nf *domain.NotFoundError

	return errors.As(err, &nf) && nf.Entity == domain.EntityQuestion
}

func successFlash(msg string) *Flash {
	return &Flash{Kind: FlashSuccess, Messages: []string{msg}}
}

// validationFlash turns "title can't be blank" into "Title can't be blank".
func validationFlash(err error) *Flash {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Fields) == 0 {
		return &Flash{Kind: FlashError, Messages: []string{err.Error()}}
	}

	msgs := ve.Messages()
	for i, msg := range msgs {
		msgs[i] = capitalize(msg)
	}

	return &Flash{Kind: FlashError, Messages: msgs}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
