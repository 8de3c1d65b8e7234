package app

import "github.com/jsamuelsen/content-admin/internal/domain"

// View names a template rendered by the admin UI.
type View string

// Views rendered by QuestionResource.
const (
	ViewQuestionIndex View = "questions/index"
	ViewQuestionShow  View = "questions/show"
	ViewQuestionNew   View = "questions/new"
	ViewQuestionEdit  View = "questions/edit"
)

// Route names a redirect destination. Adapters turn a Location into a URL.
type Route int

// Redirect destinations within a Content's question collection.
const (
	RouteQuestionList Route = iota
	RouteQuestionDetail
	RouteQuestionNew
	RouteQuestionEdit
)

// Location is a redirect target. QuestionID is only set for detail and edit.
type Location struct {
	Route      Route
	ContentID  domain.ContentID
	QuestionID domain.QuestionID
}

// FlashKind classifies a one-time message.
type FlashKind string

// Flash kinds.
const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a one-time user-visible message attached to a redirect.
type Flash struct {
	Kind     FlashKind `json:"kind"`
	Messages []string  `json:"messages"`
}

// OutcomeKind discriminates Outcome.
type OutcomeKind int

// Outcome kinds.
const (
	OutcomeRendered OutcomeKind = iota
	OutcomeRedirected
	OutcomeFailed
)

// Outcome is the result of one admin operation: render a view, redirect
// (optionally with a flash), or fail with an error the adapter must surface.
type Outcome struct {
	Kind     OutcomeKind
	View     View
	Data     any
	Location Location
	Flash    *Flash
	Err      error
}

// Rendered returns an outcome that renders view with data.
func Rendered(view View, data any) Outcome {
	return Outcome{Kind: OutcomeRendered, View: view, Data: data}
}

// Redirected returns an outcome that redirects to loc. flash may be nil.
func Redirected(loc Location, flash *Flash) Outcome {
	return Outcome{Kind: OutcomeRedirected, Location: loc, Flash: flash}
}

// Failed returns an outcome carrying an error the operation could not absorb,
// such as an unknown Content or an unavailable store.
func Failed(err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Err: err}
}

// IndexData is the payload of ViewQuestionIndex.
type IndexData struct {
	Content   *domain.Content
	Questions []*domain.Question
}

// QuestionData is the payload of the show, new and edit views.
type QuestionData struct {
	Content  *domain.Content
	Question *domain.Question
}
