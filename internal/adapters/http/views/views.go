// Package views holds the admin HTML templates and the URL helpers they share
// with the handlers.
package views

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/jsamuelsen/content-admin/internal/app"
	"github.com/jsamuelsen/content-admin/internal/domain"
)

//go:embed templates/*.html templates/*/*.html
var templatesFS embed.FS

// ViewError is the template rendered for failures the admin UI cannot absorb.
const ViewError = "errors/error"

// Page is the data every admin template receives.
type Page struct {
	Title     string
	Flash     *app.Flash
	Content   *domain.Content
	Question  *domain.Question
	Questions []*domain.Question

	// Set only on the error page.
	Status    int
	Message   string
	RequestID string
}

// Templates parses the embedded admin templates.
func Templates() (*template.Template, error) {
	return template.New("admin").Funcs(Funcs()).ParseFS(templatesFS, "templates/*.html", "templates/*/*.html")
}

// Funcs exposes the path helpers to templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"questionsPath":    QuestionsPath,
		"questionPath":     QuestionPath,
		"newQuestionPath":  NewQuestionPath,
		"editQuestionPath": EditQuestionPath,
	}
}

// QuestionsPath is the Content's question collection.
func QuestionsPath(contentID domain.ContentID) string {
	return "/contents/" + url.PathEscape(contentID.String()) + "/questions"
}

// QuestionPath is a single Question.
func QuestionPath(contentID domain.ContentID, id domain.QuestionID) string {
	return QuestionsPath(contentID) + "/" + url.PathEscape(id.String())
}

// NewQuestionPath is the creation form.
func NewQuestionPath(contentID domain.ContentID) string {
	return QuestionsPath(contentID) + "/new"
}

// EditQuestionPath is the mutation form.
func EditQuestionPath(contentID domain.ContentID, id domain.QuestionID) string {
	return QuestionPath(contentID, id) + "/edit"
}

// LocationPath converts a redirect target into a URL path.
func LocationPath(loc app.Location) string {
	switch loc.Route {
	case app.RouteQuestionDetail:
		return QuestionPath(loc.ContentID, loc.QuestionID)
	case app.RouteQuestionNew:
		return NewQuestionPath(loc.ContentID)
	case app.RouteQuestionEdit:
		return EditQuestionPath(loc.ContentID, loc.QuestionID)
	default:
		return QuestionsPath(loc.ContentID)
	}
}
