package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen/content-admin/internal/adapters/http/flash"
	"github.com/jsamuelsen/content-admin/internal/adapters/http/middleware"
	"github.com/jsamuelsen/content-admin/internal/adapters/http/views"
	"github.com/jsamuelsen/content-admin/internal/app"
	"github.com/jsamuelsen/content-admin/internal/platform/logging"
)

var viewTitles = map[app.View]string{
	app.ViewQuestionIndex: "Questions",
	app.ViewQuestionShow:  "Question",
	app.ViewQuestionNew:   "New Question",
	app.ViewQuestionEdit:  "Edit Question",
}

// QuestionHandler serves the HTML admin pages for a Content's Questions.
// It turns each app.Outcome into a rendered page, a redirect carrying a
// flash cookie, or an error page.
type QuestionHandler struct {
	resource *app.QuestionResource
	flashes  *flash.Store
}

// NewQuestionHandler creates a new question admin handler.
func NewQuestionHandler(resource *app.QuestionResource, flashes *flash.Store) *QuestionHandler {
	return &QuestionHandler{
		resource: resource,
		flashes:  flashes,
	}
}

// Register mounts the admin routes:
//
//	GET    /contents/:content_id/questions
//	GET    /contents/:content_id/questions/new
//	GET    /contents/:content_id/questions/:id
//	GET    /contents/:content_id/questions/:id/edit
//	POST   /contents/:content_id/questions
//	PUT    /contents/:content_id/questions/:id   (also PATCH)
//	DELETE /contents/:content_id/questions/:id
func (h *QuestionHandler) Register(rg gin.IRouter) {
	questions := rg.Group("/contents/:" + ParamContentID + "/questions")
	questions.GET("", h.Index)
	questions.GET("/new", h.New)
	questions.GET("/:"+ParamQuestionID, h.Show)
	questions.GET("/:"+ParamQuestionID+"/edit", h.Edit)
	questions.POST("", h.Create)
	questions.PUT("/:"+ParamQuestionID, h.Update)
	questions.PATCH("/:"+ParamQuestionID, h.Update)
	questions.DELETE("/:"+ParamQuestionID, h.Destroy)
}

// Index lists the Content's Questions.
func (h *QuestionHandler) Index(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.respond(c, h.resource.Index(c.Request.Context(), contentID))
}

// Show renders a single Question.
func (h *QuestionHandler) Show(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.respond(c, h.resource.Show(c.Request.Context(), contentID, c.Param(ParamQuestionID)))
}

// New renders the creation form.
func (h *QuestionHandler) New(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.respond(c, h.resource.New(c.Request.Context(), contentID))
}

// Edit renders the mutation form.
func (h *QuestionHandler) Edit(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.respond(c, h.resource.Edit(c.Request.Context(), contentID, c.Param(ParamQuestionID)))
}

// Create handles the creation form submission.
func (h *QuestionHandler) Create(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	var input app.QuestionInput
	if err := dto.BindForm(c, &input); err != nil {
		h.renderBadRequest(c, err)
		return
	}

	h.respond(c, h.resource.Create(c.Request.Context(), contentID, input))
}

// Update handles the mutation form submission.
func (h *QuestionHandler) Update(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	var input app.QuestionInput
	if err := dto.BindForm(c, &input); err != nil {
		h.renderBadRequest(c, err)
		return
	}

	h.respond(c, h.resource.Update(c.Request.Context(), contentID, c.Param(ParamQuestionID), input))
}

// Destroy deletes a Question.
func (h *QuestionHandler) Destroy(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.respond(c, h.resource.Destroy(c.Request.Context(), contentID, c.Param(ParamQuestionID)))
}

func (h *QuestionHandler) respond(c *gin.Context, out app.Outcome) {
	switch out.Kind {
	case app.OutcomeRendered:
		page := views.Page{
			Title: viewTitles[out.View],
			Flash: h.flashes.Pop(c),
		}

		switch data := out.Data.(type) {
		case *app.IndexData:
			page.Content = data.Content
			page.Questions = data.Questions
		case *app.QuestionData:
			page.Content = data.Content
			page.Question = data.Question
		}

		c.HTML(http.StatusOK, string(out.View), page)

	case app.OutcomeRedirected:
		h.flashes.Set(c, out.Flash)

		// 303 makes the browser follow a form POST with a GET.
		status := http.StatusFound
		if c.Request.Method != http.MethodGet {
			status = http.StatusSeeOther
		}

		c.Redirect(status, views.LocationPath(out.Location))

	default:
		h.renderError(c, out.Err)
	}
}

func (h *QuestionHandler) renderError(c *gin.Context, err error) {
	status, resp := dto.MapDomainError(err)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("admin request failed", slog.Any("error", err))
	}

	_ = c.Error(err)

	c.HTML(status, views.ViewError, views.Page{
		Title:     http.StatusText(status),
		Status:    status,
		Message:   resp.Error.Message,
		RequestID: middleware.RequestIDFromContext(c.Request.Context()),
	})
}

func (h *QuestionHandler) renderBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)

	c.HTML(http.StatusBadRequest, views.ViewError, views.Page{
		Title:     http.StatusText(http.StatusBadRequest),
		Status:    http.StatusBadRequest,
		Message:   "the submitted form could not be read",
		RequestID: middleware.RequestIDFromContext(c.Request.Context()),
	})
}
