package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen/content-admin/internal/adapters/http/views"
	"github.com/jsamuelsen/content-admin/internal/app"
)

// QuestionAPIHandler exposes the question operations as JSON. Unlike the
// admin pages, failures are reported with the standard error envelope.
type QuestionAPIHandler struct {
	service *app.QuestionService
}

// NewQuestionAPIHandler creates a new question API handler.
func NewQuestionAPIHandler(service *app.QuestionService) *QuestionAPIHandler {
	return &QuestionAPIHandler{service: service}
}

// Register mounts the routes under rg, typically /api/v1.
func (h *QuestionAPIHandler) Register(rg gin.IRouter) {
	questions := rg.Group("/contents/:" + ParamContentID + "/questions")
	questions.GET("", h.List)
	questions.POST("", h.Create)
	questions.GET("/:"+ParamQuestionID, h.Get)
	questions.PUT("/:"+ParamQuestionID, h.Update)
	questions.PATCH("/:"+ParamQuestionID, h.Update)
	questions.DELETE("/:"+ParamQuestionID, h.Delete)
}

// List handles GET /api/v1/contents/:content_id/questions.
//
// @Summary List questions
// @Tags questions
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.QuestionResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/contents/{content_id}/questions [get]
func (h *QuestionAPIHandler) List(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	_, questions, err := h.service.List(c.Request.Context(), contentID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionList(questions))
}

// Get handles GET /api/v1/contents/:content_id/questions/:id.
//
// @Summary Get a question
// @Tags questions
// @Produce json
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/contents/{content_id}/questions/{id} [get]
func (h *QuestionAPIHandler) Get(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	id, err := questionIDParam(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	_, question, err := h.service.Find(c.Request.Context(), contentID, id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionResponse(question))
}

// Create handles POST /api/v1/contents/:content_id/questions.
//
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/contents/{content_id}/questions [post]
func (h *QuestionAPIHandler) Create(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var input app.QuestionInput
	if err := dto.BindJSON(c, &input); err != nil {
		dto.AbortWithErrorCode(c, dto.ErrorCodeBadRequest, "request body must be a JSON object")
		return
	}

	question, err := h.service.Create(c.Request.Context(), contentID, input)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", "/api/v1"+views.QuestionPath(contentID, question.ID))
	c.JSON(http.StatusCreated, dto.NewQuestionResponse(question))
}

// Update handles PUT /api/v1/contents/:content_id/questions/:id.
//
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/contents/{content_id}/questions/{id} [put]
func (h *QuestionAPIHandler) Update(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	id, err := questionIDParam(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var input app.QuestionInput
	if err := dto.BindJSON(c, &input); err != nil {
		dto.AbortWithErrorCode(c, dto.ErrorCodeBadRequest, "request body must be a JSON object")
		return
	}

	question, err := h.service.Update(c.Request.Context(), contentID, id, input)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionResponse(question))
}

// Delete handles DELETE /api/v1/contents/:content_id/questions/:id.
//
// @Summary Delete a question
// @Tags questions
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/contents/{content_id}/questions/{id} [delete]
func (h *QuestionAPIHandler) Delete(c *gin.Context) {
	contentID, err := contentIDParam(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	id, err := questionIDParam(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), contentID, id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
