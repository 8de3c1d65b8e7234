package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen/content-admin/internal/app"
)

// ContentAPIHandler exposes Content records as JSON.
type ContentAPIHandler struct {
	service *app.ContentService
}

// NewContentAPIHandler creates a new content API handler.
func NewContentAPIHandler(service *app.ContentService) *ContentAPIHandler {
	return &ContentAPIHandler{service: service}
}

// Register mounts the routes under rg, typically /api/v1.
func (h *ContentAPIHandler) Register(rg gin.IRouter) {
	contents := rg.Group("/contents")
	contents.GET("", h.List)
	contents.POST("", h.Create)
	contents.GET("/:"+ParamContentID, h.Get)
}

// List handles GET /api/v1/contents.
func (h *ContentAPIHandler) List(c *gin.Context) {
	contents, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewContentList(contents))
}

// Get handles GET /api/v1/contents/:content_id.
func (h *ContentAPIHandler) Get(c *gin.Context) {
	id, err := contentIDParam(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	content, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewContentResponse(content))
}

// Create handles POST /api/v1/contents.
func (h *ContentAPIHandler) Create(c *gin.Context) {
	var input app.ContentInput
	if err := dto.BindJSON(c, &input); err != nil {
		dto.AbortWithErrorCode(c, dto.ErrorCodeBadRequest, "request body must be a JSON object")
		return
	}

	content, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/contents/"+content.ID.String())
	c.JSON(http.StatusCreated, dto.NewContentResponse(content))
}
