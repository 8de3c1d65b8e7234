package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-admin/internal/domain"
)

// Path parameter names shared by the admin and API routes.
const (
	ParamContentID  = "content_id"
	ParamQuestionID = "id"
)

func contentIDParam(c *gin.Context) (domain.ContentID, error) {
	return domain.ParseContentID(c.Param(ParamContentID))
}

func questionIDParam(c *gin.Context) (domain.QuestionID, error) {
	return domain.ParseQuestionID(c.Param(ParamQuestionID))
}
