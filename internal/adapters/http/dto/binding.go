package dto

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ErrBinding indicates the request body could not be decoded.
var ErrBinding = errors.New("binding failed")

// BindJSON decodes the JSON body into v. Attribute validation is left to
// the application layer so the admin UI and the API share one rule set.
func BindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindWith(v, binding.JSON); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return nil
}

// BindForm decodes a urlencoded or multipart form into v.
func BindForm(c *gin.Context, v any) error {
	if err := c.ShouldBindWith(v, binding.Form); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return nil
}
