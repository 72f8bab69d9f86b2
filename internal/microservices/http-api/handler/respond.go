package handler

import (
	"errors"
	"net/http"
	"strconv"

	"tunahub/internal/microservices/http-api/dto"
	"tunahub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path segment. A value that cannot name a row is
// answered the same way as an id that names no row.
func parseID(c *gin.Context, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: entity + " matching query does not exist."})
		return 0, false
	}
	return id, true
}

// bindBody decodes a required-fields body, answering 400 on failure.
func bindBody(c *gin.Context, in interface{}) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return false
	}
	return true
}

// respondError maps service errors onto status codes. Unexpected errors
// are attached to the context for the access logger and hidden from the
// caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: err.Error()})
	case errors.Is(err, service.ErrReferenceNotFound):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
	}
}
