package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// pathID reads a positive numeric path parameter. On failure the response
// is already written.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, domain.ErrInvalidFormat(name, raw, "positive integer"))
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional numeric query parameter; absent means zero.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.Respond(c, domain.ErrInvalidFormat(name, raw, "positive integer"))
		return 0, false
	}
	return uint(id), true
}

func invalidBody(c *gin.Context, err error) {
	httperr.WriteDetails(c, http.StatusBadRequest, domain.CodeInvalidFormat, "Invalid request body.", map[string]any{
		"field":    "body",
		"expected": "JSON object",
		"reason":   err.Error(),
	})
}
