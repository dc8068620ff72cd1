package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const CodeStoreFailure = "store_failure"

// StatusFor maps a business error kind to its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Respond writes err to the client. Business errors are returned with their
// context; anything else is logged and answered with a generic 500 so that
// storage details never leak to callers.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		WriteDetails(c, StatusFor(be.Kind), be.Code, be.Message, be.Details)
		return
	}

	zap.L().Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString("requestID")),
		zap.Error(err),
	)
	Internal(c, CodeStoreFailure, "Something went wrong, please try again later.")
}
