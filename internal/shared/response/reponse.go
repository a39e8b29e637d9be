package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bodies are single-key objects whose key names the outcome,
// e.g. {"NotFound": "Question not found"}. Existing clients match on
// these keys, so they are part of the API.
const (
	KeyCreated    = "Created"
	KeyOK         = "OK"
	KeyBadRequest = "BadRequest"
	KeyNotFound   = "NotFound"
	KeyError      = "error"
	KeyMessage    = "message"
)

// Message writes {key: msg} with the given status.
func Message(c *gin.Context, statusCode int, key, msg string) {
	c.JSON(statusCode, gin.H{key: msg})
}

// Data wraps a single resource: {"data": v}.
func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{"data": data})
}

// List writes a bare JSON array, never null.
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// Common responses
func Created(c *gin.Context, message string) {
	Message(c, http.StatusCreated, KeyCreated, message)
}

func OK(c *gin.Context, message string) {
	Message(c, http.StatusOK, KeyOK, message)
}

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, KeyBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, KeyNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Message(c, http.StatusInternalServerError, KeyError, message)
}
