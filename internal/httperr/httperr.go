package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteError maps a core error to its HTTP shape. Business violations come
// back as 400 with their code, transient lock conflicts as 409 (retryable by
// the client), everything unexpected as a generic 500 with the detail only
// logged.
func WriteError(c *gin.Context, err error) {
	if IsNotFound(err) {
		NotFound(c, "not_found", err.Error())
		return
	}

	if IsForbidden(err) {
		Forbidden(c, "forbidden", "You do not have permission to perform this action.")
		return
	}

	if be, ok := AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		BadRequest(c, be.Code, msg)
		return
	}

	if IsTransientConflict(err) {
		Conflict(c, "conflict", "The resource is busy, please retry.")
		return
	}

	log.Printf("unexpected error: %v", err)
	Internal(c, "internal_error", "Something went wrong.")
}
