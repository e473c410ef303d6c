package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope of the API.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}
