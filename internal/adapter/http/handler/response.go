package handler

import "github.com/gin-gonic/gin"

// ErrorResponse is the wire shape for every error the API returns
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}
