package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/usecase"
)

// MapPredictError maps a usecase error to an HTTP status and client message.
// Scoring failures pass their message through verbatim.
func MapPredictError(err error) (int, string) {
	var predErr *usecase.PredictionError

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, usecase.ErrInvalidInput.Error()
	case errors.Is(err, usecase.ErrModelUnavailable):
		return http.StatusInternalServerError, usecase.ErrModelUnavailable.Error()
	case errors.As(err, &predErr):
		return http.StatusInternalServerError, predErr.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandlePredictError sends the JSON error response for a usecase error.
func HandlePredictError(c *gin.Context, err error) {
	status, message := MapPredictError(err)
	respondError(c, status, message)
}
