package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/usecase"
)

// PredictHandler handles sentiment prediction requests
type PredictHandler struct {
	predictUC usecase.PredictUsecase
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(predictUC usecase.PredictUsecase) *PredictHandler {
	return &PredictHandler{predictUC: predictUC}
}

// PredictRequest is the request body for POST /predict. Review is a pointer
// so that an absent field can be told apart from an empty review: the empty
// string is valid input.
type PredictRequest struct {
	Review *string `json:"review"`
}

// Predict handles POST /predict. Malformed JSON and a missing review field
// both answer 400; every scoring-side failure answers 500.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, usecase.ErrInvalidInput.Error())
		return
	}
	if req.Review == nil {
		respondError(c, http.StatusBadRequest, usecase.ErrInvalidInput.Error())
		return
	}

	output, err := h.predictUC.Predict(c.Request.Context(), *req.Review)
	if err != nil {
		HandlePredictError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
