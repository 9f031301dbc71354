package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegistryStatus reports the load state of the model artifacts
type RegistryStatus interface {
	VectorizerLoaded() bool
	ClassifierLoaded() bool
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	registry RegistryStatus
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(registry RegistryStatus) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status           string `json:"status"`
	ModelLoaded      bool   `json:"model_loaded"`
	VectorizerLoaded bool   `json:"vectorizer_loaded"`
}

// Health handles GET /health. It always answers 200; a degraded registry
// shows up in the artifact booleans, not in the status code.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:           "healthy",
		ModelLoaded:      h.registry.ClassifierLoaded(),
		VectorizerLoaded: h.registry.VectorizerLoaded(),
	})
}
