package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/config"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/registry"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// loadedRouter builds the full stack on real artifacts written to a temp dir.
func loadedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()

	vectorizerPath := filepath.Join(dir, "tfidf_vectorizer.json")
	require.NoError(t, os.WriteFile(vectorizerPath, []byte(
		`{"vocabulary": {"fantastic": 0, "loved": 1, "terrible": 2, "boring": 3}, "idf": [1.4, 1.2, 1.5, 1.1]}`,
	), 0o644))

	classifierPath := filepath.Join(dir, "sentiment_classifier.json")
	require.NoError(t, os.WriteFile(classifierPath, []byte(
		`{"coef": [2.1, 1.8, -2.4, -1.9], "intercept": 0.05}`,
	), 0o644))

	log := zap.NewNop()
	reg := registry.Load(&config.ModelConfig{
		VectorizerPath: vectorizerPath,
		ClassifierPath: classifierPath,
	}, log)
	require.True(t, reg.Ready())

	uc := usecase.NewPredictUsecase(reg, nil, log)
	return Setup(uc, reg, log)
}

// degradedRouter builds the stack with both artifacts missing.
func degradedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()

	log := zap.NewNop()
	reg := registry.Load(&config.ModelConfig{
		VectorizerPath: filepath.Join(dir, "missing_vectorizer.json"),
		ClassifierPath: filepath.Join(dir, "missing_classifier.json"),
	}, log)

	uc := usecase.NewPredictUsecase(reg, nil, log)
	return Setup(uc, reg, log)
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomePage(t *testing.T) {
	w := do(loadedRouter(t), "GET", "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "IMDB Movie Review Sentiment Analysis")
}

func TestPredictEndToEnd(t *testing.T) {
	r := loadedRouter(t)

	t.Run("positive review", func(t *testing.T) {
		w := do(r, "POST", "/predict", `{"review": "Fantastic movie, I loved it! 10/10"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var out usecase.PredictOutput
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "positive", out.Prediction)
		assert.Greater(t, out.Confidence, 0.0)
		assert.LessOrEqual(t, out.Confidence, 1.0)
		assert.Equal(t, "Fantastic movie, I loved it! 10/10", out.OriginalText)
	})

	t.Run("negative review", func(t *testing.T) {
		w := do(r, "POST", "/predict", `{"review": "Terrible and boring."}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var out usecase.PredictOutput
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "negative", out.Prediction)
	})

	t.Run("empty review is valid", func(t *testing.T) {
		w := do(r, "POST", "/predict", `{"review": ""}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing review field answers 400", func(t *testing.T) {
		w := do(r, "POST", "/predict", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		w := do(r, "POST", "/predict", `not json at all`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET answers 405", func(t *testing.T) {
		w := do(r, "GET", "/predict", "")

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("PUT answers 405", func(t *testing.T) {
		w := do(r, "PUT", "/predict", `{"review": "x"}`)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestPredictDegraded(t *testing.T) {
	r := degradedRouter(t)

	w := do(r, "POST", "/predict", `{"review": "a perfectly fine review"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["error"])
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("loaded registry", func(t *testing.T) {
		w := do(loadedRouter(t), "GET", "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var status map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "healthy", status["status"])
		assert.Equal(t, true, status["model_loaded"])
		assert.Equal(t, true, status["vectorizer_loaded"])
	})

	t.Run("degraded registry still answers 200", func(t *testing.T) {
		w := do(degradedRouter(t), "GET", "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var status map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "healthy", status["status"])
		assert.Equal(t, false, status["model_loaded"])
		assert.Equal(t, false, status["vectorizer_loaded"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	w := do(loadedRouter(t), "GET", "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
}
