package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/domain/entity"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/domain/service"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/cache"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/metrics"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/normalizer"
)

// Error definitions for the predict usecase
var (
	ErrModelUnavailable = errors.New("model not loaded properly")
	ErrInvalidInput     = errors.New("no review text provided")
)

// PredictionError wraps a scoring failure from the vectorizer or classifier.
// The underlying message passes through to the caller verbatim.
type PredictionError struct {
	cause error
}

// NewPredictionError wraps err as a scoring failure.
func NewPredictionError(err error) *PredictionError {
	return &PredictionError{cause: err}
}

func (e *PredictionError) Error() string {
	return e.cause.Error()
}

func (e *PredictionError) Unwrap() error {
	return e.cause
}

// PredictOutput represents the output of a prediction, in the wire shape
// returned by POST /predict.
type PredictOutput struct {
	Prediction   string  `json:"prediction"`
	Confidence   float64 `json:"confidence"`
	OriginalText string  `json:"original_text"`
}

// ModelRegistry provides read access to the loaded model artifacts
type ModelRegistry interface {
	Vectorizer() service.Vectorizer
	Classifier() service.Classifier
	Ready() bool
}

// Cache is an optional byte-level cache for serialized prediction results
type Cache interface {
	// Get returns the cached value, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// PredictUsecase defines the interface for sentiment prediction
type PredictUsecase interface {
	Predict(ctx context.Context, review string) (*PredictOutput, error)
}

type predictUsecase struct {
	registry ModelRegistry
	cache    Cache
	log      *zap.Logger
}

// NewPredictUsecase creates a new predict usecase. cache may be nil, in
// which case every request is scored from scratch.
func NewPredictUsecase(registry ModelRegistry, predictionCache Cache, log *zap.Logger) PredictUsecase {
	return &predictUsecase{
		registry: registry,
		cache:    predictionCache,
		log:      log,
	}
}

// Predict normalizes the review, vectorizes it and scores it against the
// loaded model. The empty string is a valid review and is scored like any
// other text. OriginalText in the output always echoes the raw input.
func (u *predictUsecase) Predict(ctx context.Context, review string) (*PredictOutput, error) {
	if !u.registry.Ready() {
		return nil, ErrModelUnavailable
	}

	key := cache.Key(review)
	if out := u.cachedOutput(ctx, key); out != nil {
		return out, nil
	}

	cleaned := normalizer.Clean(review)

	vec, err := u.registry.Vectorizer().Transform(cleaned)
	if err != nil {
		return nil, &PredictionError{cause: err}
	}

	class, err := u.registry.Classifier().Predict(vec)
	if err != nil {
		return nil, &PredictionError{cause: err}
	}

	probs, err := u.registry.Classifier().PredictProba(vec)
	if err != nil {
		return nil, &PredictionError{cause: err}
	}

	confidence := 0.0
	for _, p := range probs {
		if p > confidence {
			confidence = p
		}
	}

	prediction := entity.NewPrediction(entity.SentimentFromClass(class), confidence, review)
	metrics.PredictionsTotal.WithLabelValues(string(prediction.Sentiment)).Inc()

	out := toPredictOutput(prediction)
	u.storeOutput(ctx, key, out)

	return out, nil
}

// cachedOutput returns a previously computed output for the key, or nil.
// Cache failures are logged and treated as misses.
func (u *predictUsecase) cachedOutput(ctx context.Context, key string) *PredictOutput {
	if u.cache == nil {
		return nil
	}

	data, err := u.cache.Get(ctx, key)
	if err != nil {
		u.log.Warn("Prediction cache lookup failed", zap.Error(err))
		return nil
	}
	if data == nil {
		metrics.PredictionCacheHits.WithLabelValues("miss").Inc()
		return nil
	}

	var out PredictOutput
	if err := json.Unmarshal(data, &out); err != nil {
		u.log.Warn("Prediction cache entry is corrupt", zap.Error(err))
		return nil
	}

	metrics.PredictionCacheHits.WithLabelValues("hit").Inc()
	return &out
}

// storeOutput writes the output to the cache, best effort.
func (u *predictUsecase) storeOutput(ctx context.Context, key string, out *PredictOutput) {
	if u.cache == nil {
		return
	}

	data, err := json.Marshal(out)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, key, data); err != nil {
		u.log.Warn("Prediction cache store failed", zap.Error(err))
	}
}

func toPredictOutput(p *entity.Prediction) *PredictOutput {
	return &PredictOutput{
		Prediction:   string(p.Sentiment),
		Confidence:   p.Confidence,
		OriginalText: p.OriginalText,
	}
}
