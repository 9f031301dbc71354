package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment represents the binary sentiment class of a review
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// PositiveClass is the raw classifier output that maps to SentimentPositive.
const PositiveClass = 1

// SentimentFromClass maps a raw classifier class to a sentiment label
func SentimentFromClass(class int) Sentiment {
	if class == PositiveClass {
		return SentimentPositive
	}
	return SentimentNegative
}

// FeatureVector is a sparse numeric feature vector keyed by feature column.
// Columns absent from the map are zero.
type FeatureVector map[int]float64

// Prediction represents a single scored review
type Prediction struct {
	ID           uuid.UUID `json:"id"`
	Sentiment    Sentiment `json:"sentiment"`
	Confidence   float64   `json:"confidence"`
	OriginalText string    `json:"original_text"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewPrediction creates a Prediction for the given review text.
// OriginalText always carries the raw, unnormalized input.
func NewPrediction(sentiment Sentiment, confidence float64, originalText string) *Prediction {
	return &Prediction{
		ID:           uuid.New(),
		Sentiment:    sentiment,
		Confidence:   confidence,
		OriginalText: originalText,
		CreatedAt:    time.Now().UTC(),
	}
}

// IsPositive returns true if the review was classified as positive
func (p *Prediction) IsPositive() bool {
	return p.Sentiment == SentimentPositive
}
