package artifact

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/domain/entity"
)

// logregFile is the on-disk layout of the exported classifier artifact.
type logregFile struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

// LogisticRegression is a pre-trained binary logistic-regression classifier.
// Class 1 is positive sentiment, class 0 negative. Immutable after load;
// safe for concurrent use.
type LogisticRegression struct {
	coef      []float64
	intercept float64
}

// LoadLogisticRegression reads an exported logistic-regression artifact from
// path and validates its shape.
func LoadLogisticRegression(path string) (*LogisticRegression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	var file logregFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("classifier: invalid artifact: %w", err)
	}

	if len(file.Coef) == 0 {
		return nil, fmt.Errorf("classifier: empty coefficient vector in %s", path)
	}

	return &LogisticRegression{
		coef:      file.Coef,
		intercept: file.Intercept,
	}, nil
}

// Dim returns the feature dimensionality the classifier was trained on.
func (m *LogisticRegression) Dim() int {
	return len(m.coef)
}

// Predict returns the predicted class: 1 (positive) if the positive-class
// probability is at least 0.5, otherwise 0 (negative).
func (m *LogisticRegression) Predict(vec entity.FeatureVector) (int, error) {
	p, err := m.positiveProba(vec)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

// PredictProba returns the probability distribution [P(negative), P(positive)].
func (m *LogisticRegression) PredictProba(vec entity.FeatureVector) ([]float64, error) {
	p, err := m.positiveProba(vec)
	if err != nil {
		return nil, err
	}
	return []float64{1 - p, p}, nil
}

func (m *LogisticRegression) positiveProba(vec entity.FeatureVector) (float64, error) {
	score := m.intercept
	for col, weight := range vec {
		if col < 0 || col >= len(m.coef) {
			return 0, fmt.Errorf("classifier: feature column %d out of range for model with %d features", col, len(m.coef))
		}
		score += m.coef[col] * weight
	}
	return sigmoid(score), nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
