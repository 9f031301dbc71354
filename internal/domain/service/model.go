package service

import "github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/domain/entity"

// Vectorizer maps normalized text to a fixed-dimensionality feature vector
type Vectorizer interface {
	// Transform converts normalized text into a sparse feature vector.
	// Empty or fully out-of-vocabulary text yields an empty vector.
	Transform(text string) (entity.FeatureVector, error)
}

// Classifier scores a feature vector against a pre-trained model
type Classifier interface {
	// Predict returns the raw class: 1 for positive, 0 for negative.
	Predict(vec entity.FeatureVector) (int, error)

	// PredictProba returns the class probability distribution in class
	// order (negative, positive). The values sum to 1.
	PredictProba(vec entity.FeatureVector) ([]float64, error)
}
