// Package registry holds the process-wide model artifacts. Loading happens
// exactly once at startup; afterwards the registry is read-only and safe for
// concurrent use from request handlers.
package registry

import (
	"go.uber.org/zap"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/adapter/artifact"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/domain/service"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/config"
)

// Registry holds the loaded vectorizer and classifier artifacts. A nil slot
// means the artifact failed to load; no retry is attempted for the lifetime
// of the process.
type Registry struct {
	vectorizer service.Vectorizer
	classifier service.Classifier
}

// Load attempts to load both model artifacts from their configured paths.
// Load failures are logged and recorded, never fatal: the service starts
// regardless and reports its degraded state through /health.
func Load(cfg *config.ModelConfig, log *zap.Logger) *Registry {
	r := &Registry{}

	vectorizer, err := artifact.LoadTFIDFVectorizer(cfg.VectorizerPath)
	if err != nil {
		log.Error("Failed to load vectorizer artifact",
			zap.String("path", cfg.VectorizerPath),
			zap.Error(err))
	} else {
		r.vectorizer = vectorizer
		log.Info("Vectorizer artifact loaded",
			zap.String("path", cfg.VectorizerPath),
			zap.Int("features", vectorizer.Dim()))
	}

	classifier, err := artifact.LoadLogisticRegression(cfg.ClassifierPath)
	if err != nil {
		log.Error("Failed to load classifier artifact",
			zap.String("path", cfg.ClassifierPath),
			zap.Error(err))
	} else if vectorizer != nil && classifier.Dim() != vectorizer.Dim() {
		// A classifier trained against a different vocabulary cannot score
		// this vectorizer's output; treat it as a failed load.
		log.Error("Classifier feature count does not match vectorizer",
			zap.Int("classifier_features", classifier.Dim()),
			zap.Int("vectorizer_features", vectorizer.Dim()))
	} else {
		r.classifier = classifier
		log.Info("Classifier artifact loaded",
			zap.String("path", cfg.ClassifierPath),
			zap.Int("features", classifier.Dim()))
	}

	return r
}

// Vectorizer returns the loaded vectorizer, or nil if loading failed.
func (r *Registry) Vectorizer() service.Vectorizer {
	return r.vectorizer
}

// Classifier returns the loaded classifier, or nil if loading failed.
func (r *Registry) Classifier() service.Classifier {
	return r.classifier
}

// VectorizerLoaded reports whether the vectorizer artifact is available.
func (r *Registry) VectorizerLoaded() bool {
	return r.vectorizer != nil
}

// ClassifierLoaded reports whether the classifier artifact is available.
func (r *Registry) ClassifierLoaded() bool {
	return r.classifier != nil
}

// Ready reports whether both artifacts are available. A partially loaded
// registry is not ready; predictions require the full pair.
func (r *Registry) Ready() bool {
	return r.vectorizer != nil && r.classifier != nil
}
