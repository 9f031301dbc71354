// Package artifact loads the pre-trained model artifacts exported offline
// from the training pipeline and adapts them to the domain service
// interfaces. Both artifacts are plain JSON files; training and export are
// out of scope for this service.
package artifact

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/domain/entity"
)

// wordPattern matches maximal runs of word characters. Tokens shorter than
// two runes are discarded, matching the vectorizer's fitted tokenization.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// tfidfFile is the on-disk layout of the exported vectorizer artifact.
type tfidfFile struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// TFIDFVectorizer is a pre-fit term-frequency / inverse-document-frequency
// vectorizer over a fixed vocabulary. Immutable after load; safe for
// concurrent use.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// LoadTFIDFVectorizer reads an exported TF-IDF vectorizer artifact from path
// and validates its shape.
func LoadTFIDFVectorizer(path string) (*TFIDFVectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vectorizer: %w", err)
	}

	var file tfidfFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("vectorizer: invalid artifact: %w", err)
	}

	if len(file.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer: empty vocabulary in %s", path)
	}
	if len(file.IDF) != len(file.Vocabulary) {
		return nil, fmt.Errorf("vectorizer: idf length %d does not match vocabulary size %d",
			len(file.IDF), len(file.Vocabulary))
	}
	for term, col := range file.Vocabulary {
		if col < 0 || col >= len(file.IDF) {
			return nil, fmt.Errorf("vectorizer: term %q maps to out-of-range column %d", term, col)
		}
	}

	return &TFIDFVectorizer{
		vocabulary: file.Vocabulary,
		idf:        file.IDF,
	}, nil
}

// Dim returns the dimensionality of vectors produced by Transform.
func (v *TFIDFVectorizer) Dim() int {
	return len(v.idf)
}

// Transform converts normalized text into an L2-normalized sparse TF-IDF
// vector. Text with no in-vocabulary tokens yields an empty vector.
func (v *TFIDFVectorizer) Transform(text string) (entity.FeatureVector, error) {
	vec := make(entity.FeatureVector)

	for _, token := range wordPattern.FindAllString(text, -1) {
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		col, ok := v.vocabulary[token]
		if !ok {
			continue
		}
		vec[col]++
	}

	var norm float64
	for col := range vec {
		vec[col] *= v.idf[col]
		norm += vec[col] * vec[col]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for col := range vec {
			vec[col] /= norm
		}
	}

	return vec, nil
}
