package artifact

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testVectorizer(t *testing.T) *TFIDFVectorizer {
	t.Helper()
	path := writeArtifact(t, "tfidf_vectorizer.json", `{
		"vocabulary": {"great": 0, "movie": 1, "terrible": 2, "acting": 3},
		"idf": [1.2, 1.0, 1.5, 1.3]
	}`)
	v, err := LoadTFIDFVectorizer(path)
	require.NoError(t, err)
	return v
}

func TestLoadTFIDFVectorizer(t *testing.T) {
	t.Run("loads valid artifact", func(t *testing.T) {
		v := testVectorizer(t)
		assert.Equal(t, 4, v.Dim())
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := LoadTFIDFVectorizer(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json returns error", func(t *testing.T) {
		path := writeArtifact(t, "bad.json", `not json`)
		_, err := LoadTFIDFVectorizer(path)
		assert.Error(t, err)
	})

	t.Run("empty vocabulary returns error", func(t *testing.T) {
		path := writeArtifact(t, "empty.json", `{"vocabulary": {}, "idf": []}`)
		_, err := LoadTFIDFVectorizer(path)
		assert.Error(t, err)
	})

	t.Run("idf size mismatch returns error", func(t *testing.T) {
		path := writeArtifact(t, "mismatch.json", `{"vocabulary": {"a": 0, "bb": 1}, "idf": [1.0]}`)
		_, err := LoadTFIDFVectorizer(path)
		assert.Error(t, err)
	})

	t.Run("out-of-range column returns error", func(t *testing.T) {
		path := writeArtifact(t, "range.json", `{"vocabulary": {"aa": 5}, "idf": [1.0]}`)
		_, err := LoadTFIDFVectorizer(path)
		assert.Error(t, err)
	})
}

func TestTFIDFVectorizer_Transform(t *testing.T) {
	v := testVectorizer(t)

	t.Run("produces l2-normalized weights", func(t *testing.T) {
		vec, err := v.Transform("great movie great")

		assert.NoError(t, err)
		assert.Len(t, vec, 2)

		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		assert.InDelta(t, 1.0, norm, 1e-9)

		// tf(great)=2 with the higher idf, so it outweighs movie.
		assert.Greater(t, vec[0], vec[1])
	})

	t.Run("ignores out-of-vocabulary tokens", func(t *testing.T) {
		vec, err := v.Transform("some unknown words and a great movie")

		assert.NoError(t, err)
		assert.Len(t, vec, 2)
	})

	t.Run("ignores single-character tokens", func(t *testing.T) {
		vec, err := v.Transform("a b c")

		assert.NoError(t, err)
		assert.Empty(t, vec)
	})

	t.Run("empty text yields empty vector", func(t *testing.T) {
		vec, err := v.Transform("")

		assert.NoError(t, err)
		assert.Empty(t, vec)
	})

	t.Run("weights scale with idf", func(t *testing.T) {
		vec, err := v.Transform("terrible acting")

		assert.NoError(t, err)
		// Equal term frequency, so the ratio of weights is the idf ratio.
		assert.InDelta(t, 1.5/1.3, vec[2]/vec[3], 1e-9)
		assert.False(t, math.IsNaN(vec[2]))
	})
}
