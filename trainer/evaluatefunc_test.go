package trainer

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/langid/datasets"
	"github.com/neurlang/langid/language"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name     string
		count    map[string]int
		expected language.Language
		correct  int
		total    int
		accuracy float64
	}{
		{"all correct", map[string]int{"deu": 8}, language.German, 8, 8, 100},
		{"none correct", map[string]int{"eng": 4}, language.German, 0, 4, 0},
		{"three quarters", map[string]int{"fra": 3, "spa": 1}, language.French, 3, 4, 75},
		{"one third", map[string]int{"deu": 2, "eng": 1, "spa": 3}, language.English, 1, 6, 100.0 / 6},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeLines(t, "test.txt", mixed(tc.count)...)

			s, err := New(byCode, 0, nil).Evaluate(path, tc.expected)

			require.NoError(t, err)
			assert.Equal(t, tc.correct, s.Correct)
			assert.Equal(t, tc.total, s.Total)
			assert.InDelta(t, tc.accuracy, s.Accuracy(), 1e-9)
			assert.GreaterOrEqual(t, s.Accuracy(), 0.0)
			assert.LessOrEqual(t, s.Accuracy(), 100.0)
		})
	}
}

func TestEvaluateIgnoresLimit(t *testing.T) {
	path := writeLines(t, "test.txt", numbered("spa", 300)...)

	s, err := New(byCode, 10, nil).Evaluate(path, language.Spanish)

	require.NoError(t, err)
	assert.Equal(t, 300, s.Total)
	assert.Equal(t, 100.0, s.Accuracy())
}

func TestEvaluateUnrecognizedLabel(t *testing.T) {
	path := writeLines(t, "test.txt", "xyz foo", "deu bar")

	s, err := New(byCode, 0, nil).Evaluate(path, language.German)

	require.NoError(t, err)
	assert.Equal(t, Score{Correct: 1, Total: 2}, s)
}

func TestEvaluateErrors(t *testing.T) {
	t.Run("empty test set", func(t *testing.T) {
		m := new(MockClassifier)
		path := writeLines(t, "empty.txt")

		s, err := New(m, 0, nil).Evaluate(path, language.German)

		assert.True(t, errors.Is(err, ErrEmptyTestSet))
		assert.Equal(t, Score{}, s)
		m.AssertNotCalled(t, "Classify", mock.Anything)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := New(byCode, 0, nil).Evaluate(filepath.Join(t.TempDir(), "missing.txt"), language.German)

		assert.True(t, errors.Is(err, datasets.ErrSourceUnavailable))
		assert.False(t, errors.Is(err, ErrEmptyTestSet))
	})
}

func TestEvaluateUsesClassifier(t *testing.T) {
	path := writeLines(t, "test.txt", "Hola amigo", "Hello friend")
	m := new(MockClassifier)
	m.On("Classify", []string{"Hola", "amigo"}).Return(language.Spanish, 0.9).Once()
	m.On("Classify", []string{"Hello", "friend"}).Return(language.English, 0.8).Once()

	s, err := New(m, 0, nil).Evaluate(path, language.Spanish)

	require.NoError(t, err)
	assert.Equal(t, 50.0, s.Accuracy())
	m.AssertExpectations(t)
	m.AssertNotCalled(t, "Learn", mock.Anything, mock.Anything)
}

func TestScore(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Zero(t, Score{}.Accuracy())
		assert.Zero(t, Score{}.Margin(95))
	})

	t.Run("perfect score has no margin", func(t *testing.T) {
		s := Score{Correct: 10, Total: 10}

		assert.Equal(t, 100.0, s.Accuracy())
		assert.Zero(t, s.Margin(99))
	})

	t.Run("margin grows with confidence", func(t *testing.T) {
		s := Score{Correct: 50, Total: 100}

		assert.InDelta(t, 8.225, s.Margin(90), 1e-9)
		assert.InDelta(t, 9.8, s.Margin(95), 1e-9)
		assert.InDelta(t, 12.88, s.Margin(99), 1e-9)
	})
}
