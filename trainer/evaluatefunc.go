package trainer

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/langid/datasets"
	"github.com/neurlang/langid/language"
)

// ErrEmptyTestSet is returned when a test file has no lines to evaluate
var ErrEmptyTestSet = errors.New("empty test set")

// Score counts the lines of one evaluation run
type Score struct {
	Correct int
	Total   int
}

// Accuracy is the percentage of correct lines, 0 to 100. It is 0 for an empty score.
func (s Score) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct*100) / float64(s.Total)
}

// Margin returns the margin of error of Accuracy in percentage points at the
// given significance (90, 95 or 99).
func (s Score) Margin(significance byte) float64 {
	if s.Total == 0 {
		return 0
	}
	z := zScoreFromAlpha(100 - significance)
	p := float64(s.Correct) / float64(s.Total)
	return 100 * z * math.Sqrt(p*(1-p)/float64(s.Total))
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576 // 99% confidence
	case alpha <= 5:
		return 1.96 // 95% confidence
	case alpha <= 10:
		return 1.645 // 90% confidence
	default:
		return 1.96 // default fallback
	}
}

// Evaluate classifies every line of the file at path and counts how many come
// back as expected. A file without lines fails with ErrEmptyTestSet.
func (p *Pipeline) Evaluate(path string, expected language.Language) (Score, error) {
	var s Score
	_, err := datasets.Loop(path, 0, func(tokens []string) error {
		if predicted, _ := p.Classifier.Classify(tokens); predicted == expected {
			s.Correct++
		}
		s.Total++
		return nil
	})
	if err != nil {
		return Score{}, errors.WithMessagef(err, "evaluate %s", expected)
	}
	if s.Total == 0 {
		return Score{}, errors.WithMessagef(ErrEmptyTestSet, "evaluate %s: %s", expected, path)
	}
	p.log().Debug("language evaluated",
		zap.Stringer("language", expected),
		zap.String("source", path),
		zap.Int("correct", s.Correct),
		zap.Int("total", s.Total),
		zap.Float64("accuracy", s.Accuracy()),
		zap.Float64("margin95", s.Margin(95)))
	return s, nil
}
