package trainer

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/langid/language"
)

// ErrNoMajority is returned when two or more languages share the best accuracy
var ErrNoMajority = errors.New("no majority language")

// Vote is the outcome of Detect
type Vote struct {
	// Language is the winner, NoLanguage on a tie
	Language language.Language

	// Scores are indexed like language.All
	Scores [len(language.All)]Score
}

// Accuracy returns the winner's accuracy, 0 without a winner
func (v Vote) Accuracy() float64 {
	for i, l := range language.All {
		if l == v.Language {
			return v.Scores[i].Accuracy()
		}
	}
	return 0
}

// Detect evaluates the unlabeled file at path once per known language and
// picks the language the classifier assigns the most lines to. All languages
// are evaluated before deciding; a shared maximum fails with ErrNoMajority.
func (p *Pipeline) Detect(path string) (Vote, error) {
	var v Vote
	for i, l := range language.All {
		s, err := p.Evaluate(path, l)
		if err != nil {
			return Vote{}, err
		}
		v.Scores[i] = s
	}

	// every run reads the same lines, so Correct orders the accuracies
	best, ties := 0, 0
	for i, s := range v.Scores {
		switch {
		case s.Correct > v.Scores[best].Correct:
			best, ties = i, 0
		case i != best && s.Correct == v.Scores[best].Correct:
			ties++
		}
	}
	if ties > 0 {
		p.log().Warn("no majority language", zap.String("source", path), zap.Float64("accuracy", v.Scores[best].Accuracy()))
		return v, errors.WithMessagef(ErrNoMajority, "%s", path)
	}
	v.Language = language.All[best]
	p.log().Info("language detected",
		zap.Stringer("language", v.Language),
		zap.String("source", path),
		zap.Float64("accuracy", v.Accuracy()))
	return v, nil
}
