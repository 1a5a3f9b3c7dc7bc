package trainer

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/langid/datasets"
	"github.com/neurlang/langid/language"
)

// ErrUnknownLanguage is returned when training is asked for a label outside language.All
var ErrUnknownLanguage = errors.New("unknown language")

// Train teaches the classifier the first sentences of the file at path as
// examples of label, at most the pipeline limit. It returns how many
// sentences were learned.
func (p *Pipeline) Train(label language.Language, path string) (int, error) {
	if !label.Valid() {
		return 0, errors.WithMessagef(ErrUnknownLanguage, "train %d", label)
	}
	n, err := datasets.Loop(path, p.limit(), func(tokens []string) error {
		p.Classifier.Learn(label, tokens)
		return nil
	})
	if err != nil {
		return n, errors.WithMessagef(err, "train %s", label)
	}
	p.log().Info("language trained",
		zap.Stringer("language", label),
		zap.String("source", path),
		zap.Int("examples", n))
	return n, nil
}

// TrainAll trains every known language from the file source returns for it
func (p *Pipeline) TrainAll(source func(language.Language) string) error {
	for _, l := range language.All {
		if _, err := p.Train(l, source(l)); err != nil {
			return err
		}
	}
	return nil
}
