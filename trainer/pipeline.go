package trainer

import (
	"go.uber.org/zap"

	"github.com/neurlang/langid/inference"
)

// DefaultLimit is the number of sentences learned per language
const DefaultLimit = 200

// Pipeline trains and evaluates one classifier. Training must be complete
// before any evaluation starts; Pipeline does no locking.
type Pipeline struct {
	Classifier inference.Classifier

	// Limit caps the sentences learned per language, DefaultLimit when not positive
	Limit int

	Log *zap.Logger
}

// New creates a pipeline around c. A nil log discards all messages.
func New(c inference.Classifier, limit int, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{Classifier: c, Limit: limit, Log: log}
}

func (p *Pipeline) limit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}
	return p.Limit
}

func (p *Pipeline) log() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}
