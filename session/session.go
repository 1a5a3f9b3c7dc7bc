// Package session runs the line-by-line interactive classifier
package session

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/langid/datasets"
	"github.com/neurlang/langid/inference"
	"github.com/neurlang/langid/language"
)

const (
	// Prompt is written once when the session starts
	Prompt = "Please enter your sentences one by one to classify:"

	// Farewell is written when the session terminates
	Farewell = "Classifier has been terminated."
)

// State of a Session
type State byte

const (
	Reading State = iota
	Classifying
	Terminated
)

func (s State) String() string {
	switch s {
	case Reading:
		return "reading"
	case Classifying:
		return "classifying"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// IsSentinel reports whether the first token ends the session. The match is case-sensitive.
func IsSentinel(tokens []string) bool {
	return len(tokens) > 0 && (tokens[0] == "quit" || tokens[0] == "exit")
}

// Session reads sentences from In and writes the language of each to Out
type Session struct {
	classifier inference.Classifier
	in         *datasets.Reader
	out        io.Writer
	log        *zap.Logger
	state      State
}

// New creates a session over an already trained classifier
func New(c inference.Classifier, in io.Reader, out io.Writer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		classifier: c,
		in:         datasets.NewReader(in),
		out:        out,
		log:        log.With(zap.String("session", uuid.NewString())),
	}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Run writes the prompt and classifies lines until a sentinel, the end of
// input or an error.
func (s *Session) Run() error {
	if _, err := fmt.Fprintln(s.out, Prompt); err != nil {
		s.state = Terminated
		return errors.Wrap(err, "write prompt")
	}
	s.log.Info("session started")
	for s.state != Terminated {
		if _, _, err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step blocks for one line and handles it. It reports the language written
// for the line, or ok false when the session terminated instead.
func (s *Session) Step() (label language.Language, ok bool, err error) {
	if s.state == Terminated {
		return language.NoLanguage, false, nil
	}
	if !s.in.Next() {
		return language.NoLanguage, false, s.terminate("end of input", s.in.Err())
	}
	tokens := s.in.Tokens()
	if IsSentinel(tokens) {
		return language.NoLanguage, false, s.terminate("sentinel", nil)
	}

	s.state = Classifying
	label, confidence := s.classifier.Classify(tokens)
	if !label.Valid() {
		label = language.NoLanguage
	}
	s.log.Debug("sentence classified",
		zap.Strings("tokens", tokens),
		zap.Stringer("language", label),
		zap.Float64("confidence", confidence))
	if _, err := fmt.Fprintf(s.out, "Your sentence is '%s'\n", label); err != nil {
		s.state = Terminated
		return language.NoLanguage, false, errors.Wrap(err, "write result")
	}
	s.state = Reading
	return label, true, nil
}

func (s *Session) terminate(reason string, cause error) error {
	s.state = Terminated
	if cause != nil {
		s.log.Error("session aborted", zap.Error(cause))
		return cause
	}
	s.log.Info("session terminated", zap.String("reason", reason))
	if _, err := fmt.Fprintln(s.out, Farewell); err != nil {
		return errors.Wrap(err, "write farewell")
	}
	return nil
}
