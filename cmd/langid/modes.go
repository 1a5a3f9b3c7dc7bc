package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/langid/bayes"
	"github.com/neurlang/langid/config"
	"github.com/neurlang/langid/language"
	"github.com/neurlang/langid/session"
	"github.com/neurlang/langid/trainer"
)

// PathPrompt asks for the document of the detect mode
const PathPrompt = "Please enter a path to your input file:"

// train builds a classifier taught on every training file
func train(cfg *config.Config, log *zap.Logger) (*trainer.Pipeline, error) {
	c := bayes.New()
	p := trainer.New(c, cfg.Dataset.TrainLimit, log)
	if err := p.TrainAll(cfg.Dataset.TrainingFile); err != nil {
		return nil, err
	}
	log.Info("training finished", zap.Int("examples", c.Learned()))
	return p, nil
}

func evaluate(cfg *config.Config, log *zap.Logger, out io.Writer) error {
	p, err := train(cfg, log)
	if err != nil {
		return err
	}
	for _, l := range language.All {
		s, err := p.Evaluate(cfg.Dataset.TestFile(l), l)
		if err != nil {
			return err
		}
		if err := writeAccuracy(out, l, s.Accuracy()); err != nil {
			return err
		}
	}
	return nil
}

func interactive(cfg *config.Config, log *zap.Logger, in io.Reader, out io.Writer) error {
	p, err := train(cfg, log)
	if err != nil {
		return err
	}
	return session.New(p.Classifier, in, out, log).Run()
}

func detect(cfg *config.Config, log *zap.Logger, path string, in io.Reader, out io.Writer) error {
	p, err := train(cfg, log)
	if err != nil {
		return err
	}
	if path == "" {
		if path, err = askPath(in, out); err != nil {
			return err
		}
	}
	v, err := p.Detect(path)
	if errors.Is(err, trainer.ErrNoMajority) {
		_, err = fmt.Fprintln(out, "No single language dominates your document")
		return err
	}
	if err != nil {
		return err
	}
	return writeVote(out, v)
}

func askPath(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprintln(out, PathPrompt); err != nil {
		return "", err
	}
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", errors.Wrap(err, "read path")
		}
		return "", errors.New("no input file given")
	}
	path := strings.TrimRight(scanner.Text(), "\r")
	if path == "" {
		return "", errors.New("no input file given")
	}
	return path, nil
}

func writeAccuracy(w io.Writer, l language.Language, accuracy float64) error {
	_, err := fmt.Fprintf(w, "%-25s : %% %.4f\n", l.String()+" Language Accuracy", accuracy)
	return err
}

func writeVote(w io.Writer, v trainer.Vote) error {
	_, err := fmt.Fprintf(w, "Your document consists mostly of '%s' language with accuracy of %% %.4f\n", v.Language, v.Accuracy())
	return err
}
