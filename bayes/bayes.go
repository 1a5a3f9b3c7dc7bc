// Package bayes adapts a naive Bayes text classifier to the inference contract
package bayes

import (
	"github.com/jbrukh/bayesian"

	"github.com/neurlang/langid/inference"
	"github.com/neurlang/langid/language"
)

// Classifier is a naive Bayes engine whose classes are exactly language.All
type Classifier struct {
	engine  *bayesian.Classifier
	classes []bayesian.Class
}

var _ inference.Classifier = (*Classifier)(nil)

// New creates an untrained classifier
func New() *Classifier {
	classes := make([]bayesian.Class, len(language.All))
	for i, l := range language.All {
		classes[i] = class(l)
	}
	return &Classifier{
		engine:  bayesian.NewClassifier(classes...),
		classes: classes,
	}
}

func class(l language.Language) bayesian.Class {
	return bayesian.Class(l.String())
}

// Learn records the features as one document of label. NoLanguage and
// unknown labels are ignored.
func (c *Classifier) Learn(label language.Language, features []string) {
	if !label.Valid() {
		return
	}
	c.engine.Learn(features, class(label))
}

// Classify returns the most probable language. The confidence is the
// posterior probability of that language, or 0 when it underflows.
func (c *Classifier) Classify(features []string) (language.Language, float64) {
	if c.engine.Learned() == 0 {
		return language.NoLanguage, 0
	}
	scores, inx, _, err := c.engine.SafeProbScores(features)
	if err != nil {
		_, inx, _ = c.engine.LogScores(features)
		return c.label(inx), 0
	}
	return c.label(inx), scores[inx]
}

// Learned returns the number of documents learned so far
func (c *Classifier) Learned() int {
	return c.engine.Learned()
}

func (c *Classifier) label(inx int) language.Language {
	if inx < 0 || inx >= len(c.classes) {
		return language.NoLanguage
	}
	return language.Parse(string(c.classes[inx]))
}
