// Package inference defines the contract of the statistical engine the identifier is built on
package inference

import "github.com/neurlang/langid/language"

// Classifier learns labeled token sequences and predicts the label of new ones.
// Training with several labels must be allowed before the first Classify call,
// and Classify must not change the learned state.
type Classifier interface {

	// Learn records one example of the label
	Learn(label language.Language, features []string)

	// Classify returns the most likely label and the engine's confidence in it.
	// Labels the engine cannot map to a known language come back as NoLanguage.
	Classify(features []string) (label language.Language, confidence float64)
}
