// Package main provides the langid program. It trains a naive Bayes classifier on
// sentence files of German, English, French and Spanish, then either reports the
// accuracy on the labeled test files, classifies sentences typed one per line, or
// tells which language dominates a document.
package main
