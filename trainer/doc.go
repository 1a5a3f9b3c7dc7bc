// Package trainer feeds dataset files into a classifier and measures how well
// it identifies languages: bounded training per language, accuracy over a test
// file, and a majority vote across all known languages for unlabeled text.
package trainer
