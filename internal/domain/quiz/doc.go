// Package quiz implements the quiz engine: unbiased shuffling, learn-mode and
// test-mode question generation, answer grading with optional fuzzy matching,
// and score aggregation.
//
// Every function in the package is pure apart from consuming the Rand passed
// to it. Nothing reads a global random generator, so generation is
// reproducible from a seed and safe to run concurrently with separate sources.
package quiz
