// Package domain contains the core study entities of the application: cards,
// the questions generated from them, test configuration and graded results.
// It is independent of any transport or storage mechanism.
package domain
