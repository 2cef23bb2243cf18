// Package service provides the study service, the application layer between
// the HTTP API and the quiz engine. It validates incoming cards and answers,
// enforces request limits, owns the choice of random seed for each call, and
// reports generation outcomes through the event stream.
package service
