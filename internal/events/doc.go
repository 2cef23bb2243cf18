// Package events provides the study event stream.
//
// Services emit events when a learn session or test is generated, when a
// test is graded, and when generation falls back from starred cards to the
// whole deck. Handlers subscribe without the services knowing about them.
//
// The primary components are:
// - Event: a typed, JSON-encoded notification
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
