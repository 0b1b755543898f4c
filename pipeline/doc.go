// Package pipeline provides a generic ordered-stage runner over a shared
// mutable context value. A Pipeline[T] holds a named, reorderable list of
// Stage[T] and drives them in order each time Run is called, honoring each
// stage's applicability and failure classification.
//
// The package knows nothing about combat; it is the same "stages read/write
// a shared context" shape used for any staged transformation, instantiated
// by the engine package at T = *engine.StepContext.
package pipeline
