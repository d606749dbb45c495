package domain

import "errors"

// ErrInvalidConfig is returned when a workflow or interaction is declared in a
// way that cannot be executed: a select without options, a default whose shape
// does not match the interaction kind, an out-of-range select default, or a
// duplicate action name.
var ErrInvalidConfig = errors.New("invalid interaction config")

// ErrEventsExhausted is returned by a scripted surface when its event queue
// runs out before the question is answered.
var ErrEventsExhausted = errors.New("scripted events exhausted")

// ErrActionFailed is returned by the runner when a script exits non-zero and
// the action does not set ignore_exit.
var ErrActionFailed = errors.New("action failed")

// ErrBagNotFound is returned by a VarStore when no bag exists under the
// requested name.
var ErrBagNotFound = errors.New("variable bag not found")
