// Package mode defines the editor modes and their cursor presentation.
//
// A Mode is a small comparable value. Normal, Insert, and Visual are
// fixed singletons; OperatorPending(op) carries the operator key that
// is waiting for a motion, so OperatorPending('d') != OperatorPending('y').
package mode
