// Package errors provides structured error handling for the simulation
// engine. Every public operation that fails returns an *Error carrying a
// Code that callers can map onto their own failure envelopes, plus optional
// metadata naming the offending field and value.
//
// The taxonomy is intentionally small: INVALID_ARGUMENT for bad parameters
// and malformed conditions, NOT_FOUND for missing content, FAILED_PRECONDITION
// for illegal state transitions, and INTERNAL for everything unexpected.
package errors
