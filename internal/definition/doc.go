// Package definition implements the per-format classification rule: a
// compiled pattern with named capture groups plus the serial parser,
// checksum validator and additional-information extractors bound to it.
//
// A Definition is built once from a courier's declarative spec and is
// immutable afterwards; Test is a pure function, safe to call from any
// number of goroutines. A nil Test result means the candidate is not this
// format at all, which is distinct from a result carrying validation errors.
package definition
