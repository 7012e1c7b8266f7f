// Package rop implements Result[T, E], a two-variant sum type kept in a single
// untyped storage slot next to a machine-word discriminant, and the one
// primitive that is allowed to read that slot: ExtractWith.
//
// The discriminant only ever holds one of two bit patterns that are exact
// complements of each other. ExtractWith turns "discriminant + two
// continuations" into one continuation call by masking continuation indices
// with the discriminant instead of branching on it, then re-checks a seal on
// the selected continuation. A discriminant outside the two legal patterns is
// reported through the package zap logger at fatal level and terminates the
// process.
//
// Highlights:
// - Ok/Err/Some/None/True/False: construct values
// - ExtractWith: consume a value and run exactly one continuation
// - Unwrap/UnwrapErr/UnwrapOr/Expect...: accessors derived from ExtractWith
// - AsRef/AsMut: borrow projections that never consume the original
// - Drop/Discard: exactly-once payload destruction for Dropper payloads
// - And/Or/Xor/Not: boolean algebra on discriminant bits of Bool
// - Equal/Compare/Hash/String/Clone: value-semantics hooks that read the payload in place
//
// Combinators that need a fresh type parameter live in package solo, loops and
// conditionals in package flow, fluent chains in package chain.
package rop
