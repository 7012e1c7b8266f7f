// Package chain provides a fluent wrapper around rop.Result for building
// short-circuiting chains with solo primitives.
//
// A chain carries either an Ok value that the next step consumes or an Err
// value that every later step passes along untouched. This is how early
// return is spelled here: a failing step ends the useful part of the chain
// and the error arrives at Finally or Result.
//
// Key operations:
// - Start/FromValue/FromPair: begin a chain from a Result, a value or (T, error)
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to Err
// - Map/MapErr: transform the Ok or Err value
// - Recover: replace an Err with the Result of a function
// - Ensure: run side effects on Ok without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
