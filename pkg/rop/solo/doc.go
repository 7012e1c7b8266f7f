// Package solo contains the combinators of rop.Result that need a type
// parameter of their own. Every function here is written against
// rop.ExtractWith and the constructors; none of them can see storage.
//
// Highlights:
// - Map/MapErr/MapOr/MapOrElse: transform the live side only
// - AndThen/And/OrElse/Or: short-circuiting composition
// - Transpose/TransposeOption/Flatten: reshape nested values
// - Copied/Cloned: turn borrow projections into owned values
// - Insert/Take/Replace/GetOrInsert...: Option slot mutation
// - Filter/OkOr/IsSome/IsNone: Option helpers
// - Inspect/InspectErr: side effects without consuming
// - FromPair/ToPair: bridge to (T, error) returns
package solo
