// Package flow provides conditionals and loops over rop.Bool.
//
// Every decision goes through rop.ExtractWith. Loops never recurse: each
// iteration is a step that returns the next step, and a plain for loop keeps
// calling steps until a condition selects the stop step. Stack depth stays
// constant however many iterations run.
//
// - IfElse/If(...).Else: pick one of two thunks
// - Then/ThenSome: lift a Bool into an Option
// - While/DoWhile/Repeat: trampolined loops
package flow
