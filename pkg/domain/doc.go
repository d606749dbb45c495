// Package domain contains the value types shared across parley: the declarative
// action and interaction model, the variable bag, and the question/answer
// contract between the player and a prompt surface.
//
// Everything here is a plain value object constructed once from a parsed
// workflow and never mutated, with the single exception of VarBag, which grows
// monotonically over the life of one run.
package domain
