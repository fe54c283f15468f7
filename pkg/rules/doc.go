// Package rules holds the field predicates used by the signup form together
// with the weighted password rule set and the strength scorer built on top of
// it. Every function here is pure: the same input always yields the same
// answer and nothing is mutated.
package rules
