// Package dataset generates the synthetic records shown by the demos.
//
// Every field is a pure function of the record's ordinal position: there is no
// randomness, so generating the same count twice yields identical slices.
// Records are plain values; callers never mutate them after generation.
package dataset
