// Package cumprod computes the cumulative product of a sequence of numbers and converts such
// sequences to and from newline-delimited text.
//
// The transform itself is [Product]. [Read] and [Write] are the text boundary used by the cumprod
// command: values are typed as float64 as soon as they are parsed, and formatted with [Format] on
// the way out.
package cumprod
