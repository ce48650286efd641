// Package cli is a small framework for single-command programs built on the standard flag
// package.
//
// It adds what flag lacks for a typical Unix filter: flags may appear before or after positional
// arguments, long flags can carry a one-letter alias (-o and --output), required flags are
// enforced, and mistyped flags get suggestions.
package cli
