// Package cmd provides the command-line interface for basekit.
//
// This package implements all CLI commands using the Cobra framework. The
// interactive commands are thin wrappers over the input package; the rest
// expose the numeric helpers for quick use from a shell.
//
// # Available Commands
//
//   - ask: Ask for a validated int, float, text, char or yes/no answer
//   - guess: Play a number guessing game against a seeded secret
//   - mul: Multiply two uint64 values, saturating on overflow
//   - approx: Compare two floats with absolute and relative tolerance
//   - sum: Sum a contiguous run of integers
//   - time: Time a sample workload and report per-iteration results
//   - config: Create, validate and show configuration
//   - version: Show build information
//
// # Command Examples
//
//	// Ask for a number in a range
//	basekit ask int --min 1 --max 5
//
//	// Ask for one of several words
//	basekit ask text --choices red,green,blue
//
//	// Time a workload and print a YAML report
//	basekit time --iterations 3 --format yaml
//
// # Configuration Integration
//
// Commands respect configuration from multiple sources in order of precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (BASEKIT_*), including those from .env files
//  3. Configuration file (.basekit.yml)
//  4. Default values (lowest priority)
//
// # Error Handling
//
// Invalid arguments are reported as validation errors with a non-zero exit
// status. Reaching the end of input while a question is open ends the
// command quietly with status zero.
package cmd
