// Package internal contains the implementation packages for basekit.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules.
//
// # Package Organization
//
//   - input: Validated, retrying extraction of values from a text stream
//   - shape: Type-set constraints and runtime shape classification
//   - overflow: Saturating unsigned multiplication
//   - floats: Approximate floating-point comparison
//   - sequence: Partial sums over slices
//   - random: Injectable random integers in inclusive ranges
//   - timer: Elapsed-time measurement and per-iteration reports
//   - config: Viper-backed configuration and the setup wizard
//   - errors: Structured error type shared by every package
//   - logging: Context-aware structured logging over log/slog
//   - version: Build information
//
// # Dependencies Between Packages
//
// errors and logging sit at the bottom and import nothing else from here.
// input builds on shape; config ties input, timer and logging together for
// the CLI in cmd.
package internal
