// Package model defines the domain types and value objects for the
// color-pour CLI.
//
// This package contains pure data structures with no external dependencies:
// the Element value, the fixed container capacity, and the unified
// Condition error kinds reported by container operations.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
