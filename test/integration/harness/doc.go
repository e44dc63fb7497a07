// Package harness provides utilities for fitick CLI integration tests:
// building the binary once per run, isolated FITICK_HOME environments,
// command execution with timeouts, and output assertions.
package harness
