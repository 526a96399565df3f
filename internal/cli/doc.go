// Package cli defines the Cobra command tree for the kickoff initializer. The
// root command runs the initialization pipeline; subcommands only inspect it.
// Business logic lives in the internal packages, this package handles flags,
// logger setup and error reporting.
package cli
