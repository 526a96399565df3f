// Package config resolves the initializer's run settings from command-line
// flags and KICKOFF_* environment variables. Flags win over the environment.
package config
