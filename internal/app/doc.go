// Package app wires application dependencies for the CLI.
//
// It loads configuration from the environment, builds the logger and the
// courier-spec loader, and constructs the definition catalog the commands
// query.
package app
