// Package cli defines the Cobra command tree for the specforge CLI. The root
// command runs the interactive scaffolding wizard; version and doctor are the
// only subcommands. Command implementations delegate to internal packages for
// business logic and only handle flag parsing, I/O formatting, and user
// interaction.
package cli
