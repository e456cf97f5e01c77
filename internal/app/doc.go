// Package app wires application dependencies for the CLI and the shell.
//
// It loads Config (defaults overlaid with config.yaml), builds the zap logger,
// and constructs the concrete stores, catalog client and services, exposing
// them via the Wire struct. The embedded App is the narrow view that screens
// and commands use.
package app
