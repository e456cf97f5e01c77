// Package commands defines the clothiq CLI and wires dependencies for subcommands.
//
// Commands
//
//   - shop               Open the terminal shop (default)
//   - signup             Register the local account
//   - login / logout     Start or end the local session
//   - profile show       Print the stored profile
//   - profile update     Edit name, email, mobile or password
//   - profile set-image  Set the profile picture (path or URL)
//   - products           List products for the home feed or given categories
//   - product            Show one product and related products
//
// # Implementation
//
// The root command loads config.yaml from the home directory, applies flag
// overrides, builds the zap logger and the dependency graph (app.Wire) before
// any subcommand runs. The logger writes to a file under the home directory
// because the shop owns the terminal.
package commands
