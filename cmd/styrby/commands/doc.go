// Package commands defines the styrby CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init    Create the passphrase-protected master-secret keystore
//   - send    Encrypt a message and store it under a session
//   - read    Fetch and decrypt a session's messages
//   - keygen  Print a random 32-byte key (test/ephemeral use only)
//
// # Implementation
//
// The root command builds the dependency graph (keystore, message store,
// message service) before any subcommand runs, so handlers share one app
// context.
package commands
