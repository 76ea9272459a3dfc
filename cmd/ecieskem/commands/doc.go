// Package commands defines the ecieskem CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen       Generate a recipient key pair and store it sealed
//   - pubkey       Print a stored public key in a chosen point format
//   - fingerprint  Print the fingerprint of a stored public key
//   - list         List stored public keys
//   - encap        Encapsulate a fresh symmetric key to a recipient
//   - decap        Recover the symmetric key with a stored private key
//
// # Implementation
//
// The root command loads configuration (flags, ECIESKEM_* environment,
// config.yaml under --home) and builds the store and key service before any
// subcommand runs. Byte values are hex on the command line.
package commands
