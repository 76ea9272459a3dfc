// Package app loads configuration and wires application dependencies for
// the CLI.
//
// Config is read with viper from defaults, an optional config.yaml under the
// home directory, ECIESKEM_* environment variables and bound command-line
// flags, in increasing order of precedence. NewWire builds the key store and
// the key service from a validated Config.
package app
