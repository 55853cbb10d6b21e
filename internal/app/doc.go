// Package app wires configuration, the chain driver and the services
// consumed by the CLI.
package app
