// Package commands defines the shardkit CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - key generate   Generate a key pair bound to a shard
//   - key put        Store a secret key in an encrypted keystore file
//   - key get        Recover a secret key from a keystore file
//   - key inspect    Describe a mini secret, secret, public key or address
//   - tx compose     Compose and sign a transaction against a node
//
// # Output
//
// Results are printed as a pretty JSON {"result": ...} envelope; failures as
// {"error":{"code","message"}} with exit status 1. The two shapes are
// disjoint so callers can branch without heuristics.
package commands
