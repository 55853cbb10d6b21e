// Package domain holds the core types, error taxonomy and external
// capability contracts shared by every other package in shardkit.
//
// The signing, sharding and address-encoding interfaces describe libraries
// this tool consumes but does not implement; see internal/chain for how a
// concrete chain library is bound into the binary.
package domain
