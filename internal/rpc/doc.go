// Package rpc is a minimal JSON-RPC 2.0 client for the chain node: one
// request per data need, bounded by connect and response timeouts, never
// retried. The correlation id is the literal constant 1 because the tool
// makes at most one in-flight logical call per invocation.
package rpc
