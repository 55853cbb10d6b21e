package main

import (
	"os"

	"shardkit/cmd/shardkit/commands"
	// Chain driver libraries register themselves here through side-effect
	// imports, e.g.:
	//
	//	_ "example.com/somechain/shardkitdriver"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
