// Package chain binds external chain libraries into the binary.
//
// A chain library owns the signature algorithm, key-pair math, address
// encoding, shard mapping and the transaction wire layout. It registers its
// domain.Chain implementation from an init function, database/sql style, and
// operators select it by name.
package chain

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"shardkit/internal/domain"
)

var (
	mu      sync.RWMutex
	drivers = map[string]domain.Chain{}
)

// Register makes a chain driver available under name. It panics on a nil
// driver or a duplicate name, mirroring database/sql.Register.
func Register(name string, c domain.Chain) {
	mu.Lock()
	defer mu.Unlock()
	if c == nil {
		panic("chain: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("chain: Register called twice for driver " + name)
	}
	drivers[name] = c
}

// Lookup returns the driver registered under name.
func Lookup(name string) (domain.Chain, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := drivers[name]
	if !ok {
		return nil, errors.Errorf("chain driver %q is not linked into this binary", name)
	}
	return c, nil
}

// Drivers returns the registered driver names, sorted.
func Drivers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
