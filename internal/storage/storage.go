// Package storage provides the named-slot key-value persistence backing the
// data store. Each slot holds one opaque serialized document and is always
// written wholly; there is no partial update. Three drivers are available:
// an in-memory store for tests, a file store keeping one file per slot, and
// a SQLite store keeping all slots in a single table.
package storage

import (
	"errors"
	"fmt"
)

// Driver identifies a slot-store backend.
type Driver string

const (
	// DriverMemory is the in-memory test driver.
	DriverMemory Driver = "memory"
	// DriverFile stores each slot as a file under a root directory.
	DriverFile Driver = "file"
	// DriverSQLite stores all slots in one SQLite database file.
	DriverSQLite Driver = "sqlite"
)

// ErrUnknownDriver indicates an unrecognized driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Store is the interface for slot-store backends.
type Store interface {
	// Load returns the slot contents and whether the slot exists.
	Load(slot string) ([]byte, bool, error)
	// Save replaces the slot contents wholly.
	Save(slot string, data []byte) error
	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(slot string) error
	// Close releases backend resources.
	Close() error
}

// Open constructs a Store for the given driver. Path is the root directory
// for the file driver and the database file for the sqlite driver; the
// memory driver ignores it.
func Open(driver Driver, path string) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(path)
	case DriverSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
