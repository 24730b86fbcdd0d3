// Package idgen supplies the unique identifiers stamped on mapped responses.
package idgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Supported identifier formats.
const (
	FormatUUID = "uuid"
	FormatULID = "ulid"
)

// ErrUnknownFormat indicates an unsupported identifier format.
var ErrUnknownFormat = errors.New("unknown id format")

// Generator produces a fresh identifier on every call. Implementations must be
// safe for concurrent use and must not return the same value twice.
type Generator interface {
	NewID() string
}

// Func adapts a plain function to Generator.
type Func func() string

// NewID calls f.
func (f Func) NewID() string {
	return f()
}

// UUID generates random (version 4) UUIDs.
type UUID struct{}

// NewID returns a new UUIDv4 string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// ULID generates lexicographically sortable identifiers.
type ULID struct{}

// NewID returns a new ULID string.
func (ULID) NewID() string {
	return ulid.Make().String()
}

// New returns the generator for the given format. An empty format selects UUID.
func New(format string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatUUID:
		return UUID{}, nil
	case FormatULID:
		return ULID{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
