package source

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResult means a tier answered without error but had no items.
	ErrEmptyResult = errors.New("source: empty result")

	// ErrExhausted means every tier failed, including the fallback list.
	ErrExhausted = errors.New("source: all tiers exhausted")

	// ErrMalformed marks a remote payload that decoded but is not a menu.
	ErrMalformed = errors.New("source: malformed payload")
)

// RemoteError is a failed remote fetch: transport error, non-2xx status
// or an undecodable payload.
type RemoteError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("remote %s: %v", e.URL, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// PersistenceError is a failed local store operation.
type PersistenceError struct {
	Op  string // "create schema", "write", "read"
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("persistence %s: %v", e.Op, e.Err) }

func (e *PersistenceError) Unwrap() error { return e.Err }
