// Package locking runs functions with mutual exclusion over string keys.
package locking

import "fmt"

// Group runs functions with mutual exclusion per key.
type Group interface {
	// DoWithLock runs fn while no other call for the same key is running.
	DoWithLock(key string, fn func() (interface{}, error)) (v interface{}, err error)
}

// Kind names a Group implementation.
type Kind string

const (
	// KindSingleFlight coalesces concurrent calls for a key into one execution.
	KindSingleFlight Kind = "singleflight"
	// KindMemLock serializes calls for a key with a per-key mutex.
	KindMemLock Kind = "memlock"
	// KindNoOp performs no locking.
	KindNoOp Kind = "noop"
)

// NewGroup creates the Group named by kind.
func NewGroup(kind Kind) (Group, error) {
	switch kind {
	case KindSingleFlight:
		return NewSingleFlight(), nil
	case KindMemLock:
		return NewMemLock(), nil
	case KindNoOp:
		return NewNoOpGroup(), nil
	default:
		return nil, fmt.Errorf("unknown locking kind: %q", kind)
	}
}
