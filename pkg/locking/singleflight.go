package locking

import "golang.org/x/sync/singleflight"

// SingleFlight is a Group where concurrent callers for the same key share the
// result of a single fn execution.
type SingleFlight struct {
	group singleflight.Group
}

// NewSingleFlight creates a SingleFlight.
func NewSingleFlight() *SingleFlight {
	return &SingleFlight{}
}

func (s *SingleFlight) DoWithLock(key string, fn func() (interface{}, error)) (interface{}, error) {
	v, err, _ := s.group.Do(key, fn)
	return v, err
}
