package locking

// NoOpGroup is a Group that performs no locking.
// Every call executes the function immediately.
type NoOpGroup struct{}

// NewNoOpGroup creates a new NoOpGroup.
func NewNoOpGroup() *NoOpGroup {
	return &NoOpGroup{}
}

func (n *NoOpGroup) DoWithLock(_ string, fn func() (interface{}, error)) (interface{}, error) {
	return fn()
}
