package container

import "errors"

var ErrEmpty = errors.New("empty container")

// EmptyContainerError is returned by Pop and Peek on an empty stack.
type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	return e.Op + " from empty stack"
}

func (e *EmptyContainerError) Is(target error) bool {
	return target == ErrEmpty
}
