package container

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// NewStack returns a stack holding vals, the last one on top.
func NewStack[T any](vals ...T) *Stack[T] {
	return &Stack[T]{
		vals: slices.Clone(vals),
	}
}

func NewStackSize[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		vals: make([]T, 0, capacity),
	}
}

// Stack is a LIFO container. It is not safe for concurrent use.
type Stack[T any] struct {
	vals []T
}

func (s *Stack[T]) Empty() bool {
	return len(s.vals) == 0
}

func (s *Stack[T]) Size() int {
	return len(s.vals)
}

func (s *Stack[T]) Len() int {
	return len(s.vals)
}

func (s *Stack[T]) Push(v T) {
	s.vals = append(s.vals, v)
}

func (s *Stack[T]) Peek() (zero T, _ error) {
	if s.Empty() {
		return zero, &EmptyContainerError{Op: "peek"}
	}

	return s.vals[len(s.vals)-1], nil
}

func (s *Stack[T]) Pop() (zero T, _ error) {
	if s.Empty() {
		return zero, &EmptyContainerError{Op: "pop"}
	}

	last := len(s.vals) - 1
	top := s.vals[last]

	s.vals[last] = zero
	s.vals = s.vals[:last]

	return top, nil
}

func (s *Stack[T]) TryPeek() mo.Option[T] {
	top, err := s.Peek()
	if err != nil {
		return mo.None[T]()
	}

	return mo.Some(top)
}

func (s *Stack[T]) TryPop() mo.Option[T] {
	top, err := s.Pop()
	if err != nil {
		return mo.None[T]()
	}

	return mo.Some(top)
}

// Clear drops every element but keeps the allocated capacity.
func (s *Stack[T]) Clear() {
	clear(s.vals)

	s.vals = s.vals[:0]
}

// Values returns a copy of the contents, bottom first.
func (s *Stack[T]) Values() []T {
	return slices.Clone(s.vals)
}

func (s *Stack[T]) String() string {
	if s.Empty() {
		return "Stack: []"
	}

	return "Stack: [" + s.join() + "] (top -> bottom)"
}

func (s *Stack[T]) GoString() string {
	return "Stack([" + s.join() + "])"
}

func (s *Stack[T]) join() string {
	rendered := lo.Map(s.vals, func(v T, _ int) string {
		return fmt.Sprint(v)
	})

	slices.Reverse(rendered)

	return strings.Join(rendered, ", ")
}
