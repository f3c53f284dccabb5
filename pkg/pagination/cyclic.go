package pagination

import (
	"fmt"
	"iter"
)

const noNode = -1

// CyclicList is a circular sequence with a movable cursor.
// Values live in an arena addressed by stable indices; next[i] is the index
// following i, and the tail always points back at the head.
type CyclicList[T any] struct {
	values []T
	next   []int
	head   int
	tail   int
	cursor int
}

// NewCyclicList creates an empty list.
func NewCyclicList[T any]() *CyclicList[T] {
	return &CyclicList[T]{head: noNode, tail: noNode, cursor: noNode}
}

// CyclicListOf creates a list holding values in order.
func CyclicListOf[T any](values ...T) *CyclicList[T] {
	l := NewCyclicList[T]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Append inserts v at the tail and rewires the tail back to the head.
func (l *CyclicList[T]) Append(v T) {
	idx := len(l.values)
	l.values = append(l.values, v)
	l.next = append(l.next, idx)

	if l.head == noNode {
		l.head, l.tail = idx, idx
		return
	}
	l.next[l.tail] = idx
	l.next[idx] = l.head
	l.tail = idx
}

// Next advances the cursor and returns the value under it. An unset cursor
// moves to the head; the tail wraps to the head. ok is false only when empty.
func (l *CyclicList[T]) Next() (v T, ok bool) {
	if l.head == noNode {
		return v, false
	}
	if l.cursor == noNode {
		l.cursor = l.head
	} else {
		l.cursor = l.next[l.cursor]
	}
	return l.values[l.cursor], true
}

// Current returns the value under the cursor without advancing.
func (l *CyclicList[T]) Current() (v T, ok bool) {
	if l.cursor == noNode || l.head == noNode {
		return v, false
	}
	return l.values[l.cursor], true
}

// CursorIndex returns the index under the cursor, or -1 when unset.
func (l *CyclicList[T]) CursorIndex() int { return l.cursor }

// At returns the value at index in append order.
func (l *CyclicList[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(l.values) {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(l.values))
	}
	return l.values[index], nil
}

// Len returns the number of values.
func (l *CyclicList[T]) Len() int { return len(l.values) }

// Empty reports whether the list holds no values.
func (l *CyclicList[T]) Empty() bool { return len(l.values) == 0 }

// AdvanceTo calls Next until the cursor sits on index.
func (l *CyclicList[T]) AdvanceTo(index int) error {
	if index < 0 || index >= len(l.values) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(l.values))
	}
	for l.cursor != index {
		l.Next()
	}
	return nil
}

// All yields every value once in append order, starting at the head.
func (l *CyclicList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.head == noNode {
			return
		}
		i := l.head
		for {
			if !yield(i, l.values[i]) {
				return
			}
			if i == l.tail {
				return
			}
			i = l.next[i]
		}
	}
}
