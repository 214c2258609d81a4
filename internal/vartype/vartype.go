// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package vartype provides a generic value wrapper that tracks whether the
// value was ever supplied. Weather providers do not deliver every metric for
// every location or hour; an unset Variable models an upstream null without
// resorting to pointers.
package vartype

import (
	"fmt"
)

type (
	// VarFloat64 is a type alias for Variable[float64].
	VarFloat64 = Variable[float64]

	// VarInt is a type alias for Variable[int].
	VarInt = Variable[int]
)

// Variable represents a generic type wrapper that holds a value and tracks its
// initialization state.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable creates and returns a new Variable instance initialized with the provided value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// Reset clears the value of the Variable and marks it as uninitialized.
func (v *Variable[T]) Reset() {
	var newVal T
	v.value = newVal
	v.isset = false
}

// Value retrieves the current value stored in the Variable.
func (v *Variable[T]) Value() T {
	return v.value
}

// Set assigns the provided value to the Variable and marks it as initialized.
func (v *Variable[T]) Set(val T) {
	v.value = val
	v.isset = true
}

// IsSet returns true if the Variable has been initialized with a value, otherwise false.
func (v *Variable[T]) IsSet() bool {
	return v.isset
}

// String returns a string representation of the Variable. If uninitialized, it
// returns a placeholder instead of the zero value.
func (v Variable[T]) String() string {
	if !v.isset {
		return "n/a"
	}
	return fmt.Sprint(v.value)
}
