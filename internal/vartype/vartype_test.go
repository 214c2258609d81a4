// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package vartype

import "testing"

func TestNewVariable(t *testing.T) {
	t.Run("a new variable is set and holds its value", func(t *testing.T) {
		v := NewVariable(42)
		if !v.IsSet() {
			t.Fatal("expected variable to be set")
		}
		if v.Value() != 42 {
			t.Errorf("expected value to be 42, got %d", v.Value())
		}
	})
	t.Run("a zero variable is unset", func(t *testing.T) {
		var v VarFloat64
		if v.IsSet() {
			t.Fatal("expected variable to be unset")
		}
		if v.Value() != 0 {
			t.Errorf("expected zero value, got %f", v.Value())
		}
	})
}

func TestVariable_Set(t *testing.T) {
	t.Run("setting a value marks the variable as set", func(t *testing.T) {
		var v VarInt
		v.Set(7)
		if !v.IsSet() {
			t.Fatal("expected variable to be set")
		}
		if v.Value() != 7 {
			t.Errorf("expected value to be 7, got %d", v.Value())
		}
	})
}

func TestVariable_Reset(t *testing.T) {
	t.Run("resetting clears value and state", func(t *testing.T) {
		v := NewVariable(13.5)
		v.Reset()
		if v.IsSet() {
			t.Fatal("expected variable to be unset after reset")
		}
		if v.Value() != 0 {
			t.Errorf("expected zero value after reset, got %f", v.Value())
		}
	})
}

func TestVariable_String(t *testing.T) {
	t.Run("set variables render their value", func(t *testing.T) {
		v := NewVariable(55)
		if v.String() != "55" {
			t.Errorf("expected string to be 55, got %q", v.String())
		}
	})
	t.Run("unset variables render a placeholder", func(t *testing.T) {
		var v VarInt
		if v.String() != "n/a" {
			t.Errorf("expected placeholder string, got %q", v.String())
		}
	})
}
