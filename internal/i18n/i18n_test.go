// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package i18n

import "testing"

func TestNew(t *testing.T) {
	t.Run("new i18n provider with empty locale string succeeds", func(t *testing.T) {
		provider, err := New("")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if provider == nil {
			t.Fatal("expected i18n provider to be non-nil")
		}
	})
	t.Run("an unsupported locale falls back to the source language", func(t *testing.T) {
		provider, err := New("fr")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if got := provider.Get("Temperature"); got != "Temperature" {
			t.Errorf("expected untranslated message to pass through, got %q", got)
		}
	})
	t.Run("the german catalog translates labels", func(t *testing.T) {
		provider, err := New("de")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if got := provider.Get("Temperature"); got != "Temperatur" {
			t.Errorf("expected Temperature to translate to Temperatur, got %q", got)
		}
	})
}
