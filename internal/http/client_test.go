// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"jacketcheck/internal/logger"
)

func TestNew(t *testing.T) {
	t.Run("a new client should be returned", func(t *testing.T) {
		client := New(logger.New(slog.LevelError))
		if client == nil {
			t.Fatal("expected client to be non-nil")
		}
		if client.Timeout != DefaultTimeout {
			t.Errorf("expected client timeout to be %s, got %s", DefaultTimeout, client.Timeout)
		}
	})
}

func TestClient_Get(t *testing.T) {
	t.Run("a JSON response is decoded into the target", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("q") != "test" {
				t.Errorf("expected query parameter q to be test, got %q", r.URL.Query().Get("q"))
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"jacketcheck"}`))
		}))
		defer server.Close()

		target := struct {
			Name string `json:"name"`
		}{}
		query := url.Values{}
		query.Set("q", "test")
		client := New(logger.New(slog.LevelError))
		code, err := client.Get(t.Context(), server.URL, &target, query)
		if err != nil {
			t.Fatalf("failed to perform GET request: %s", err)
		}
		if code != http.StatusOK {
			t.Errorf("expected status code %d, got %d", http.StatusOK, code)
		}
		if target.Name != "jacketcheck" {
			t.Errorf("expected name to be jacketcheck, got %q", target.Name)
		}
	})
	t.Run("a non-pointer target fails", func(t *testing.T) {
		client := New(logger.New(slog.LevelError))
		_, err := client.Get(t.Context(), "http://localhost", struct{}{}, nil)
		if err == nil {
			t.Fatal("expected error for non-pointer target")
		}
	})
	t.Run("an invalid JSON body fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`this is not json`))
		}))
		defer server.Close()

		target := struct{}{}
		client := New(logger.New(slog.LevelError))
		if _, err := client.Get(t.Context(), server.URL, &target, nil); err == nil {
			t.Fatal("expected error for invalid JSON body")
		}
	})
	t.Run("a slow server runs into the request timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(time.Millisecond * 200)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		target := struct{}{}
		client := New(logger.New(slog.LevelError))
		if _, err := client.GetWithTimeout(t.Context(), server.URL, &target, nil,
			time.Millisecond*50); err == nil {
			t.Fatal("expected error for timed out request")
		}
	})
}
