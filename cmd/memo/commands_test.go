package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"memo/internal/config"
)

func fixedConfig(baseURL string) func() (config.Config, error) {
	return func() (config.Config, error) {
		cfg := config.Default()
		cfg.API.BaseURL = baseURL
		cfg.Logging.Level = "error"
		return cfg, nil
	}
}

func TestLSCommandPrintsTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/notes" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[
			{"id":"n1","title":"groceries","content":"milk","updated_at":"2024-03-01T10:00:00Z"},
			{"note_id":7,"title":"work","body":"ship it"}
		]`))
	}))
	defer srv.Close()

	stdout := &bytes.Buffer{}
	cmd := NewLSCommand(stdout, &bytes.Buffer{}, fixedConfig(srv.URL))

	if err := cmd.Run(nil); err != nil {
		t.Fatalf("expected ls to succeed, got err=%v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "ID") || !strings.Contains(out, "TITLE") || !strings.Contains(out, "UPDATED") {
		t.Fatalf("expected header in output, got %q", out)
	}
	if !strings.Contains(out, "n1") || !strings.Contains(out, "groceries") || !strings.Contains(out, "2024-03-01 10:00") {
		t.Fatalf("expected first note row, got %q", out)
	}
	if !strings.Contains(out, "7") || !strings.Contains(out, "work") {
		t.Fatalf("expected aliased note row, got %q", out)
	}
}

func TestLSCommandFilterNarrowsRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a","title":"groceries","content":"milk"},{"id":"b","title":"work","content":"ship it"}]`))
	}))
	defer srv.Close()

	stdout := &bytes.Buffer{}
	cmd := NewLSCommand(stdout, &bytes.Buffer{}, fixedConfig(srv.URL))

	if err := cmd.Run([]string{"-filter", "milk"}); err != nil {
		t.Fatalf("expected ls to succeed, got err=%v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "groceries") {
		t.Fatalf("expected matching row, got %q", out)
	}
	if strings.Contains(out, "work") {
		t.Fatalf("expected non-matching row filtered out, got %q", out)
	}
}

func TestAddCommandPrintsCreatedID(t *testing.T) {
	var created map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/notes" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			t.Errorf("bad create body: %v", err)
		}
		w.Write([]byte(`{"id":"n9","title":"shopping"}`))
	}))
	defer srv.Close()

	stdout := &bytes.Buffer{}
	cmd := NewAddCommand(stdout, &bytes.Buffer{}, fixedConfig(srv.URL))

	if err := cmd.Run([]string{"shopping", "milk,", "eggs"}); err != nil {
		t.Fatalf("expected add to succeed, got err=%v", err)
	}
	if created["title"] != "shopping" || created["content"] != "milk, eggs" {
		t.Fatalf("unexpected create payload: %v", created)
	}
	if got := stdout.String(); got != "created n9\n" {
		t.Fatalf("unexpected stdout: %q", got)
	}
}

func TestAddCommandDefaultsTitle(t *testing.T) {
	var created map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&created)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	stdout := &bytes.Buffer{}
	cmd := NewAddCommand(stdout, &bytes.Buffer{}, fixedConfig(srv.URL))

	if err := cmd.Run(nil); err != nil {
		t.Fatalf("expected add to succeed, got err=%v", err)
	}
	if created["title"] != "Untitled" {
		t.Fatalf("unexpected title: %v", created["title"])
	}
	if got := stdout.String(); got != "created\n" {
		t.Fatalf("expected bare confirmation when no id comes back, got %q", got)
	}
}

func TestRMCommandDeletes(t *testing.T) {
	var deletedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		deletedPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	stdout := &bytes.Buffer{}
	cmd := NewRMCommand(stdout, &bytes.Buffer{}, fixedConfig(srv.URL))

	if err := cmd.Run([]string{"note_42"}); err != nil {
		t.Fatalf("expected rm to succeed, got err=%v", err)
	}
	if deletedPath != "/notes/note_42" {
		t.Fatalf("unexpected delete path: %q", deletedPath)
	}
	if got := stdout.String(); got != "deleted note_42\n" {
		t.Fatalf("unexpected stdout: %q", got)
	}
}

func TestRMCommandReportsMissingNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"no such note"}`))
	}))
	defer srv.Close()

	cmd := NewRMCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedConfig(srv.URL))
	err := cmd.Run([]string{"ghost"})
	if err == nil || !strings.Contains(err.Error(), "note not found: ghost") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRMCommandRequiresID(t *testing.T) {
	cmd := NewRMCommand(&bytes.Buffer{}, &bytes.Buffer{}, fixedConfig("http://unused"))
	err := cmd.Run(nil)
	if err == nil || !strings.Contains(err.Error(), "usage: memo rm") {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestVersionCommandPrintsVersion(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewVersionCommand(stdout, "v-test")
	if err := cmd.Run(nil); err != nil {
		t.Fatalf("expected version to succeed, got err=%v", err)
	}
	if got := stdout.String(); got != "memo v-test\n" {
		t.Fatalf("unexpected stdout: %q", got)
	}
}
