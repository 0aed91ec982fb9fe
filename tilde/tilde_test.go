package tilde_test

import (
	"errors"
	"os"
	"testing"

	"github.com/globkit/fastglob/tilde"
)

func TestExpandBareTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	got, err := tilde.Expand("~/docs", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != home+"/docs" {
		t.Fatalf("got %q, want %q", got, home+"/docs")
	}
}

func TestExpandNoTilde(t *testing.T) {
	got, err := tilde.Expand("docs/file.txt", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "docs/file.txt" {
		t.Fatalf("expected pattern without a leading tilde to pass through unchanged, got %q", got)
	}
}

func TestExpandUnknownUserNoCheck(t *testing.T) {
	got, err := tilde.Expand("~definitely-not-a-real-user-xyz/foo", false)
	if err != nil {
		t.Fatalf("expected no error without tilde-check, got %v", err)
	}

	if got != "~definitely-not-a-real-user-xyz/foo" {
		t.Fatalf("expected the pattern to stay literal, got %q", got)
	}
}

func TestExpandUnknownUserWithCheck(t *testing.T) {
	_, err := tilde.Expand("~definitely-not-a-real-user-xyz/foo", true)
	if !errors.Is(err, tilde.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestHasLeadingTilde(t *testing.T) {
	if !tilde.HasLeadingTilde("~/foo") {
		t.Fatal("expected true for ~/foo")
	}

	if !tilde.HasLeadingTilde("~bob/foo") {
		t.Fatal("expected true for ~bob/foo")
	}

	if tilde.HasLeadingTilde("foo~bar") {
		t.Fatal("expected false for a non-leading tilde")
	}
}
