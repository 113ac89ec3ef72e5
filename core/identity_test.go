package core

import (
	"errors"
	"strings"
	"testing"
)

func TestNewID_Canonical(t *testing.T) {
	id := NewID()
	s := id.String()

	if len(s) != 36 {
		t.Fatalf("Expected 36-character ID, got %d: %q", len(s), s)
	}
	if s != strings.ToLower(s) {
		t.Errorf("Expected lowercase ID, got: %q", s)
	}
	for _, i := range []int{8, 13, 18, 23} {
		if s[i] != '-' {
			t.Errorf("Expected hyphen at index %d in %q", i, s)
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	a := NewID()
	b := NewID()
	if a.String() == b.String() {
		t.Errorf("Expected distinct IDs, got %q twice", a)
	}
}

func TestParseID_RoundTrip(t *testing.T) {
	original := NewID()
	parsed, err := ParseID(original.String())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if parsed != original {
		t.Errorf("Expected %q, got: %q", original, parsed)
	}
}

func TestParseID_RejectsNonCanonical(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "not-a-uuid"},
		{"uppercase", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8"},
		{"braces", "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"},
		{"urn", "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"no hyphens", "6ba7b8109dad11d180b400c04fd430c8"},
		{"truncated", "6ba7b810-9dad-11d1-80b4"},
		{"trailing newline", "6ba7b810-9dad-11d1-80b4-00c04fd430c8\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseID(tc.input); !errors.Is(err, ErrCorruptID) {
				t.Errorf("Expected ErrCorruptID for %q, got: %v", tc.input, err)
			}
		})
	}
}

func TestParseID_AcceptsCanonical(t *testing.T) {
	const s = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	id, err := ParseID(s)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if id.String() != s {
		t.Errorf("Expected %q, got: %q", s, id.String())
	}
	if id.IsZero() {
		t.Error("Expected parsed ID not to be zero")
	}
}

func TestMustParseID_PanicsOnCorrupt(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustParseID to panic on a corrupt ID")
		}
	}()
	MustParseID("not-a-uuid")
}

func TestID_IsZero(t *testing.T) {
	var zero ID
	if !zero.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}
	if NewID().IsZero() {
		t.Error("Expected generated ID not to report IsZero")
	}
}
