package core

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is the stable, opaque identifier tying a project to its secrets
// directory. It always holds the canonical lowercase hyphenated rendering
// of a UUID, which is the only form ever persisted, compared, or used as
// a directory name.
type ID struct {
	s string
}

// NewID generates a fresh random ID.
func NewID() ID {
	return ID{s: uuid.NewString()}
}

// ParseID parses s as a canonical devsecrets ID.
//
// Only the lowercase hyphenated rendering is accepted. Alternate UUID
// forms (uppercase, braces, URN prefix, no hyphens) are rejected so that
// a non-canonical string can never reach the directory-join boundary.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrCorruptID, s)
	}
	// uuid.Parse is permissive; require the exact canonical rendering.
	if s != u.String() {
		return ID{}, fmt.Errorf("%w: %q is not in canonical form", ErrCorruptID, s)
	}
	return ID{s: s}, nil
}

// MustParseID is like ParseID but panics on error. It is intended for
// constants emitted by "devsecrets generate", which are validated at
// generation time.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical UUID string.
func (id ID) String() string {
	return id.s
}

// IsZero reports whether id is the zero value rather than a parsed or
// generated identifier.
func (id ID) IsZero() bool {
	return id.s == ""
}
