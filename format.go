package devsecrets

import (
	"encoding/json"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Format turns a secret file's byte stream into a typed value.
//
// A Format is bound to a single file extension; DevSecrets.ReadInto
// refuses to decode a file whose extension does not match. Additional
// formats plug in by implementing these two methods, with no changes to
// the accessor.
type Format interface {
	// Extension returns the file extension (without the leading dot)
	// that files of this format must carry.
	Extension() string

	// Decode reads from r and stores the decoded value in v, which must
	// be a non-nil pointer.
	Decode(r io.Reader, v any) error
}

// JSONFormat decodes .json secret files.
type JSONFormat struct{}

func (JSONFormat) Extension() string { return "json" }

func (JSONFormat) Decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

// TOMLFormat decodes .toml secret files.
type TOMLFormat struct{}

func (TOMLFormat) Extension() string { return "toml" }

func (TOMLFormat) Decode(r io.Reader, v any) error {
	_, err := toml.NewDecoder(r).Decode(v)
	return err
}

// YAMLFormat decodes .yaml secret files.
type YAMLFormat struct{}

func (YAMLFormat) Extension() string { return "yaml" }

func (YAMLFormat) Decode(r io.Reader, v any) error {
	return yaml.NewDecoder(r).Decode(v)
}
