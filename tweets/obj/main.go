package obj

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON    = errors.New("invalid json")
	ErrMissingField   = errors.New("missing required field")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrDatetimeFormat = errors.New("datetime format mismatch")
	ErrNoPayloadMatch = errors.New("payload matches neither status nor limit")
)

// MalformedPayload is returned by every decode in this package. Path is the dotted field path
// from the document root, empty for the root itself.
type MalformedPayload struct {
	Path  string
	Cause error
}

func (m *MalformedPayload) Error() string {
	if m.Path == "" {
		return fmt.Sprintf("malformed payload; %v", m.Cause)
	}
	return fmt.Sprintf("malformed payload at %s; %v", m.Path, m.Cause)
}

func (m *MalformedPayload) Unwrap() error {
	return m.Cause
}

func malformed(path string, cause error) *MalformedPayload {
	return &MalformedPayload{
		Path:  path,
		Cause: cause,
	}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
