package objects

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Object is the capability shared by the four stored kinds.
//
// Content returns the canonical encoding without the header; equal objects
// always produce identical bytes regardless of how they were constructed.
// Digest is the SHA-256 of the full serialized form and is cached after the
// first computation. Both are pure: no global state, no side effects.
type Object interface {
	// Kind returns the object kind tag
	Kind() ObjectKind

	// Content returns the canonical encoding of the object (without header).
	// Callers must not modify the returned slice.
	Content() []byte

	// Size returns the length of the canonical content in bytes
	Size() int64

	// Digest returns the object's content-derived identity
	Digest() Digest

	// Serialize writes the object in storage format: "<kind> <size>\0<content>"
	Serialize(w io.Writer) error

	// String returns a human-readable representation
	String() string
}

// CreateHeader builds the serialized header for an object: "<kind> <size>\0"
func CreateHeader(kind ObjectKind, size int64) []byte {
	return []byte(fmt.Sprintf("%s %d%c", kind, size, NullByte))
}

// Encode produces the full serialized form of an object: header plus content.
// This is the byte sequence that is hashed and stored.
func Encode(kind ObjectKind, content []byte) []byte {
	header := CreateHeader(kind, int64(len(content)))
	out := make([]byte, 0, len(header)+len(content))
	out = append(out, header...)
	return append(out, content...)
}

// WriteTo writes the full serialized form of kind+content to w.
func WriteTo(w io.Writer, kind ObjectKind, content []byte) error {
	if _, err := w.Write(CreateHeader(kind, int64(len(content)))); err != nil {
		return fmt.Errorf("failed to write %s header: %w", kind, err)
	}
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("failed to write %s content: %w", kind, err)
	}
	return nil
}

// ParseHeader parses the object header strictly.
// Returns the kind, the declared content size, and the offset where content
// starts. The size must be canonical decimal: no sign, no leading zeros.
func ParseHeader(data []byte) (ObjectKind, int64, int, error) {
	nullIndex := bytes.IndexByte(data, NullByte)
	if nullIndex == -1 {
		return "", 0, 0, NewMalformedObject("parse_header", "missing null byte", nil)
	}

	spaceIndex := bytes.IndexByte(data[:nullIndex], SpaceByte)
	if spaceIndex == -1 {
		return "", 0, 0, NewMalformedObject("parse_header", "missing space", nil)
	}

	kind, err := ParseObjectKind(string(data[:spaceIndex]))
	if err != nil {
		return "", 0, 0, err
	}

	size, err := ParseCanonicalDecimal(string(data[spaceIndex+1 : nullIndex]))
	if err != nil {
		return "", 0, 0, err
	}

	return kind, size, nullIndex + 1, nil
}

// ParseContent extracts the canonical content from a serialized object,
// verifying both the kind tag and the declared size.
func ParseContent(data []byte, want ObjectKind) ([]byte, error) {
	kind, size, contentStart, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if kind != want {
		return nil, NewMalformedObject("parse_content",
			fmt.Sprintf("kind tag mismatch: expected %s, got %s", want, kind), nil)
	}

	content := data[contentStart:]
	if int64(len(content)) != size {
		return nil, NewMalformedObject("parse_content",
			fmt.Sprintf("size mismatch: header declares %d, content is %d", size, len(content)), nil)
	}

	return content, nil
}

// PeekKind returns the kind tag of a serialized object without decoding it.
func PeekKind(data []byte) (ObjectKind, error) {
	kind, _, _, err := ParseHeader(data)
	return kind, err
}

// ParseCanonicalDecimal parses a non-negative integer in the only form the
// encoder emits: base-10 digits with no sign and no leading zeros.
// "0" is the sole representation of zero.
func ParseCanonicalDecimal(s string) (int64, error) {
	if s == "" {
		return 0, NewMalformedObject("parse_decimal", "empty integer field", nil)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, NewMalformedObject("parse_decimal", "leading zero in integer field: "+s, nil)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, NewMalformedObject("parse_decimal", "non-digit in integer field: "+s, nil)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewMalformedObject("parse_decimal", "integer field out of range: "+s, err)
	}
	return n, nil
}
