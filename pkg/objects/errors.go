package objects

import (
	"github.com/utkarsh5026/gocaf/pkg/common/err"
)

const pkgName = "objects"

// Error codes raised by the object model and its codecs.
// Store-level codes (NOT_FOUND, KIND_MISMATCH, CORRUPT_OBJECT) live in pkg/store.
const (
	// CodeMalformedObject indicates bytes the canonical encoder could never
	// have produced: truncated fields, unknown modes, unsorted or duplicate
	// tree records, non-canonical integers.
	CodeMalformedObject = "MALFORMED_OBJECT"

	// CodeInvalidConstruction indicates a structural validation failure at
	// construction time: empty names, negative timestamps, duplicate records.
	CodeInvalidConstruction = "INVALID_CONSTRUCTION"

	// CodeInvalidDigestFormat indicates a digest string that is not exactly
	// 64 lowercase hexadecimal characters.
	CodeInvalidDigestFormat = "INVALID_DIGEST_FORMAT"
)

// NewMalformedObject creates a decode error for bytes outside the canonical encoding.
func NewMalformedObject(op, message string, cause error) error {
	return err.New(pkgName, CodeMalformedObject, op, message, cause)
}

// NewInvalidConstruction creates a construction-time validation error.
func NewInvalidConstruction(op, message string) error {
	return err.New(pkgName, CodeInvalidConstruction, op, message, nil)
}

// NewInvalidDigestFormat creates an error for a malformed digest string.
func NewInvalidDigestFormat(op, message string) error {
	return err.New(pkgName, CodeInvalidDigestFormat, op, message, nil)
}

// IsMalformedObject reports whether err carries the MALFORMED_OBJECT code.
func IsMalformedObject(e error) bool {
	return err.IsCode(e, CodeMalformedObject)
}

// IsInvalidConstruction reports whether err carries the INVALID_CONSTRUCTION code.
func IsInvalidConstruction(e error) bool {
	return err.IsCode(e, CodeInvalidConstruction)
}

// IsInvalidDigestFormat reports whether err carries the INVALID_DIGEST_FORMAT code.
func IsInvalidDigestFormat(e error) bool {
	return err.IsCode(e, CodeInvalidDigestFormat)
}
