package store

import (
	"fmt"

	"github.com/utkarsh5026/gocaf/pkg/common/err"
	"github.com/utkarsh5026/gocaf/pkg/objects"
)

const pkgName = "store"

// Store-specific error codes. NOT_FOUND reuses the shared code from
// pkg/common/err; digest-format and decode errors carry pkg/objects codes.
const (
	// CodeKindMismatch indicates the stored kind tag differs from the
	// caller's expectation.
	CodeKindMismatch = "KIND_MISMATCH"

	// CodeCorruptObject indicates the stored payload no longer hashes to
	// the digest it is filed under: bit-rot or tampering below the store.
	// Non-recoverable for that read; the store never attempts repair.
	CodeCorruptObject = "CORRUPT_OBJECT"
)

func notFoundError(op string, digest objects.Digest) error {
	return err.New(pkgName, err.CodeNotFound, op, "no object with digest "+digest.String(), nil)
}

func kindMismatchError(op string, digest objects.Digest, want, got objects.ObjectKind) error {
	return err.New(pkgName, CodeKindMismatch, op,
		fmt.Sprintf("object %s is a %s, expected %s", digest.Short(), got, want), nil)
}

func corruptObjectError(op string, digest objects.Digest, cause error) error {
	return err.New(pkgName, CodeCorruptObject, op,
		"stored bytes for "+digest.String()+" fail digest verification", cause)
}

// IsNotFound reports whether e indicates an absent digest.
func IsNotFound(e error) bool {
	return err.IsCode(e, err.CodeNotFound)
}

// IsKindMismatch reports whether e indicates a stored kind tag different
// from the expected one.
func IsKindMismatch(e error) bool {
	return err.IsCode(e, CodeKindMismatch)
}

// IsCorruptObject reports whether e indicates storage-level corruption.
func IsCorruptObject(e error) bool {
	return err.IsCode(e, CodeCorruptObject)
}
