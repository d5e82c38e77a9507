package tree

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

// RecordMode is the enumerated file-kind tag of a tree record.
type RecordMode string

const (
	ModeDirectory  RecordMode = "040000"
	ModeFile       RecordMode = "100644"
	ModeExecutable RecordMode = "100755"
	ModeSymlink    RecordMode = "120000"
)

// ParseRecordMode converts a mode string to RecordMode.
// Any string outside the enumerated set is malformed input.
func ParseRecordMode(s string) (RecordMode, error) {
	switch RecordMode(s) {
	case ModeDirectory, ModeFile, ModeExecutable, ModeSymlink:
		return RecordMode(s), nil
	default:
		return "", objects.NewMalformedObject("parse_mode", "unknown record mode: "+s, nil)
	}
}

// ModeFromOSFileMode maps an os.FileMode to a record mode.
// Used when hashing files from a working directory.
func ModeFromOSFileMode(mode os.FileMode) RecordMode {
	switch {
	case mode.IsDir():
		return ModeDirectory
	case mode&os.ModeSymlink != 0:
		return ModeSymlink
	case mode&0o111 != 0:
		return ModeExecutable
	default:
		return ModeFile
	}
}

// TargetKind returns the object kind a record of this mode must reference:
// directories point at trees, everything else at blobs.
func (m RecordMode) TargetKind() objects.ObjectKind {
	if m == ModeDirectory {
		return objects.TreeKind
	}
	return objects.BlobKind
}

// IsDirectory returns true if this mode marks a subtree
func (m RecordMode) IsDirectory() bool {
	return m == ModeDirectory
}

// IsExecutable returns true if this mode marks an executable file
func (m RecordMode) IsExecutable() bool {
	return m == ModeExecutable
}

// String returns the mode as its canonical string
func (m RecordMode) String() string {
	return string(m)
}

// TreeRecord is one directory entry: a mode, a path segment, and the digest
// of the blob or subtree it points at.
//
// Serialized record format, one per line:
//
//	<mode> <len>:<name> <digest>\n
//
// where <len> is the canonical decimal byte length of <name>. The length
// prefix keeps the encoding injective for every legal name, so no two
// distinct record sets can share a byte representation.
type TreeRecord struct {
	mode   RecordMode
	name   string
	target objects.Digest
}

// NewTreeRecord creates a TreeRecord with structural validation.
// The referenced digest is not resolved; it may not exist anywhere yet.
func NewTreeRecord(mode RecordMode, name string, target objects.Digest) (*TreeRecord, error) {
	if _, err := ParseRecordMode(string(mode)); err != nil {
		return nil, objects.NewInvalidConstruction("new_record", "unknown record mode: "+string(mode))
	}
	if err := validateRecordName(name); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, objects.NewInvalidConstruction("new_record",
			fmt.Sprintf("invalid target digest for %q: %v", name, err))
	}

	return &TreeRecord{mode: mode, name: name, target: target}, nil
}

// Mode returns the record mode
func (r *TreeRecord) Mode() RecordMode {
	return r.mode
}

// Name returns the path segment
func (r *TreeRecord) Name() string {
	return r.name
}

// Target returns the digest of the referenced object
func (r *TreeRecord) Target() objects.Digest {
	return r.target
}

// String returns a human-readable representation
func (r *TreeRecord) String() string {
	return fmt.Sprintf("TreeRecord{mode: %s, name: %s, target: %s}", r.mode, r.name, r.target.Short())
}

// compareTo orders records by name using plain byte-wise comparison.
// This is the single canonical ordering of a tree.
func (r *TreeRecord) compareTo(other *TreeRecord) int {
	return strings.Compare(r.name, other.name)
}

// appendRecord appends the serialized record to buf
func (r *TreeRecord) appendRecord(buf *bytes.Buffer) {
	buf.WriteString(string(r.mode))
	buf.WriteByte(objects.SpaceByte)
	buf.WriteString(strconv.Itoa(len(r.name)))
	buf.WriteByte(':')
	buf.WriteString(r.name)
	buf.WriteByte(objects.SpaceByte)
	buf.WriteString(string(r.target))
	buf.WriteByte('\n')
}

// decodeRecord parses one record starting at offset and returns the record
// plus the offset of the next one. Every field is checked against the exact
// form the encoder emits.
func decodeRecord(data []byte, offset int) (*TreeRecord, int, error) {
	rest := data[offset:]

	spaceIndex := bytes.IndexByte(rest, objects.SpaceByte)
	if spaceIndex == -1 {
		return nil, 0, objects.NewMalformedObject("decode_record", "missing mode delimiter", nil)
	}
	mode, err := ParseRecordMode(string(rest[:spaceIndex]))
	if err != nil {
		return nil, 0, err
	}

	rest = rest[spaceIndex+1:]
	colonIndex := bytes.IndexByte(rest, ':')
	if colonIndex == -1 {
		return nil, 0, objects.NewMalformedObject("decode_record", "missing name length delimiter", nil)
	}
	nameLen, err := objects.ParseCanonicalDecimal(string(rest[:colonIndex]))
	if err != nil {
		return nil, 0, err
	}

	rest = rest[colonIndex+1:]
	// name + space + digest + newline must all be present
	if nameLen < 1 || int64(len(rest)) < nameLen+1+objects.DigestLength+1 {
		return nil, 0, objects.NewMalformedObject("decode_record", "truncated record", nil)
	}
	needed := int(nameLen) + 1 + objects.DigestLength + 1

	name := string(rest[:nameLen])
	if rest[nameLen] != objects.SpaceByte {
		return nil, 0, objects.NewMalformedObject("decode_record", "missing digest delimiter", nil)
	}

	digestStart := int(nameLen) + 1
	target, err := objects.ParseDigest(string(rest[digestStart : digestStart+objects.DigestLength]))
	if err != nil {
		return nil, 0, objects.NewMalformedObject("decode_record",
			fmt.Sprintf("bad target digest for %q", name), err)
	}

	if rest[digestStart+objects.DigestLength] != '\n' {
		return nil, 0, objects.NewMalformedObject("decode_record", "missing record terminator", nil)
	}

	record, err := NewTreeRecord(mode, name, target)
	if err != nil {
		// Structurally invalid names inside a serialized tree are bytes the
		// encoder could never have produced.
		return nil, 0, objects.NewMalformedObject("decode_record", "invalid record", err)
	}

	consumed := spaceIndex + 1 + colonIndex + 1 + needed
	return record, offset + consumed, nil
}

// validateRecordName enforces the path-segment rules for record names
func validateRecordName(name string) error {
	if name == "" {
		return objects.NewInvalidConstruction("new_record", "record name cannot be empty")
	}
	if strings.ContainsAny(name, "/\x00") {
		return objects.NewInvalidConstruction("new_record", "invalid characters in record name: "+name)
	}
	return nil
}
