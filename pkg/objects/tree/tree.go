package tree

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

// Tree represents a directory snapshot: an ordered set of records, each
// pointing at a blob or a subtree by digest.
//
// Canonical content is the concatenation of serialized records sorted by
// name in byte-wise ascending order. Sorting happens at construction, so
// two trees built from the same records in any insertion order hash
// identically. Names are unique within a tree; duplicates are rejected.
type Tree struct {
	records []*TreeRecord

	digestOnce sync.Once
	digest     objects.Digest
}

// NewTree creates a Tree from the given records.
// Records are copied and sorted into canonical order; duplicate names fail
// construction.
func NewTree(records []*TreeRecord) (*Tree, error) {
	sorted := make([]*TreeRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].compareTo(sorted[j]) < 0
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].name == sorted[i-1].name {
			return nil, objects.NewInvalidConstruction("new_tree",
				"duplicate record name: "+sorted[i].name)
		}
	}

	return &Tree{records: sorted}, nil
}

// ParseTree parses a tree from its serialized form (with header).
// Records must appear in strictly ascending name order; anything else is
// a byte sequence the encoder never produces.
func ParseTree(data []byte) (*Tree, error) {
	content, err := objects.ParseContent(data, objects.TreeKind)
	if err != nil {
		return nil, err
	}

	var records []*TreeRecord
	offset := 0
	for offset < len(content) {
		record, next, err := decodeRecord(content, offset)
		if err != nil {
			return nil, err
		}
		if n := len(records); n > 0 && records[n-1].compareTo(record) >= 0 {
			return nil, objects.NewMalformedObject("parse_tree",
				"records not in canonical order at "+record.name, nil)
		}
		records = append(records, record)
		offset = next
	}

	t := &Tree{records: records}
	t.digestOnce.Do(func() {
		t.digest = objects.ComputeDigest(data)
	})
	return t, nil
}

// Kind returns the object kind
func (t *Tree) Kind() objects.ObjectKind {
	return objects.TreeKind
}

// Content returns the canonical encoding of the tree
func (t *Tree) Content() []byte {
	var buf bytes.Buffer
	for _, record := range t.records {
		record.appendRecord(&buf)
	}
	return buf.Bytes()
}

// Size returns the size of the canonical content in bytes
func (t *Tree) Size() int64 {
	return int64(len(t.Content()))
}

// Digest returns the SHA-256 identity of the tree
func (t *Tree) Digest() objects.Digest {
	t.digestOnce.Do(func() {
		t.digest = objects.ComputeObjectDigest(objects.TreeKind, t.Content())
	})
	return t.digest
}

// Serialize writes the tree in storage format
func (t *Tree) Serialize(w io.Writer) error {
	return objects.WriteTo(w, objects.TreeKind, t.Content())
}

// String returns a human-readable representation
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{records: %d, digest: %s}", len(t.records), t.Digest().Short())
}

// Records returns a copy of the records in canonical order
func (t *Tree) Records() []*TreeRecord {
	records := make([]*TreeRecord, len(t.records))
	copy(records, t.records)
	return records
}

// Find returns the record with the given name, if present
func (t *Tree) Find(name string) (*TreeRecord, bool) {
	i := sort.Search(len(t.records), func(i int) bool {
		return t.records[i].name >= name
	})
	if i < len(t.records) && t.records[i].name == name {
		return t.records[i], true
	}
	return nil, false
}

// IsEmpty returns true if the tree has no records
func (t *Tree) IsEmpty() bool {
	return len(t.records) == 0
}
