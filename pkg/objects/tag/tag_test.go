package tag

import (
	"bytes"
	"testing"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

const (
	commitDigest = "7455861669462277516ab3065f6529083d45021cc2b4d84444957ea13fe46f5d"

	// digest of: object <commitDigest> / tag v1.0.0 / tagger Ada Lovelace /
	// timestamp 1700000000 / "first release"
	releaseTagDigest = "ab21384f4e957c66f0290134dcc72da604ca596c62afdfac22b1401596efa42e"
)

func TestNewTag(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		tagName   string
		tagger    string
		timestamp int64
		wantErr   bool
	}{
		{
			name:      "valid tag",
			target:    commitDigest,
			tagName:   "v1.0.0",
			tagger:    "Ada Lovelace",
			timestamp: 1700000000,
		},
		{
			name:      "zero timestamp",
			target:    commitDigest,
			tagName:   "v0",
			tagger:    "A",
			timestamp: 0,
		},
		{
			name:      "invalid target digest",
			target:    "nope",
			tagName:   "v1.0.0",
			tagger:    "Ada Lovelace",
			timestamp: 0,
			wantErr:   true,
		},
		{
			name:      "empty tag name",
			target:    commitDigest,
			tagName:   "",
			tagger:    "Ada Lovelace",
			timestamp: 0,
			wantErr:   true,
		},
		{
			name:      "tag name with newline",
			target:    commitDigest,
			tagName:   "v1\n0",
			tagger:    "Ada Lovelace",
			timestamp: 0,
			wantErr:   true,
		},
		{
			name:      "empty tagger",
			target:    commitDigest,
			tagName:   "v1.0.0",
			tagger:    " ",
			timestamp: 0,
			wantErr:   true,
		},
		{
			name:      "negative timestamp",
			target:    commitDigest,
			tagName:   "v1.0.0",
			tagger:    "Ada Lovelace",
			timestamp: -7,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTag(objects.Digest(tt.target), tt.tagName, tt.tagger, tt.timestamp, "msg")

			if tt.wantErr {
				if err == nil {
					t.Error("NewTag() expected error but got none")
				}
				if !objects.IsInvalidConstruction(err) {
					t.Errorf("NewTag() error should carry INVALID_CONSTRUCTION, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTag() unexpected error = %v", err)
			}
		})
	}
}

func TestTag_Digest_KnownValue(t *testing.T) {
	tag, err := NewTag(commitDigest, "v1.0.0", "Ada Lovelace", 1700000000, "first release")
	if err != nil {
		t.Fatalf("NewTag() error = %v", err)
	}

	if got := tag.Digest().String(); got != releaseTagDigest {
		t.Errorf("Digest() = %s, want %s", got, releaseTagDigest)
	}
}

func TestParseTag(t *testing.T) {
	serialize := func(content string) []byte {
		return objects.Encode(objects.TagKind, []byte(content))
	}

	valid := "object " + commitDigest + "\ntag v1.0.0\ntagger Ada Lovelace\ntimestamp 1700000000\n\nfirst release"

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name: "valid tag",
			data: serialize(valid),
		},
		{
			name: "empty message",
			data: serialize("object " + commitDigest + "\ntag v1\ntagger A\ntimestamp 0\n\n"),
		},
		{
			name:    "missing separator",
			data:    serialize("object " + commitDigest + "\ntag v1\ntagger A\ntimestamp 0"),
			wantErr: true,
		},
		{
			name:    "missing tagger field",
			data:    serialize("object " + commitDigest + "\ntag v1\ntimestamp 0\n\nmsg"),
			wantErr: true,
		},
		{
			name:    "fields out of order",
			data:    serialize("tag v1\nobject " + commitDigest + "\ntagger A\ntimestamp 0\n\nmsg"),
			wantErr: true,
		},
		{
			name:    "extra header field",
			data:    serialize("object " + commitDigest + "\ntag v1\ntagger A\ntimestamp 0\nextra x\n\nmsg"),
			wantErr: true,
		},
		{
			name:    "bad target digest",
			data:    serialize("object nope\ntag v1\ntagger A\ntimestamp 0\n\nmsg"),
			wantErr: true,
		},
		{
			name:    "non-canonical timestamp",
			data:    serialize("object " + commitDigest + "\ntag v1\ntagger A\ntimestamp 01\n\nmsg"),
			wantErr: true,
		},
		{
			name:    "wrong kind tag",
			data:    objects.Encode(objects.CommitKind, []byte(valid)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := ParseTag(tt.data)

			if tt.wantErr {
				if err == nil {
					t.Error("ParseTag() expected error but got none")
				}
				if !objects.IsMalformedObject(err) {
					t.Errorf("ParseTag() error should carry MALFORMED_OBJECT, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseTag() unexpected error = %v", err)
			}
			if tag.Target() != objects.Digest(commitDigest) {
				t.Errorf("Target() = %s", tag.Target())
			}
		})
	}
}

func TestTag_SerializeAndParse_RoundTrip(t *testing.T) {
	original, err := NewTag(commitDigest, "v2.1.0", "Ada Lovelace <ada@example.com>", 1700000000,
		"release notes\n\nwith body lines")
	if err != nil {
		t.Fatalf("NewTag() error = %v", err)
	}

	var buf bytes.Buffer
	if err := original.Serialize(&buf); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	parsed, err := ParseTag(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseTag() error = %v", err)
	}

	if original.Digest() != parsed.Digest() {
		t.Errorf("digest mismatch: %s vs %s", original.Digest(), parsed.Digest())
	}
	if parsed.Name() != original.Name() ||
		parsed.Tagger() != original.Tagger() ||
		parsed.Timestamp() != original.Timestamp() ||
		parsed.Message() != original.Message() {
		t.Error("tag fields changed across a round trip")
	}
}

func TestTag_InterfaceCompliance(t *testing.T) {
	var _ objects.Object = (*Tag)(nil)
}
