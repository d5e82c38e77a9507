package objects

import (
	"strings"
	"testing"
)

const helloBlobDigest = "8aec4e4876f854f688d0ebfc8f37598f38e5fd6903cccc850ca36591175aeb60"

func TestParseDigest(t *testing.T) {
	valid := strings.Repeat("ab12", 16)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid lowercase digest",
			input:   valid,
			wantErr: false,
		},
		{
			name:    "all zeros",
			input:   strings.Repeat("0", 64),
			wantErr: false,
		},
		{
			name:    "uppercase rejected",
			input:   strings.ToUpper(valid),
			wantErr: true,
		},
		{
			name:    "mixed case rejected",
			input:   "A" + valid[1:],
			wantErr: true,
		},
		{
			name:    "too short",
			input:   valid[:63],
			wantErr: true,
		},
		{
			name:    "too long",
			input:   valid + "a",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non-hex character",
			input:   "g" + valid[1:],
			wantErr: true,
		},
		{
			name:    "whitespace",
			input:   " " + valid[1:],
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := ParseDigest(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDigest(%q) expected error but got none", tt.input)
				}
				if !IsInvalidDigestFormat(err) {
					t.Errorf("ParseDigest(%q) error should carry INVALID_DIGEST_FORMAT, got %v", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseDigest(%q) unexpected error = %v", tt.input, err)
			}
			if digest.String() != tt.input {
				t.Errorf("ParseDigest(%q) = %q", tt.input, digest)
			}
		})
	}
}

func TestComputeObjectDigest_KnownValue(t *testing.T) {
	digest := ComputeObjectDigest(BlobKind, []byte("hello"))
	if digest.String() != helloBlobDigest {
		t.Errorf("digest of blob %q = %s, want %s", "hello", digest, helloBlobDigest)
	}
}

func TestComputeObjectDigest_Deterministic(t *testing.T) {
	data := []byte("some content\nwith lines\n")

	first := ComputeObjectDigest(BlobKind, data)
	second := ComputeObjectDigest(BlobKind, data)

	if first != second {
		t.Errorf("same kind and content produced different digests: %s vs %s", first, second)
	}
}

func TestComputeObjectDigest_KindSeparatesIdenticalBytes(t *testing.T) {
	// The kind tag participates in the hashed input, so equal raw bytes
	// under different kinds must never collide.
	content := []byte("payload bytes")

	kinds := []ObjectKind{BlobKind, TreeKind, CommitKind, TagKind}
	seen := map[Digest]ObjectKind{}
	for _, kind := range kinds {
		digest := ComputeObjectDigest(kind, content)
		if prev, ok := seen[digest]; ok {
			t.Errorf("kinds %s and %s produced the same digest %s", prev, kind, digest)
		}
		seen[digest] = kind
	}
}

func TestDigest_Short(t *testing.T) {
	digest := Digest(helloBlobDigest)
	if got := digest.Short().String(); got != helloBlobDigest[:8] {
		t.Errorf("Short() = %s, want %s", got, helloBlobDigest[:8])
	}
}

func TestDigest_Bytes(t *testing.T) {
	digest := Digest(helloBlobDigest)

	raw, err := digest.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if len(raw) != RawDigestLength {
		t.Errorf("Bytes() length = %d, want %d", len(raw), RawDigestLength)
	}
}

func TestDigest_UnmarshalText(t *testing.T) {
	var digest Digest
	if err := digest.UnmarshalText([]byte(helloBlobDigest)); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if digest.String() != helloBlobDigest {
		t.Errorf("UnmarshalText() = %s, want %s", digest, helloBlobDigest)
	}

	if err := digest.UnmarshalText([]byte("not a digest")); err == nil {
		t.Error("UnmarshalText() should reject malformed input")
	}
}
