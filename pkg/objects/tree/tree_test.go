package tree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

const (
	helloDigest = "8aec4e4876f854f688d0ebfc8f37598f38e5fd6903cccc850ca36591175aeb60"
	worldDigest = "8df3dab4ddfa6eb2a34065cda27d95af2709d4d2658e1b5fbd145822acf42b28"

	// tree with the single record "100644 5:a.txt <helloDigest>\n"
	oneRecordTreeDigest = "4805f5fa4509c45a0639315019d16a0c3e1007605a5b67bb92043002df65a967"
	// tree with a.txt -> helloDigest and b.txt -> worldDigest
	twoRecordTreeDigest = "db76c7f4009c3fcd732b6ec5fa93ff435f4bf85d109878633ee2606051a9e41f"
)

func mustRecord(t *testing.T, mode RecordMode, name string, target string) *TreeRecord {
	t.Helper()
	record, err := NewTreeRecord(mode, name, objects.Digest(target))
	if err != nil {
		t.Fatalf("NewTreeRecord(%s, %s) error = %v", mode, name, err)
	}
	return record
}

func TestNewTreeRecord(t *testing.T) {
	tests := []struct {
		name       string
		mode       RecordMode
		recordName string
		target     string
		wantErr    bool
	}{
		{
			name:       "valid file record",
			mode:       ModeFile,
			recordName: "a.txt",
			target:     helloDigest,
		},
		{
			name:       "valid directory record",
			mode:       ModeDirectory,
			recordName: "src",
			target:     oneRecordTreeDigest,
		},
		{
			name:       "valid symlink record",
			mode:       ModeSymlink,
			recordName: "link",
			target:     helloDigest,
		},
		{
			name:       "unknown mode",
			mode:       RecordMode("100600"),
			recordName: "a.txt",
			target:     helloDigest,
			wantErr:    true,
		},
		{
			name:       "empty name",
			mode:       ModeFile,
			recordName: "",
			target:     helloDigest,
			wantErr:    true,
		},
		{
			name:       "name with slash",
			mode:       ModeFile,
			recordName: "dir/file",
			target:     helloDigest,
			wantErr:    true,
		},
		{
			name:       "name with null byte",
			mode:       ModeFile,
			recordName: "a\x00b",
			target:     helloDigest,
			wantErr:    true,
		},
		{
			name:       "invalid target digest",
			mode:       ModeFile,
			recordName: "a.txt",
			target:     "not-a-digest",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTreeRecord(tt.mode, tt.recordName, objects.Digest(tt.target))

			if tt.wantErr {
				if err == nil {
					t.Error("NewTreeRecord() expected error but got none")
				}
				if !objects.IsInvalidConstruction(err) {
					t.Errorf("NewTreeRecord() error should carry INVALID_CONSTRUCTION, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTreeRecord() unexpected error = %v", err)
			}
		})
	}
}

func TestRecordMode_TargetKind(t *testing.T) {
	if ModeDirectory.TargetKind() != objects.TreeKind {
		t.Error("directory records must point at trees")
	}
	for _, mode := range []RecordMode{ModeFile, ModeExecutable, ModeSymlink} {
		if mode.TargetKind() != objects.BlobKind {
			t.Errorf("%s records must point at blobs", mode)
		}
	}
}

func TestNewTree_InsertionOrderIndependence(t *testing.T) {
	a := mustRecord(t, ModeFile, "a.txt", helloDigest)
	b := mustRecord(t, ModeFile, "b.txt", worldDigest)

	forward, err := NewTree([]*TreeRecord{a, b})
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}
	backward, err := NewTree([]*TreeRecord{b, a})
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	if forward.Digest() != backward.Digest() {
		t.Errorf("insertion order changed the digest: %s vs %s",
			forward.Digest(), backward.Digest())
	}
	if forward.Digest().String() != twoRecordTreeDigest {
		t.Errorf("Digest() = %s, want %s", forward.Digest(), twoRecordTreeDigest)
	}

	// Canonical bytes place a.txt first even when b.txt was inserted first.
	wantContent := "100644 5:a.txt " + helloDigest + "\n100644 5:b.txt " + worldDigest + "\n"
	if string(backward.Content()) != wantContent {
		t.Errorf("Content() = %q, want %q", backward.Content(), wantContent)
	}
}

func TestNewTree_RejectsDuplicateNames(t *testing.T) {
	first := mustRecord(t, ModeFile, "a.txt", helloDigest)
	second := mustRecord(t, ModeExecutable, "a.txt", worldDigest)

	_, err := NewTree([]*TreeRecord{first, second})
	if err == nil {
		t.Fatal("NewTree() should reject duplicate record names")
	}
	if !objects.IsInvalidConstruction(err) {
		t.Errorf("error should carry INVALID_CONSTRUCTION, got %v", err)
	}
}

func TestTree_Digest_KnownValue(t *testing.T) {
	record := mustRecord(t, ModeFile, "a.txt", helloDigest)
	tree, err := NewTree([]*TreeRecord{record})
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	if got := tree.Digest().String(); got != oneRecordTreeDigest {
		t.Errorf("Digest() = %s, want %s", got, oneRecordTreeDigest)
	}
}

func TestTree_DigestDiffersFromBlobOfSameBytes(t *testing.T) {
	// A blob whose raw content happens to equal a tree's canonical encoding
	// must not share the tree's digest.
	record := mustRecord(t, ModeFile, "a.txt", helloDigest)
	tree, err := NewTree([]*TreeRecord{record})
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	blobDigest := objects.ComputeObjectDigest(objects.BlobKind, tree.Content())
	if blobDigest == tree.Digest() {
		t.Error("blob of tree bytes must not collide with the tree digest")
	}
	const wantBlobDigest = "ccb2af2bc24fabb110881b144b4dcb05615879beffaa834c25a74e6886e72b1e"
	if blobDigest.String() != wantBlobDigest {
		t.Errorf("blob digest = %s, want %s", blobDigest, wantBlobDigest)
	}
}

func TestTree_EmptyTree(t *testing.T) {
	tree, err := NewTree(nil)
	if err != nil {
		t.Fatalf("NewTree(nil) error = %v", err)
	}

	if !tree.IsEmpty() {
		t.Error("IsEmpty() should be true for a tree with no records")
	}
	if tree.Size() != 0 {
		t.Errorf("Size() = %d, want 0", tree.Size())
	}
	if !tree.Digest().IsValid() {
		t.Error("empty tree must still have a valid digest")
	}
}

func TestTree_Find(t *testing.T) {
	tree, err := NewTree([]*TreeRecord{
		mustRecord(t, ModeFile, "b.txt", worldDigest),
		mustRecord(t, ModeFile, "a.txt", helloDigest),
		mustRecord(t, ModeDirectory, "src", oneRecordTreeDigest),
	})
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	record, ok := tree.Find("a.txt")
	if !ok {
		t.Fatal("Find(a.txt) should succeed")
	}
	if record.Target().String() != helloDigest {
		t.Errorf("Find(a.txt).Target() = %s, want %s", record.Target(), helloDigest)
	}

	if _, ok := tree.Find("missing"); ok {
		t.Error("Find(missing) should fail")
	}
}

func TestParseTree(t *testing.T) {
	oneRecord := "100644 5:a.txt " + helloDigest + "\n"
	twoSorted := oneRecord + "100644 5:b.txt " + worldDigest + "\n"
	twoUnsorted := "100644 5:b.txt " + worldDigest + "\n" + oneRecord
	duplicate := oneRecord + oneRecord

	serialize := func(content string) []byte {
		return objects.Encode(objects.TreeKind, []byte(content))
	}

	tests := []struct {
		name        string
		data        []byte
		wantRecords int
		wantErr     bool
	}{
		{
			name:        "empty tree",
			data:        serialize(""),
			wantRecords: 0,
		},
		{
			name:        "one record",
			data:        serialize(oneRecord),
			wantRecords: 1,
		},
		{
			name:        "two sorted records",
			data:        serialize(twoSorted),
			wantRecords: 2,
		},
		{
			name:    "records out of order",
			data:    serialize(twoUnsorted),
			wantErr: true,
		},
		{
			name:    "duplicate names",
			data:    serialize(duplicate),
			wantErr: true,
		},
		{
			name:    "unknown mode",
			data:    serialize("100600 5:a.txt " + helloDigest + "\n"),
			wantErr: true,
		},
		{
			name:    "uppercase digest",
			data:    serialize("100644 5:a.txt " + strings.ToUpper(helloDigest) + "\n"),
			wantErr: true,
		},
		{
			name:    "missing record terminator",
			data:    serialize("100644 5:a.txt " + helloDigest),
			wantErr: true,
		},
		{
			name:    "name length mismatch",
			data:    serialize("100644 4:a.txt " + helloDigest + "\n"),
			wantErr: true,
		},
		{
			name:    "leading zero name length",
			data:    serialize("100644 05:a.txt " + helloDigest + "\n"),
			wantErr: true,
		},
		{
			name:    "truncated record",
			data:    serialize("100644 5:a.txt " + helloDigest[:30]),
			wantErr: true,
		},
		{
			name:    "wrong kind tag",
			data:    objects.Encode(objects.BlobKind, []byte(oneRecord)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := ParseTree(tt.data)

			if tt.wantErr {
				if err == nil {
					t.Error("ParseTree() expected error but got none")
				}
				if !objects.IsMalformedObject(err) {
					t.Errorf("ParseTree() error should carry MALFORMED_OBJECT, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseTree() unexpected error = %v", err)
			}
			if len(tree.Records()) != tt.wantRecords {
				t.Errorf("Records() count = %d, want %d", len(tree.Records()), tt.wantRecords)
			}
		})
	}
}

func TestTree_SerializeAndParse_RoundTrip(t *testing.T) {
	original, err := NewTree([]*TreeRecord{
		mustRecord(t, ModeExecutable, "run.sh", worldDigest),
		mustRecord(t, ModeFile, "a.txt", helloDigest),
		mustRecord(t, ModeDirectory, "src", oneRecordTreeDigest),
		mustRecord(t, ModeSymlink, "link", helloDigest),
	})
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	var buf bytes.Buffer
	if err := original.Serialize(&buf); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	parsed, err := ParseTree(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseTree() error = %v", err)
	}

	if original.Digest() != parsed.Digest() {
		t.Errorf("digest mismatch: original = %s, parsed = %s",
			original.Digest(), parsed.Digest())
	}

	originalRecords := original.Records()
	parsedRecords := parsed.Records()
	if len(originalRecords) != len(parsedRecords) {
		t.Fatalf("record count mismatch: %d vs %d", len(originalRecords), len(parsedRecords))
	}
	for i := range originalRecords {
		if originalRecords[i].Name() != parsedRecords[i].Name() ||
			originalRecords[i].Mode() != parsedRecords[i].Mode() ||
			originalRecords[i].Target() != parsedRecords[i].Target() {
			t.Errorf("record %d mismatch: %s vs %s", i, originalRecords[i], parsedRecords[i])
		}
	}
}

func TestTree_InterfaceCompliance(t *testing.T) {
	var _ objects.Object = (*Tree)(nil)
}
