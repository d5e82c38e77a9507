package objects

// ObjectKind identifies the kind of object stored.
type ObjectKind string

const (
	BlobKind   ObjectKind = "blob"
	TreeKind   ObjectKind = "tree"
	CommitKind ObjectKind = "commit"
	TagKind    ObjectKind = "tag"
)

const (
	NullByte  = byte(0)
	SpaceByte = byte(' ')
)

// String implements the Stringer interface
func (k ObjectKind) String() string {
	return string(k)
}

// ParseObjectKind converts a string to ObjectKind.
// Anything outside the closed set of four kinds is malformed input.
func ParseObjectKind(s string) (ObjectKind, error) {
	switch ObjectKind(s) {
	case BlobKind, TreeKind, CommitKind, TagKind:
		return ObjectKind(s), nil
	default:
		return "", NewMalformedObject("parse_kind", "unknown object kind: "+s, nil)
	}
}
