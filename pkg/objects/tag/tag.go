package tag

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

// Tag is a named, annotated pointer to another object. The target is
// usually a commit but may be any object digest.
//
// Canonical content:
//
//	object <digest>
//	tag <name>
//	tagger <tagger>
//	timestamp <seconds>
//
//	<message>
//
// Same framing rules as commits: fixed field order, message last.
type Tag struct {
	target    objects.Digest
	name      string
	tagger    string
	timestamp int64
	message   string

	digestOnce sync.Once
	digest     objects.Digest
}

// NewTag creates a Tag with structural validation.
func NewTag(target objects.Digest, name, tagger string, timestamp int64, message string) (*Tag, error) {
	if err := target.Validate(); err != nil {
		return nil, objects.NewInvalidConstruction("new_tag", fmt.Sprintf("invalid target digest: %v", err))
	}
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(tagger) == "" {
		return nil, objects.NewInvalidConstruction("new_tag", "tagger cannot be empty")
	}
	if strings.Contains(tagger, "\n") {
		return nil, objects.NewInvalidConstruction("new_tag", "tagger cannot contain newlines")
	}
	if timestamp < 0 {
		return nil, objects.NewInvalidConstruction("new_tag",
			fmt.Sprintf("timestamp cannot be negative: %d", timestamp))
	}

	return &Tag{
		target:    target,
		name:      name,
		tagger:    tagger,
		timestamp: timestamp,
		message:   message,
	}, nil
}

// ParseTag parses a tag from its serialized form (with header).
func ParseTag(data []byte) (*Tag, error) {
	content, err := objects.ParseContent(data, objects.TagKind)
	if err != nil {
		return nil, err
	}

	sep := bytes.Index(content, []byte("\n\n"))
	if sep == -1 {
		return nil, objects.NewMalformedObject("parse_tag", "missing header/message separator", nil)
	}
	lines := strings.Split(string(content[:sep]), "\n")
	message := string(content[sep+2:])

	if len(lines) != 4 {
		return nil, objects.NewMalformedObject("parse_tag",
			fmt.Sprintf("expected 4 header fields, got %d", len(lines)), nil)
	}

	fields := make([]string, 4)
	for i, key := range []string{"object", "tag", "tagger", "timestamp"} {
		if !strings.HasPrefix(lines[i], key+" ") {
			return nil, objects.NewMalformedObject("parse_tag", "missing "+key+" field", nil)
		}
		fields[i] = strings.TrimPrefix(lines[i], key+" ")
	}

	target, err := objects.ParseDigest(fields[0])
	if err != nil {
		return nil, objects.NewMalformedObject("parse_tag", "bad target digest", err)
	}
	timestamp, err := objects.ParseCanonicalDecimal(fields[3])
	if err != nil {
		return nil, err
	}

	t, err := NewTag(target, fields[1], fields[2], timestamp, message)
	if err != nil {
		return nil, objects.NewMalformedObject("parse_tag", "invalid tag", err)
	}
	t.digestOnce.Do(func() {
		t.digest = objects.ComputeDigest(data)
	})
	return t, nil
}

// Kind returns the object kind
func (t *Tag) Kind() objects.ObjectKind {
	return objects.TagKind
}

// Content returns the canonical encoding of the tag
func (t *Tag) Content() []byte {
	var buf bytes.Buffer
	buf.WriteString("object ")
	buf.WriteString(string(t.target))
	buf.WriteByte('\n')
	buf.WriteString("tag ")
	buf.WriteString(t.name)
	buf.WriteByte('\n')
	buf.WriteString("tagger ")
	buf.WriteString(t.tagger)
	buf.WriteByte('\n')
	buf.WriteString("timestamp ")
	buf.WriteString(strconv.FormatInt(t.timestamp, 10))
	buf.WriteString("\n\n")
	buf.WriteString(t.message)
	return buf.Bytes()
}

// Size returns the size of the canonical content in bytes
func (t *Tag) Size() int64 {
	return int64(len(t.Content()))
}

// Digest returns the SHA-256 identity of the tag
func (t *Tag) Digest() objects.Digest {
	t.digestOnce.Do(func() {
		t.digest = objects.ComputeObjectDigest(objects.TagKind, t.Content())
	})
	return t.digest
}

// Serialize writes the tag in storage format
func (t *Tag) Serialize(w io.Writer) error {
	return objects.WriteTo(w, objects.TagKind, t.Content())
}

// String returns a human-readable representation
func (t *Tag) String() string {
	return fmt.Sprintf("Tag{name: %s, target: %s, digest: %s}", t.name, t.target.Short(), t.Digest().Short())
}

// Target returns the digest of the referenced object
func (t *Tag) Target() objects.Digest {
	return t.target
}

// Name returns the tag name
func (t *Tag) Name() string {
	return t.name
}

// Tagger returns the tagger line
func (t *Tag) Tagger() string {
	return t.tagger
}

// Timestamp returns the tag time as seconds since epoch
func (t *Tag) Timestamp() int64 {
	return t.timestamp
}

// Message returns the tag message
func (t *Tag) Message() string {
	return t.message
}

func validateTagName(name string) error {
	if name == "" {
		return objects.NewInvalidConstruction("new_tag", "tag name cannot be empty")
	}
	if strings.Contains(name, "\n") {
		return objects.NewInvalidConstruction("new_tag", "tag name cannot contain newlines")
	}
	return nil
}
