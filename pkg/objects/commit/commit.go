package commit

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

// Commit represents one point-in-time snapshot plus provenance: a root tree,
// an ordered list of parent commits, an author, a timestamp, and a message.
//
// Canonical content:
//
//	tree <digest>
//	parent <digest>        (zero or more, original order preserved)
//	author <author>
//	timestamp <seconds>
//
//	<message>
//
// Field order is fixed. The message is free text and comes last with no
// trailing field, so it can never be confused with a header line. Parent
// order is semantically meaningful (first parent = primary ancestor) and
// survives encode/decode exactly.
type Commit struct {
	tree      objects.Digest
	parents   []objects.Digest
	author    string
	timestamp int64
	message   string

	digestOnce sync.Once
	digest     objects.Digest
}

// NewCommit creates a Commit with structural validation.
// Referenced digests are not resolved; a commit may legitimately point at a
// tree that has not been written anywhere yet.
func NewCommit(tree objects.Digest, parents []objects.Digest, author string, timestamp int64, message string) (*Commit, error) {
	if err := tree.Validate(); err != nil {
		return nil, objects.NewInvalidConstruction("new_commit", fmt.Sprintf("invalid tree digest: %v", err))
	}
	for i, parent := range parents {
		if err := parent.Validate(); err != nil {
			return nil, objects.NewInvalidConstruction("new_commit",
				fmt.Sprintf("invalid parent digest at %d: %v", i, err))
		}
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}
	if timestamp < 0 {
		return nil, objects.NewInvalidConstruction("new_commit",
			fmt.Sprintf("timestamp cannot be negative: %d", timestamp))
	}

	owned := make([]objects.Digest, len(parents))
	copy(owned, parents)

	return &Commit{
		tree:      tree,
		parents:   owned,
		author:    author,
		timestamp: timestamp,
		message:   message,
	}, nil
}

// ParseCommit parses a commit from its serialized form (with header).
// Header fields must appear in exactly the order the encoder writes them.
func ParseCommit(data []byte) (*Commit, error) {
	content, err := objects.ParseContent(data, objects.CommitKind)
	if err != nil {
		return nil, err
	}

	sep := bytes.Index(content, []byte("\n\n"))
	if sep == -1 {
		return nil, objects.NewMalformedObject("parse_commit", "missing header/message separator", nil)
	}
	lines := strings.Split(string(content[:sep]), "\n")
	message := string(content[sep+2:])

	i := 0
	tree, err := fieldValue(lines, &i, "tree")
	if err != nil {
		return nil, err
	}
	treeDigest, err := objects.ParseDigest(tree)
	if err != nil {
		return nil, objects.NewMalformedObject("parse_commit", "bad tree digest", err)
	}

	var parents []objects.Digest
	for i < len(lines) && strings.HasPrefix(lines[i], "parent ") {
		parent, err := objects.ParseDigest(strings.TrimPrefix(lines[i], "parent "))
		if err != nil {
			return nil, objects.NewMalformedObject("parse_commit", "bad parent digest", err)
		}
		parents = append(parents, parent)
		i++
	}

	author, err := fieldValue(lines, &i, "author")
	if err != nil {
		return nil, err
	}

	tsField, err := fieldValue(lines, &i, "timestamp")
	if err != nil {
		return nil, err
	}
	timestamp, err := objects.ParseCanonicalDecimal(tsField)
	if err != nil {
		return nil, err
	}

	if i != len(lines) {
		return nil, objects.NewMalformedObject("parse_commit", "unexpected header line: "+lines[i], nil)
	}

	c, err := NewCommit(treeDigest, parents, author, timestamp, message)
	if err != nil {
		return nil, objects.NewMalformedObject("parse_commit", "invalid commit", err)
	}
	c.digestOnce.Do(func() {
		c.digest = objects.ComputeDigest(data)
	})
	return c, nil
}

// fieldValue consumes one "key value" header line at *i, failing when the
// line is absent or keyed differently than the canonical order demands.
func fieldValue(lines []string, i *int, key string) (string, error) {
	if *i >= len(lines) || !strings.HasPrefix(lines[*i], key+" ") {
		return "", objects.NewMalformedObject("parse_commit", "missing "+key+" field", nil)
	}
	value := strings.TrimPrefix(lines[*i], key+" ")
	*i++
	return value, nil
}

// Kind returns the object kind
func (c *Commit) Kind() objects.ObjectKind {
	return objects.CommitKind
}

// Content returns the canonical encoding of the commit
func (c *Commit) Content() []byte {
	var buf bytes.Buffer
	buf.WriteString("tree ")
	buf.WriteString(string(c.tree))
	buf.WriteByte('\n')
	for _, parent := range c.parents {
		buf.WriteString("parent ")
		buf.WriteString(string(parent))
		buf.WriteByte('\n')
	}
	buf.WriteString("author ")
	buf.WriteString(c.author)
	buf.WriteByte('\n')
	buf.WriteString("timestamp ")
	buf.WriteString(strconv.FormatInt(c.timestamp, 10))
	buf.WriteString("\n\n")
	buf.WriteString(c.message)
	return buf.Bytes()
}

// Size returns the size of the canonical content in bytes
func (c *Commit) Size() int64 {
	return int64(len(c.Content()))
}

// Digest returns the SHA-256 identity of the commit
func (c *Commit) Digest() objects.Digest {
	c.digestOnce.Do(func() {
		c.digest = objects.ComputeObjectDigest(objects.CommitKind, c.Content())
	})
	return c.digest
}

// Serialize writes the commit in storage format
func (c *Commit) Serialize(w io.Writer) error {
	return objects.WriteTo(w, objects.CommitKind, c.Content())
}

// String returns a human-readable representation
func (c *Commit) String() string {
	return fmt.Sprintf("Commit{digest: %s, tree: %s, parents: %d, message: %.50s}",
		c.Digest().Short(), c.tree.Short(), len(c.parents), c.message)
}

// TreeDigest returns the digest of the root tree
func (c *Commit) TreeDigest() objects.Digest {
	return c.tree
}

// Parents returns a copy of the parent digests in their original order
func (c *Commit) Parents() []objects.Digest {
	parents := make([]objects.Digest, len(c.parents))
	copy(parents, c.parents)
	return parents
}

// Author returns the author line
func (c *Commit) Author() string {
	return c.author
}

// Timestamp returns the commit time as seconds since epoch
func (c *Commit) Timestamp() int64 {
	return c.timestamp
}

// Message returns the commit message
func (c *Commit) Message() string {
	return c.message
}

// IsRootCommit returns true if this commit has no parents
func (c *Commit) IsRootCommit() bool {
	return len(c.parents) == 0
}

// IsMergeCommit returns true if this commit has multiple parents
func (c *Commit) IsMergeCommit() bool {
	return len(c.parents) > 1
}

// validateAuthor enforces the author rules shared by commits and tags:
// non-empty, and newline-free so the canonical header stays line-oriented.
func validateAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return objects.NewInvalidConstruction("new_commit", "author cannot be empty")
	}
	if strings.Contains(author, "\n") {
		return objects.NewInvalidConstruction("new_commit", "author cannot contain newlines")
	}
	return nil
}
