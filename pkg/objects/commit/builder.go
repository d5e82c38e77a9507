package commit

import (
	"fmt"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

// CommitBuilder provides a fluent interface for building commits
type CommitBuilder struct {
	tree      objects.Digest
	parents   []objects.Digest
	author    string
	timestamp int64
	message   string
	errs      []error
}

// NewCommitBuilder creates a new CommitBuilder
func NewCommitBuilder() *CommitBuilder {
	return &CommitBuilder{}
}

// Tree sets the root tree digest for the commit
func (b *CommitBuilder) Tree(tree objects.Digest) *CommitBuilder {
	if err := tree.Validate(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("invalid tree digest: %w", err))
	} else {
		b.tree = tree
	}
	return b
}

// Parent appends a parent digest; call order defines parent order
func (b *CommitBuilder) Parent(parent objects.Digest) *CommitBuilder {
	if err := parent.Validate(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("invalid parent digest: %w", err))
	} else {
		b.parents = append(b.parents, parent)
	}
	return b
}

// Parents appends multiple parent digests in the given order
func (b *CommitBuilder) Parents(parents ...objects.Digest) *CommitBuilder {
	for _, parent := range parents {
		b.Parent(parent)
	}
	return b
}

// Author sets the author line
func (b *CommitBuilder) Author(author string) *CommitBuilder {
	b.author = author
	return b
}

// Timestamp sets the commit time as seconds since epoch
func (b *CommitBuilder) Timestamp(timestamp int64) *CommitBuilder {
	b.timestamp = timestamp
	return b
}

// Message sets the commit message
func (b *CommitBuilder) Message(message string) *CommitBuilder {
	b.message = message
	return b
}

// Build creates the Commit, returning an error if any field failed validation
func (b *CommitBuilder) Build() (*Commit, error) {
	if len(b.errs) > 0 {
		return nil, objects.NewInvalidConstruction("build_commit",
			fmt.Sprintf("commit builder errors: %v", b.errs))
	}
	return NewCommit(b.tree, b.parents, b.author, b.timestamp, b.message)
}
