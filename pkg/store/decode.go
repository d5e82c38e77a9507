package store

import (
	"github.com/utkarsh5026/gocaf/pkg/objects"
	"github.com/utkarsh5026/gocaf/pkg/objects/blob"
	"github.com/utkarsh5026/gocaf/pkg/objects/commit"
	"github.com/utkarsh5026/gocaf/pkg/objects/tag"
	"github.com/utkarsh5026/gocaf/pkg/objects/tree"
)

// decodeObject reconstructs a typed object from its serialized form,
// dispatching on the kind tag in the header.
func decodeObject(data []byte) (objects.Object, error) {
	kind, err := objects.PeekKind(data)
	if err != nil {
		return nil, err
	}

	switch kind {
	case objects.BlobKind:
		return blob.ParseBlob(data)
	case objects.TreeKind:
		return tree.ParseTree(data)
	case objects.CommitKind:
		return commit.ParseCommit(data)
	case objects.TagKind:
		return tag.ParseTag(data)
	default:
		// ParseHeader only admits the four kinds; this is unreachable.
		return nil, objects.NewMalformedObject("decode", "unknown object kind: "+kind.String(), nil)
	}
}

// verifyTargets checks that every reference of obj that is already present
// in the store carries the kind the referencing object requires. Absent
// references are fine; tag targets may be any kind.
func verifyTargets(s ObjectStore, obj objects.Object) error {
	check := func(target objects.Digest, want objects.ObjectKind) error {
		got, err := s.KindOf(target)
		if err != nil {
			if IsNotFound(err) {
				return nil
			}
			return err
		}
		if got != want {
			return kindMismatchError("put", target, want, got)
		}
		return nil
	}

	switch o := obj.(type) {
	case *tree.Tree:
		for _, record := range o.Records() {
			if err := check(record.Target(), record.Mode().TargetKind()); err != nil {
				return err
			}
		}
	case *commit.Commit:
		if err := check(o.TreeDigest(), objects.TreeKind); err != nil {
			return err
		}
		for _, parent := range o.Parents() {
			if err := check(parent, objects.CommitKind); err != nil {
				return err
			}
		}
	}
	return nil
}
