package cafpath

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/utkarsh5026/gocaf/pkg/objects"
)

func TestNewRepositoryPath(t *testing.T) {
	rp, err := NewRepositoryPath(".")
	if err != nil {
		t.Fatalf("NewRepositoryPath() error = %v", err)
	}
	if !rp.IsValid() {
		t.Errorf("NewRepositoryPath(.) = %s should be absolute", rp)
	}
}

func TestRepositoryPath_Layout(t *testing.T) {
	rp := RepositoryPath("/work/project")

	cafDir := rp.CafPath()
	if cafDir.String() != filepath.Join("/work/project", CafDir) {
		t.Errorf("CafPath() = %s", cafDir)
	}

	objectsDir := cafDir.ObjectsPath()
	if objectsDir.String() != filepath.Join("/work/project", CafDir, ObjectsDir) {
		t.Errorf("ObjectsPath() = %s", objectsDir)
	}

	configPath := cafDir.ConfigPath()
	if configPath != filepath.Join("/work/project", CafDir, ConfigFile) {
		t.Errorf("ConfigPath() = %s", configPath)
	}
}

func TestObjectsPath_ObjectFilePath(t *testing.T) {
	op := ObjectsPath("/repo/.caf/objects")
	digest := objects.Digest("8aec4e4876f854f688d0ebfc8f37598f38e5fd6903cccc850ca36591175aeb60")

	path, err := op.ObjectFilePath(digest)
	if err != nil {
		t.Fatalf("ObjectFilePath() error = %v", err)
	}

	want := filepath.Join("/repo/.caf/objects", "8a", digest.String()[2:])
	if path != want {
		t.Errorf("ObjectFilePath() = %s, want %s", path, want)
	}
}

func TestObjectsPath_ObjectFilePath_RejectsBadDigest(t *testing.T) {
	op := ObjectsPath("/repo/.caf/objects")

	bad := []string{
		"",
		"short",
		strings.Repeat("G", 64),
		strings.Repeat("a", 63),
	}
	for _, digest := range bad {
		if _, err := op.ObjectFilePath(objects.Digest(digest)); err == nil {
			t.Errorf("ObjectFilePath(%q) should fail", digest)
		}
	}
}
