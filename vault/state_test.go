package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLocalState(t *testing.T) {
	s := NewLocalState("/tmp/test.json")
	if s.Nodes == nil {
		t.Fatal("Nodes map should not be nil")
	}
	if s.GetNode("/") == nil {
		t.Fatal("root node should exist")
	}
}

func TestLoadLocalState_FileNotExist(t *testing.T) {
	s, err := LoadLocalState(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("LoadLocalState on missing file: %v", err)
	}
	if s.Nodes == nil {
		t.Error("Nodes should be initialized")
	}
	if s.GetNode("/") == nil {
		t.Error("root node should be initialized")
	}
}

func TestLoadLocalState_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(p, []byte("not json"), 0600)

	_, err := LoadLocalState(p)
	if err == nil {
		t.Error("LoadLocalState(invalid JSON) expected error")
	}
}

func TestLocalState_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "state.json")

	s := NewLocalState(p)
	s.SetNode("/hello.txt", &NodeState{
		Path:     "/hello.txt",
		Type:     "file",
		Chunks:   []ChunkRef{{ContentHash: []byte{1, 2, 3}, EncryptedKey: []byte{4, 5, 6}}},
		FileSize: 42,
	})

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadLocalState(p)
	if err != nil {
		t.Fatalf("LoadLocalState: %v", err)
	}

	node := loaded.GetNode("/hello.txt")
	if node == nil {
		t.Fatal("loaded state missing node '/hello.txt'")
	}
	if node.FileSize != 42 {
		t.Errorf("node.FileSize = %d, want 42", node.FileSize)
	}
}

func TestLocalState_SaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "sub", "deep", "state.json")

	s := NewLocalState(p)
	if err := s.Save(); err != nil {
		t.Fatalf("Save with nested dir: %v", err)
	}

	if _, err := os.Stat(p); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestLoadLocalState_NilMaps(t *testing.T) {
	p := filepath.Join(t.TempDir(), "state.json")
	os.WriteFile(p, []byte(`{}`), 0600)

	s, err := LoadLocalState(p)
	if err != nil {
		t.Fatalf("LoadLocalState: %v", err)
	}
	if s.Nodes == nil {
		t.Error("Nodes should be initialized")
	}
	if s.GetNode("/") == nil {
		t.Error("root node should be synthesized when missing")
	}
}

func TestLocalState_GetSetNode(t *testing.T) {
	s := NewLocalState("")

	if n := s.GetNode("/docs"); n != nil {
		t.Error("expected nil for missing path")
	}

	node := &NodeState{Path: "/docs", Type: "dir"}
	s.SetNode("/docs", node)

	got := s.GetNode("/docs")
	if got == nil {
		t.Fatal("expected node")
	}
	if got.Type != "dir" {
		t.Errorf("node.Type = %q, want dir", got.Type)
	}

	s.SetNode("/docs", &NodeState{Path: "/docs", Type: "dir", Description: "updated"})
	if s.GetNode("/docs").Description != "updated" {
		t.Error("overwrite failed")
	}
}

func TestLocalState_DeleteNode(t *testing.T) {
	s := NewLocalState("")
	s.SetNode("/a", &NodeState{Path: "/a", Type: "file"})
	if s.GetNode("/a") == nil {
		t.Fatal("setup: node should exist")
	}

	s.DeleteNode("/a")
	if s.GetNode("/a") != nil {
		t.Error("node should be gone after DeleteNode")
	}
}

func TestLocalState_ListChildren(t *testing.T) {
	s := NewLocalState("")
	root := s.GetNode("/")
	root.Children = []string{"/a", "/b"}
	s.SetNode("/", root)

	got := s.ListChildren("/")
	if len(got) != 2 || got[0] != "/a" || got[1] != "/b" {
		t.Errorf("ListChildren(/) = %v, want [/a /b]", got)
	}

	if got := s.ListChildren("/nope"); got != nil {
		t.Errorf("ListChildren(missing) = %v, want nil", got)
	}
}
