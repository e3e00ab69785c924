package vault

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// LocalState tracks the vault's virtual filesystem tree.
// Persisted as JSON at {dataDir}/nodes.json.
type LocalState struct {
	Nodes map[string]*NodeState `json:"nodes"` // key: full slash-separated path

	mu   sync.Mutex `json:"-"`
	path string     `json:"-"` // file path for persistence
}

// ChunkRef references one independently encrypted chunk of a file's
// stored content.
type ChunkRef struct {
	// ContentHash is SHA256(SHA256(chunk plaintext)), the key under which
	// this chunk's AES-GCM-encrypted bytes are stored in the vault's
	// FileStore.
	ContentHash []byte `json:"content_hash"`

	// EncryptedKey is this chunk's per-chunk AES-256 key, RSA-OAEP-wrapped
	// under the vault owner's public key. Only the vault owner's private
	// key can unwrap it, so nodes.json never discloses file content even
	// though it is stored unencrypted on disk.
	EncryptedKey []byte `json:"encrypted_key"`
}

// NodeState tracks a single file or directory in the vault tree. A
// node's identity is simply its Path, and its children are tracked by
// path rather than by any external derivation index.
type NodeState struct {
	Path     string   `json:"path"`
	Type     string   `json:"type"` // "file" or "dir"
	Children []string `json:"children,omitempty"`

	// Chunks holds one entry per stored content chunk, in order. A file
	// larger than storage.DefaultChunkSize is split into several chunks,
	// each sealed under its own AES key, since raw RSA-OAEP cannot
	// encrypt a payload wider than the key's MaxMessageLen; a file that
	// fits in a single chunk still goes through this path with one entry.
	// Empty for directories.
	Chunks []ChunkRef `json:"chunks,omitempty"`

	// RecombinationHash is SHA256 over the concatenation of every chunk's
	// (compressed) plaintext, in order. Verified when chunks are
	// reassembled on read.
	RecombinationHash []byte `json:"recombination_hash,omitempty"`

	FileSize    uint64 `json:"file_size,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
	Compression int32  `json:"compression,omitempty"`

	Keywords    string `json:"keywords,omitempty"`
	Description string `json:"description,omitempty"`
}

// NewLocalState creates a new local state rooted at "/".
func NewLocalState(path string) *LocalState {
	return &LocalState{
		Nodes: map[string]*NodeState{
			"/": {Path: "/", Type: "dir"},
		},
		path: path,
	}
}

// LoadLocalState loads local state from disk. Returns a new empty state
// (rooted at "/") if the file does not exist.
func LoadLocalState(path string) (*LocalState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewLocalState(path), nil
		}
		return nil, fmt.Errorf("vault: read local state: %w", err)
	}

	var state LocalState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("vault: parse local state: %w", err)
	}
	if state.Nodes == nil {
		state.Nodes = make(map[string]*NodeState)
	}
	if _, ok := state.Nodes["/"]; !ok {
		state.Nodes["/"] = &NodeState{Path: "/", Type: "dir"}
	}
	state.path = path
	return &state, nil
}

// Reload re-reads the state file from disk (used after acquiring the
// write lock). No-op if the state file has not been persisted yet.
func (s *LocalState) Reload() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil // not yet persisted, keep current in-memory state
	}
	fresh, err := LoadLocalState(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Nodes = fresh.Nodes
	return nil
}

// Save persists the local state to disk.
func (s *LocalState) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("vault: marshal local state: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("vault: create state directory: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// GetNode returns the node state at path, or nil if it doesn't exist.
// Note: the returned pointer escapes the mutex. Callers that mutate the
// returned node must do so within withWriteLock to ensure consistency.
func (s *LocalState) GetNode(path string) *NodeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Nodes[path]
}

// SetNode stores a node state at path.
func (s *LocalState) SetNode(path string, node *NodeState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Nodes[path] = node
}

// DeleteNode removes the node at path.
func (s *LocalState) DeleteNode(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Nodes, path)
}

// ListChildren returns the sorted child paths of the directory at path.
func (s *LocalState) ListChildren(path string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.Nodes[path]
	if !ok {
		return nil
	}
	out := make([]string, len(n.Children))
	copy(out, n.Children)
	return out
}
