package vault

import (
	"fmt"
	"os"
	"path"

	"github.com/bitfsorg/rsavault-go/storage"
)

// PutOpts holds options for the Put (upload file) operation.
type PutOpts struct {
	LocalFile   string // local file path
	VaultPath   string // vault path, e.g. "/docs/readme.txt"
	Keywords    string // optional comma-separated keywords
	Description string // optional file description
	Compression int32  // compression type (0=none)
}

// PutFile encrypts a local file and stores it in the vault at VaultPath.
func (v *Vault) PutFile(opts *PutOpts) (*Result, error) {
	plaintext, err := os.ReadFile(opts.LocalFile)
	if err != nil {
		return nil, fmt.Errorf("vault: read file: %w", err)
	}

	var result *Result
	err = v.withWriteLock(func() error {
		clean := cleanVaultPath(opts.VaultPath)
		parent, _, err := v.resolveParent(clean)
		if err != nil {
			return err
		}

		if existing := v.State.GetNode(clean); existing != nil {
			return fmt.Errorf("vault: %q already exists", clean)
		}

		compressed, err := storage.Compress(plaintext, opts.Compression)
		if err != nil {
			return fmt.Errorf("vault: compress content: %w", err)
		}

		chunks, err := storage.SplitIntoChunks(compressed, storage.DefaultChunkSize)
		if err != nil {
			return fmt.Errorf("vault: chunk content: %w", err)
		}
		if len(chunks) == 0 {
			chunks = [][]byte{compressed}
		}
		recombinationHash := storage.ComputeRecombinationHash(chunks)

		chunkRefs := make([]ChunkRef, len(chunks))
		for i, chunk := range chunks {
			ciphertext, wrappedKey, err := sealContent(chunk, v.Keys)
			if err != nil {
				return err
			}
			chunkHash := storage.ComputeKeyHash(chunk)
			if err := v.Store.Put(chunkHash, ciphertext); err != nil {
				return fmt.Errorf("vault: store chunk %d: %w", i, err)
			}
			chunkRefs[i] = ChunkRef{ContentHash: chunkHash, EncryptedKey: wrappedKey}
		}

		mimeType := DetectMimeType(opts.LocalFile)
		node := &NodeState{
			Path:              clean,
			Type:              "file",
			Chunks:            chunkRefs,
			RecombinationHash: recombinationHash,
			FileSize:          uint64(len(plaintext)),
			MimeType:          mimeType,
			Keywords:          opts.Keywords,
			Description:       opts.Description,
			Compression:       opts.Compression,
		}
		v.State.SetNode(clean, node)
		v.addChild(parent, clean)

		result = &Result{
			Path:    clean,
			Message: fmt.Sprintf("Uploaded %s to %s (%d bytes)", path.Base(opts.LocalFile), clean, len(plaintext)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
