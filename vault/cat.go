package vault

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bitfsorg/rsavault-go/storage"
)

// FileInfo describes a file's metadata returned by Cat/Get.
type FileInfo struct {
	MimeType string
	FileSize uint64
}

// Cat reads a file from the vault and returns its decrypted content.
// The caller is responsible for reading from the returned io.Reader.
func (v *Vault) Cat(vaultPath string) (io.Reader, *FileInfo, error) {
	clean := cleanVaultPath(vaultPath)

	node := v.State.GetNode(clean)
	if node == nil {
		return nil, nil, fmt.Errorf("vault: %q not found", clean)
	}
	if node.Type != "file" {
		return nil, nil, fmt.Errorf("vault: %q is a %s, not a file", clean, node.Type)
	}
	if len(node.Chunks) == 0 {
		return nil, nil, fmt.Errorf("vault: %q has no content", clean)
	}

	chunks := make([][]byte, len(node.Chunks))
	for i, ref := range node.Chunks {
		ciphertext, err := v.Store.Get(ref.ContentHash)
		if err != nil {
			return nil, nil, fmt.Errorf("vault: read chunk %d: %w", i, err)
		}
		plaintext, err := openContent(ciphertext, ref.EncryptedKey, v.Keys)
		if err != nil {
			return nil, nil, fmt.Errorf("vault: decrypt chunk %d: %w", i, err)
		}
		chunks[i] = plaintext
	}

	compressed, err := storage.RecombineChunks(chunks, node.RecombinationHash)
	if err != nil {
		return nil, nil, fmt.Errorf("vault: recombine content: %w", err)
	}
	plaintext, err := storage.Decompress(compressed, node.Compression)
	if err != nil {
		return nil, nil, fmt.Errorf("vault: decompress content: %w", err)
	}

	info := &FileInfo{MimeType: node.MimeType, FileSize: node.FileSize}
	return bytes.NewReader(plaintext), info, nil
}
