package vault

import "fmt"

// Copy creates an independent node at dstPath pointing at the same
// content-addressed ciphertext as srcPath.
//
// A single-owner vault has no multi-party re-keying concern: every file
// is already wrapped under the same owner key, and the content store
// deduplicates by hash, so Copy just adds a second path pointing at the
// existing (hash, wrapped key) pair rather than re-encrypting.
func (v *Vault) Copy(srcPath, dstPath string) (*Result, error) {
	var result *Result
	err := v.withWriteLock(func() error {
		src := cleanVaultPath(srcPath)
		dst := cleanVaultPath(dstPath)

		srcNode := v.State.GetNode(src)
		if srcNode == nil {
			return fmt.Errorf("vault: source %q not found", src)
		}
		if srcNode.Type != "file" {
			return fmt.Errorf("vault: can only copy files, %q is a %s", src, srcNode.Type)
		}
		if v.State.GetNode(dst) != nil {
			return fmt.Errorf("vault: destination %q already exists", dst)
		}

		dstParent, _, err := v.resolveParentCreatingDirs(dst)
		if err != nil {
			return err
		}

		chunks := make([]ChunkRef, len(srcNode.Chunks))
		for i, ref := range srcNode.Chunks {
			chunks[i] = ChunkRef{
				ContentHash:  append([]byte{}, ref.ContentHash...),
				EncryptedKey: append([]byte{}, ref.EncryptedKey...),
			}
		}

		dstNode := &NodeState{
			Path:              dst,
			Type:              "file",
			Chunks:            chunks,
			RecombinationHash: append([]byte{}, srcNode.RecombinationHash...),
			FileSize:          srcNode.FileSize,
			MimeType:          srcNode.MimeType,
			Keywords:          srcNode.Keywords,
			Description:       srcNode.Description,
			Compression:       srcNode.Compression,
		}
		v.State.SetNode(dst, dstNode)
		v.addChild(dstParent, dst)

		result = &Result{Path: dst, Message: fmt.Sprintf("Copied %s to %s", src, dst)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
