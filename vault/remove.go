package vault

import (
	"fmt"
	"path"
)

// Remove deletes the node at vaultPath. Non-empty directories are
// rejected unless recursive is true.
func (v *Vault) Remove(vaultPath string, recursive bool) (*Result, error) {
	var result *Result
	err := v.withWriteLock(func() error {
		clean := cleanVaultPath(vaultPath)
		if clean == "/" {
			return fmt.Errorf("vault: cannot remove root")
		}

		node := v.State.GetNode(clean)
		if node == nil {
			return fmt.Errorf("vault: %q not found", clean)
		}

		if node.Type == "dir" && len(node.Children) > 0 {
			if !recursive {
				return fmt.Errorf("vault: directory %q is not empty (%d children)", clean, len(node.Children))
			}
			for _, child := range append([]string{}, node.Children...) {
				if err := v.removeTree(child); err != nil {
					return err
				}
			}
		}

		if node.Type == "file" {
			for i, ref := range node.Chunks {
				if err := v.Store.Delete(ref.ContentHash); err != nil {
					return fmt.Errorf("vault: delete chunk %d: %w", i, err)
				}
			}
		}

		dir := path.Dir(clean)
		if parent := v.State.GetNode(dir); parent != nil {
			v.removeChild(parent, clean)
		}
		v.State.DeleteNode(clean)

		result = &Result{Path: clean, Message: fmt.Sprintf("Removed %s", clean)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// removeTree removes vaultPath and, if it's a directory, all of its
// descendants, without taking the write lock (the caller already holds it).
func (v *Vault) removeTree(vaultPath string) error {
	node := v.State.GetNode(vaultPath)
	if node == nil {
		return nil
	}
	for _, child := range append([]string{}, node.Children...) {
		if err := v.removeTree(child); err != nil {
			return err
		}
	}
	if node.Type == "file" {
		for i, ref := range node.Chunks {
			if err := v.Store.Delete(ref.ContentHash); err != nil {
				return fmt.Errorf("vault: delete chunk %d: %w", i, err)
			}
		}
	}
	v.State.DeleteNode(vaultPath)
	return nil
}
