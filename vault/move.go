package vault

import (
	"fmt"
	"path"
	"strings"
)

// Move renames or relocates a node within the vault tree. Content and
// its wrapped key are untouched; only the path-keyed bookkeeping moves.
func (v *Vault) Move(srcPath, dstPath string) (*Result, error) {
	var result *Result
	err := v.withWriteLock(func() error {
		src := cleanVaultPath(srcPath)
		dst := cleanVaultPath(dstPath)

		if src == "/" {
			return fmt.Errorf("vault: cannot move root")
		}
		if dst == src {
			return fmt.Errorf("vault: source and destination are the same")
		}
		if strings.HasPrefix(dst+"/", src+"/") {
			return fmt.Errorf("vault: cannot move %q into its own subtree", src)
		}

		node := v.State.GetNode(src)
		if node == nil {
			return fmt.Errorf("vault: source %q not found", src)
		}
		if v.State.GetNode(dst) != nil {
			return fmt.Errorf("vault: destination %q already exists", dst)
		}

		dstParent, _, err := v.resolveParentCreatingDirs(dst)
		if err != nil {
			return err
		}

		if srcParent := v.State.GetNode(path.Dir(src)); srcParent != nil {
			v.removeChild(srcParent, src)
		}

		if node.Type == "dir" {
			if err := v.retargetSubtree(node, src, dst); err != nil {
				return err
			}
		}

		node.Path = dst
		v.State.SetNode(dst, node)
		v.State.DeleteNode(src)
		v.addChild(dstParent, dst)

		result = &Result{Path: dst, Message: fmt.Sprintf("Moved %s to %s", src, dst)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// retargetSubtree rewrites the Path of every descendant of a directory
// being moved from oldBase to newBase, without taking the write lock.
func (v *Vault) retargetSubtree(dirNode *NodeState, oldBase, newBase string) error {
	newChildren := make([]string, 0, len(dirNode.Children))
	for _, childPath := range dirNode.Children {
		child := v.State.GetNode(childPath)
		if child == nil {
			continue
		}
		newChildPath := newBase + strings.TrimPrefix(childPath, oldBase)
		if child.Type == "dir" {
			if err := v.retargetSubtree(child, childPath, newChildPath); err != nil {
				return err
			}
		}
		child.Path = newChildPath
		v.State.SetNode(newChildPath, child)
		v.State.DeleteNode(childPath)
		newChildren = append(newChildren, newChildPath)
	}
	dirNode.Children = newChildren
	return nil
}
