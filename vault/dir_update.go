package vault

import "path"

// resolveParentCreatingDirs finds the parent directory node for
// vaultPath, creating any missing intermediate directories along the
// way (mkdir -p semantics), and returns the immediate parent and the
// child's base name.
func (v *Vault) resolveParentCreatingDirs(vaultPath string) (*NodeState, string, error) {
	dir := path.Dir(vaultPath)
	name := path.Base(vaultPath)

	if err := v.ensureDirPath(dir); err != nil {
		return nil, "", err
	}
	return v.State.GetNode(dir), name, nil
}

// ensureDirPath creates dirPath and every missing ancestor, linking
// each newly created directory into its parent's Children list.
func (v *Vault) ensureDirPath(dirPath string) error {
	clean := cleanVaultPath(dirPath)
	if clean == "/" {
		if v.State.GetNode("/") == nil {
			v.State.SetNode("/", &NodeState{Path: "/", Type: "dir"})
		}
		return nil
	}
	if v.State.GetNode(clean) != nil {
		return nil
	}

	parentPath := path.Dir(clean)
	if err := v.ensureDirPath(parentPath); err != nil {
		return err
	}

	node := &NodeState{Path: clean, Type: "dir"}
	v.State.SetNode(clean, node)
	v.addChild(v.State.GetNode(parentPath), clean)
	return nil
}
