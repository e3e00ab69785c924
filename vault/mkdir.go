package vault

import "fmt"

// Mkdir creates a directory node at vaultPath, creating intermediate
// directories as needed (like "mkdir -p").
func (v *Vault) Mkdir(vaultPath string) (*Result, error) {
	var result *Result
	err := v.withWriteLock(func() error {
		clean := cleanVaultPath(vaultPath)

		if clean == "/" {
			if v.State.GetNode("/") == nil {
				v.State.SetNode("/", &NodeState{Path: "/", Type: "dir"})
			}
			result = &Result{Path: "/", Message: "Root directory already exists"}
			return nil
		}

		if existing := v.State.GetNode(clean); existing != nil {
			if existing.Type != "dir" {
				return fmt.Errorf("vault: %q already exists and is not a directory", clean)
			}
			result = &Result{Path: clean, Message: fmt.Sprintf("Directory %q already exists", clean)}
			return nil
		}

		parent, childName, err := v.resolveParentCreatingDirs(clean)
		if err != nil {
			return err
		}

		node := &NodeState{Path: clean, Type: "dir"}
		v.State.SetNode(clean, node)
		v.addChild(parent, clean)
		_ = childName

		result = &Result{Path: clean, Message: fmt.Sprintf("Created directory %s", clean)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
