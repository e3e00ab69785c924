package vault

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// GetOpts holds options for the Get (download file) operation.
type GetOpts struct {
	VaultPath string
	LocalDir  string // base directory for default file placement
	LocalPath string // explicit local path (overrides LocalDir + filename)
}

// Get downloads a file from the vault to the local filesystem.
func (v *Vault) Get(opts *GetOpts) (*Result, error) {
	reader, _, err := v.Cat(opts.VaultPath)
	if err != nil {
		return nil, err
	}

	localPath := opts.LocalPath
	if localPath == "" {
		filename := path.Base(cleanVaultPath(opts.VaultPath))
		localPath = filepath.Join(opts.LocalDir, filename)
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return nil, fmt.Errorf("vault: create local directory: %w", err)
	}

	f, err := os.Create(localPath)
	if err != nil {
		return nil, fmt.Errorf("vault: create local file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, reader)
	if err != nil {
		return nil, fmt.Errorf("vault: write local file: %w", err)
	}

	return &Result{
		Path:    cleanVaultPath(opts.VaultPath),
		Message: fmt.Sprintf("Downloaded %s to %s (%d bytes)", opts.VaultPath, localPath, n),
	}, nil
}
