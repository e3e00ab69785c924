package vault

import (
	"fmt"
	"path/filepath"

	"github.com/bitfsorg/rsavault-go/config"
	"github.com/bitfsorg/rsavault-go/rsavault"
	"github.com/bitfsorg/rsavault-go/storage"
)

// Vault is the shared business logic layer. CLI commands and any other
// adapter call Vault methods to perform filesystem operations against a
// local, RSA-OAEP-encrypted content-addressed store.
type Vault struct {
	Keys    *rsavault.KeyPair
	Store   *storage.FileStore
	State   *LocalState
	DataDir string
}

// Result holds the output of a vault operation.
type Result struct {
	Path    string // vault path affected
	Message string // human-readable summary
}

// New opens a Vault rooted at dataDir, decrypting the key material file
// ({dataDir}/key.enc) with password.
func New(dataDir, password string) (*Vault, error) {
	keyPath := filepath.Join(dataDir, "key.enc")
	encrypted, err := readFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("vault: read key material: %w", err)
	}

	if password == "" {
		return nil, fmt.Errorf("vault: password is required")
	}

	serialized, err := rsavault.DecryptKeyMaterial(encrypted, password)
	if err != nil {
		return nil, fmt.Errorf("vault: decrypt key material: %w", err)
	}

	kp, err := rsavault.DeserializePrivate(serialized)
	if err != nil {
		return nil, fmt.Errorf("vault: parse key material: %w", err)
	}

	// Configuration is optional; only SecurityLevel at generation time
	// mattered and that's already baked into the loaded key.
	_, _ = config.LoadConfig(config.ConfigPath(dataDir))

	storeDir := filepath.Join(dataDir, "storage")
	store, err := storage.NewFileStore(storeDir)
	if err != nil {
		return nil, fmt.Errorf("vault: init storage: %w", err)
	}

	localStatePath := filepath.Join(dataDir, "nodes.json")
	localState, err := LoadLocalState(localStatePath)
	if err != nil {
		return nil, fmt.Errorf("vault: load local state: %w", err)
	}

	return &Vault{
		Keys:    kp,
		Store:   store,
		State:   localState,
		DataDir: dataDir,
	}, nil
}

// withWriteLock executes fn while holding an exclusive vault lock. It
// reloads state before fn and saves state after fn returns a nil error.
func (v *Vault) withWriteLock(fn func() error) error {
	lockPath := filepath.Join(v.DataDir, "vault.lock")
	fl, err := acquireLock(lockPath)
	if err != nil {
		return fmt.Errorf("vault lock: %w", err)
	}
	defer releaseLock(fl)

	if err := v.State.Reload(); err != nil {
		return fmt.Errorf("reload state: %w", err)
	}

	if err := fn(); err != nil {
		return err
	}

	return v.State.Save()
}

// Close persists state. There are no network resources to release in
// this local-only vault.
func (v *Vault) Close() error {
	return v.State.Save()
}
