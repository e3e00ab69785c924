// Package keyregistry is a bbolt-backed directory of published RSA
// public keys, keyed by an owner identifier (an email address, a DNS
// name, anything the caller treats as stable), with an append-only
// audit trail of registration and revocation events committed under a
// Merkle root for tamper evidence.
package keyregistry

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/bitfsorg/rsavault-go/rsavault"
)

var (
	bucketKeys  = []byte("keys")
	bucketAudit = []byte("audit")
)

// Registry wraps a bbolt database holding the key directory and its
// audit log.
type Registry struct {
	db *bbolt.DB
}

// record is the gob-encoded value stored under bucketKeys.
type record struct {
	Owner        string
	PublicKey    []byte // rsavault.SerializePublic output
	Fingerprint  []byte
	Revoked      bool
	RegisteredAt int64
}

// Open opens or creates the bbolt database at dbPath, creating its
// parent directory if needed.
func Open(dbPath string) (*Registry, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("keyregistry: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("keyregistry: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketKeys, bucketAudit} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("keyregistry: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("keyregistry: create buckets: %w", err)
	}

	return &Registry{db: db}, nil
}

// Close closes the underlying database.
func (r *Registry) Close() error { return r.db.Close() }

// Register publishes pub under owner. It fails with ErrDuplicateKey if
// owner already has a (non-revoked or revoked) entry; Revoke followed
// by Register with a new key is not supported by design — publish under
// a new owner identifier (e.g. a versioned name) instead, keeping every
// key this registry has ever seen auditable.
func (r *Registry) Register(owner string, pub *rsavault.KeyPair) error {
	if owner == "" {
		return ErrEmptyOwner
	}
	if pub == nil {
		return ErrNilParam
	}
	keyBytes, err := rsavault.SerializePublic(pub)
	if err != nil {
		return fmt.Errorf("keyregistry: serializing public key: %w", err)
	}
	fp := Fingerprint(keyBytes)
	now := time.Now().Unix()

	return r.db.Update(func(tx *bbolt.Tx) error {
		kb := tx.Bucket(bucketKeys)
		if kb.Get([]byte(owner)) != nil {
			return ErrDuplicateKey
		}
		rec := record{Owner: owner, PublicKey: keyBytes, Fingerprint: fp, RegisteredAt: now}
		data, err := encodeGob(rec)
		if err != nil {
			return fmt.Errorf("keyregistry: encode record: %w", err)
		}
		if err := kb.Put([]byte(owner), data); err != nil {
			return fmt.Errorf("keyregistry: put record: %w", err)
		}
		return appendAudit(tx, "register", owner, fp, now)
	})
}

// Lookup returns the public key registered under owner. It returns
// ErrKeyRevoked (not ErrKeyNotFound) if the key exists but was revoked,
// so callers can distinguish "never published" from "withdrawn".
func (r *Registry) Lookup(owner string) (*rsavault.KeyPair, error) {
	var rec record
	err := r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketKeys).Get([]byte(owner))
		if data == nil {
			return ErrKeyNotFound
		}
		return decodeGob(data, &rec)
	})
	if err != nil {
		return nil, err
	}
	if rec.Revoked {
		return nil, ErrKeyRevoked
	}
	return rsavault.DeserializePublic(rec.PublicKey)
}

// Revoke marks owner's key as revoked, appending a revocation event to
// the audit log. It is idempotent: revoking an already-revoked key
// succeeds without appending a duplicate event.
func (r *Registry) Revoke(owner string) error {
	now := time.Now().Unix()
	return r.db.Update(func(tx *bbolt.Tx) error {
		kb := tx.Bucket(bucketKeys)
		data := kb.Get([]byte(owner))
		if data == nil {
			return ErrKeyNotFound
		}
		var rec record
		if err := decodeGob(data, &rec); err != nil {
			return fmt.Errorf("keyregistry: decode record: %w", err)
		}
		if rec.Revoked {
			return nil
		}
		rec.Revoked = true
		newData, err := encodeGob(rec)
		if err != nil {
			return fmt.Errorf("keyregistry: encode record: %w", err)
		}
		if err := kb.Put([]byte(owner), newData); err != nil {
			return fmt.Errorf("keyregistry: put record: %w", err)
		}
		return appendAudit(tx, "revoke", owner, rec.Fingerprint, now)
	})
}

// List returns every owner identifier with a registered key, revoked
// or not.
func (r *Registry) List() ([]string, error) {
	var owners []string
	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKeys).ForEach(func(k, _ []byte) error {
			owners = append(owners, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
