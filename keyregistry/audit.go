package keyregistry

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

// AuditEvent is one append-only entry in a Registry's audit trail.
type AuditEvent struct {
	Seq         uint64
	Action      string // "register" or "revoke"
	Owner       string
	Fingerprint []byte
	Timestamp   int64
}

// appendAudit writes the next sequential audit event within tx. Must be
// called from inside a bbolt update transaction already holding
// bucketAudit open.
func appendAudit(tx *bbolt.Tx, action, owner string, fp []byte, ts int64) error {
	ab := tx.Bucket(bucketAudit)
	seq, err := ab.NextSequence()
	if err != nil {
		return fmt.Errorf("keyregistry: allocate audit sequence: %w", err)
	}
	ev := AuditEvent{Seq: seq, Action: action, Owner: owner, Fingerprint: fp, Timestamp: ts}
	data, err := encodeGob(ev)
	if err != nil {
		return fmt.Errorf("keyregistry: encode audit event: %w", err)
	}
	return ab.Put(seqKey(seq), data)
}

// AuditLog returns every audit event in sequence order.
func (r *Registry) AuditLog() ([]AuditEvent, error) {
	var events []AuditEvent
	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAudit).ForEach(func(_, v []byte) error {
			var ev AuditEvent
			if err := decodeGob(v, &ev); err != nil {
				return ErrAuditLogCorrupt
			}
			events = append(events, ev)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// eventHash hashes an audit event's fields for Merkle-tree leaf
// construction, analogous to a transaction hash in spv.BuildMerkleTree.
func eventHash(ev AuditEvent) []byte {
	h := sha256.New()
	var seqBuf [8]byte
	binary.BigEndian.PutUint64(seqBuf[:], ev.Seq)
	h.Write(seqBuf[:])
	h.Write([]byte(ev.Action))
	h.Write([]byte(ev.Owner))
	h.Write(ev.Fingerprint)
	return h.Sum(nil)
}

// doubleHash computes SHA256(SHA256(data)), matching the Merkle
// construction this is grounded on.
func doubleHash(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// buildMerkleTree returns the Merkle root over leaves, duplicating the
// last element at each odd-sized level.
func buildMerkleTree(leaves [][]byte) []byte {
	if len(leaves) == 0 {
		return nil
	}
	level := make([][]byte, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([][]byte, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			combined := make([]byte, 0, len(level[i])+len(level[i+1]))
			combined = append(combined, level[i]...)
			combined = append(combined, level[i+1]...)
			next[i/2] = doubleHash(combined)
		}
		level = next
	}
	return level[0]
}

// AuditRoot returns the Merkle root committing to the full audit log,
// or nil if the log is empty. Recomputing this after every Register or
// Revoke lets an operator publish a single hash that attests to the
// entire registration history.
func (r *Registry) AuditRoot() ([]byte, error) {
	events, err := r.AuditLog()
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	leaves := make([][]byte, len(events))
	for i, ev := range events {
		leaves[i] = eventHash(ev)
	}
	return buildMerkleTree(leaves), nil
}
