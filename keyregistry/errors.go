package keyregistry

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("keyregistry: required parameter is nil")

	// ErrKeyNotFound indicates no key is registered under the given owner.
	ErrKeyNotFound = errors.New("keyregistry: key not found")

	// ErrDuplicateKey indicates the owner already has a registered key.
	ErrDuplicateKey = errors.New("keyregistry: owner already has a registered key")

	// ErrEmptyOwner indicates the owner identifier is empty.
	ErrEmptyOwner = errors.New("keyregistry: owner identifier must not be empty")

	// ErrKeyRevoked indicates the key was found but has been revoked.
	ErrKeyRevoked = errors.New("keyregistry: key has been revoked")

	// ErrAuditLogCorrupt indicates a stored audit record failed to decode.
	ErrAuditLogCorrupt = errors.New("keyregistry: audit log entry is corrupt")
)
