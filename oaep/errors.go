package oaep

import "errors"

var (
	// ErrMessageTooLong indicates the message exceeds the maximum length
	// this padding scheme can encode for the given block size.
	ErrMessageTooLong = errors.New("oaep: message too long for this block size")

	// ErrBlockTooShort indicates a padded block shorter than 2*hash size+1.
	ErrBlockTooShort = errors.New("oaep: padded block shorter than minimum")

	// ErrUnpadFailed indicates unpadding validation failed (bad leading
	// padding region or missing separator byte). Callers get this single
	// generic error rather than a distinguishable cause so that error
	// content cannot be used as a padding oracle.
	ErrUnpadFailed = errors.New("oaep: unpad failed")
)
