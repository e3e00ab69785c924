package oaep

import cryptorand "crypto/rand"

// Pad constructs an OAEP-padded block of exactly blockLen bytes from
// message. The maximum message length is blockLen - 2*HashLen - 1.
//
// The padded block layout is maskedSeed (HashLen bytes) || maskedDB
// (blockLen-HashLen bytes), where DB is a blockLen-HashLen byte buffer
// filled with the filler byte 0x08, holding a 0x01 separator followed by
// the message at its tail; DB is masked with MGF1(seed) and the
// HashLen-byte random seed is in turn masked with MGF1(maskedDB).
func Pad(message []byte, blockLen int) ([]byte, error) {
	maxMsgLen := blockLen - 2*HashLen - 1
	if maxMsgLen < 0 {
		return nil, ErrBlockTooShort
	}
	if len(message) > maxMsgLen {
		return nil, ErrMessageTooLong
	}

	db := make([]byte, blockLen-HashLen)
	for i := range db {
		db[i] = 0x08
	}
	gap := len(db) - len(message) - 1
	db[gap] = 0x01
	copy(db[gap+1:], message)

	seed := make([]byte, HashLen)
	if _, err := cryptorand.Read(seed); err != nil {
		return nil, err
	}

	maskedDB := make([]byte, len(db))
	xorBytes(maskedDB, db, mgf1(seed, len(db)))

	maskedSeed := make([]byte, HashLen)
	xorBytes(maskedSeed, seed, mgf1(maskedDB, HashLen))

	out := make([]byte, blockLen)
	copy(out, maskedSeed)
	copy(out[HashLen:], maskedDB)
	return out, nil
}

// Unpad reverses Pad, recovering the original message. It returns
// ErrUnpadFailed if the filler region or separator byte fail validation;
// callers must treat that identically to any other decryption failure
// rather than branching on it, to avoid a padding oracle.
func Unpad(block []byte) ([]byte, error) {
	if len(block) < 2*HashLen+1 {
		return nil, ErrUnpadFailed
	}
	maskedSeed := block[:HashLen]
	maskedDB := block[HashLen:]

	seed := make([]byte, HashLen)
	xorBytes(seed, maskedSeed, mgf1(maskedDB, HashLen))

	db := make([]byte, len(maskedDB))
	xorBytes(db, maskedDB, mgf1(seed, len(maskedDB)))

	sep := -1
	for i, b := range db {
		if b == 0x01 {
			sep = i
			break
		}
		if b != 0x08 {
			return nil, ErrUnpadFailed
		}
	}
	if sep < 0 {
		return nil, ErrUnpadFailed
	}
	return db[sep+1:], nil
}
