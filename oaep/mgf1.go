// Package oaep implements the OAEP padding construction used to turn an
// RSA modular exponentiation into a probabilistic public-key encryption
// scheme: an MGF1 mask generation function built over SHA3-256, and the
// pad/unpad routines that wrap a message before it is handed to the bigint
// core's ModPow.
package oaep

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// HashLen is the output length of the underlying hash (SHA3-256), in
// bytes.
const HashLen = 32

// mgf1 generates a desiredLen-byte mask from seed using MGF1 over
// SHA3-256: repeatedly hash a 4-byte big-endian counter prepended to seed,
// concatenating output blocks until desiredLen bytes have been produced.
func mgf1(seed []byte, desiredLen int) []byte {
	out := make([]byte, 0, desiredLen+HashLen)
	var counter [4]byte
	for i := uint32(0); len(out) < desiredLen; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		h := sha3.New256()
		h.Write(counter[:])
		h.Write(seed)
		out = h.Sum(out)
	}
	return out[:desiredLen]
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
