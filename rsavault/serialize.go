package rsavault

import (
	"github.com/bitfsorg/rsavault-go/bigint"
	"github.com/bitfsorg/rsavault-go/bitbuf"
)

// SerializePublic encodes kp's public half as a length-prefixed field
// sequence: [e_len:u32_le_bits][e_bytes][n_len:u32_le_bits][n_bytes].
func SerializePublic(kp *KeyPair) ([]byte, error) {
	if kp == nil || kp.N == nil || kp.E == nil {
		return nil, ErrNilPublicKey
	}
	w := bitbuf.NewWriter()
	w.WriteField(mustSerialize(kp.E))
	w.WriteField(mustSerialize(kp.N))
	return w.Bytes(), nil
}

// DeserializePublic decodes a buffer produced by SerializePublic.
func DeserializePublic(buf []byte) (*KeyPair, error) {
	r := bitbuf.NewReader(buf)
	eBytes, err := r.ReadField()
	if err != nil {
		return nil, ErrInvalidSerializedKey
	}
	nBytes, err := r.ReadField()
	if err != nil {
		return nil, ErrInvalidSerializedKey
	}
	n := bigint.Deserialize(nBytes)
	kp := &KeyPair{N: n, E: bigint.Deserialize(eBytes)}
	kp.maxMsgSize = computeMaxMsgSize(n)
	return kp, nil
}

// SerializePrivate encodes kp's full key material as a length-prefixed
// field sequence over (p, q, n, e, dp, dq, qinv) in that order.
func SerializePrivate(kp *KeyPair) ([]byte, error) {
	if kp == nil || !kp.IsPrivate() {
		return nil, ErrNilPrivateKey
	}
	w := bitbuf.NewWriter()
	w.WriteField(mustSerialize(kp.P))
	w.WriteField(mustSerialize(kp.Q))
	w.WriteField(mustSerialize(kp.N))
	w.WriteField(mustSerialize(kp.E))
	w.WriteField(mustSerialize(kp.Dp))
	w.WriteField(mustSerialize(kp.Dq))
	w.WriteField(mustSerialize(kp.Qinv))
	return w.Bytes(), nil
}

// DeserializePrivate decodes a buffer produced by SerializePrivate.
func DeserializePrivate(buf []byte) (*KeyPair, error) {
	r := bitbuf.NewReader(buf)
	fields := make([]*bigint.Bigint, 7)
	for i := range fields {
		b, err := r.ReadField()
		if err != nil {
			return nil, ErrInvalidSerializedKey
		}
		fields[i] = bigint.Deserialize(b)
	}
	n := fields[2]
	kp := &KeyPair{
		P: fields[0], Q: fields[1], N: n, E: fields[3],
		Dp: fields[4], Dq: fields[5], Qinv: fields[6],
	}
	kp.maxMsgSize = computeMaxMsgSize(n)

	// D is not carried on the wire (only the CRT components are); it is
	// unused by Decrypt, which operates entirely via Dp/Dq/Qinv, but
	// IsPrivate depends on it being non-nil.
	kp.D = bigint.Zero()
	return kp, nil
}

func mustSerialize(x *bigint.Bigint) []byte {
	buf := make([]byte, bigint.SerializedSize(x))
	// SerializedSize sizes the buffer exactly; Serialize cannot fail
	// against a buffer it sized itself.
	_, _ = bigint.Serialize(x, buf)
	return buf
}
