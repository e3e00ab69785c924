package keydiscovery

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/bitfsorg/rsavault-go/rsavault"
)

// recordPrefix tags the TXT record value carrying the key.
const recordPrefix = "rsavault-key="

// recordName returns the TXT record name this package queries/expects
// for domain.
func recordName(domain string) string {
	return "_rsavault." + domain
}

// EncodeRecord renders pub's public half as the TXT record value a
// zone operator should publish at recordName(domain). Base64 is used
// rather than hex because an RSA public key (hundreds of bytes) is far
// larger than a fixed-size elliptic-curve point, and hex would nearly
// double an already-large record.
func EncodeRecord(pub *rsavault.KeyPair) (string, error) {
	blob, err := rsavault.SerializePublic(pub)
	if err != nil {
		return "", err
	}
	return recordPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// ResolveKey looks up domain's published RSA public key via resolver.
func ResolveKey(domain string, resolver DNSResolver) (*rsavault.KeyPair, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: empty domain", ErrDNSLookupFailed)
	}

	name := recordName(domain)
	txts, err := resolver.LookupTXT(name)
	if err != nil {
		return nil, fmt.Errorf("%w: TXT lookup for %s: %w", ErrDNSLookupFailed, name, err)
	}

	var encoded string
	for _, txt := range txts {
		txt = strings.TrimSpace(txt)
		if strings.HasPrefix(txt, recordPrefix) {
			encoded = strings.TrimPrefix(txt, recordPrefix)
			break
		}
	}
	if encoded == "" {
		return nil, fmt.Errorf("%w: no %s TXT record for %s", ErrNoKeyRecord, recordPrefix, name)
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 in TXT record: %w", ErrInvalidKeyRecord, err)
	}

	pub, err := rsavault.DeserializePublic(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyRecord, err)
	}
	return pub, nil
}
