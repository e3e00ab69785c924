package keydiscovery

import "errors"

var (
	// ErrDNSLookupFailed indicates the underlying DNS query failed.
	ErrDNSLookupFailed = errors.New("keydiscovery: DNS lookup failed")

	// ErrDNSSECValidationFailed indicates the resolver did not set the
	// Authenticated Data flag on a DNSSEC-validated query.
	ErrDNSSECValidationFailed = errors.New("keydiscovery: DNSSEC validation failed")

	// ErrNoKeyRecord indicates no TXT record carrying a public key was
	// found for the queried domain.
	ErrNoKeyRecord = errors.New("keydiscovery: no public key TXT record found")

	// ErrInvalidKeyRecord indicates a TXT record was found but its
	// encoded public key failed to decode.
	ErrInvalidKeyRecord = errors.New("keydiscovery: invalid public key record")
)
