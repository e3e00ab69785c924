// Package keydiscovery publishes and looks up RSA public keys via DNS
// TXT records, optionally requiring DNSSEC validation, so a vault owner
// can be reached by domain name rather than by exchanging key blobs
// out of band.
package keydiscovery

import "net"

// KeyDirectoryService is a single-method lookup surface: "give me the
// serialized public key published for this identifier." Neither package
// implements it as it stands: keydiscovery has no Lookup method, and
// keyregistry's Registry.Lookup returns a *rsavault.KeyPair rather than
// a serialized blob.
type KeyDirectoryService interface {
	Lookup(identifier string) ([]byte, error) // returns a SerializePublic blob
}

// DNSResolver is the TXT-lookup surface keydiscovery depends on,
// allowing tests to substitute a fake resolver.
type DNSResolver interface {
	LookupTXT(name string) ([]string, error)
}

type defaultDNSResolver struct{}

func (defaultDNSResolver) LookupTXT(name string) ([]string, error) {
	return net.LookupTXT(name)
}

// DefaultDNSResolver is the production resolver, using the standard
// library's system resolver with no DNSSEC validation.
var DefaultDNSResolver DNSResolver = defaultDNSResolver{}
