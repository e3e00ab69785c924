package keydiscovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDNSResolver_ImplementsInterface(t *testing.T) {
	var _ DNSResolver = DefaultDNSResolver
	assert.NotNil(t, DefaultDNSResolver)
}

func TestNewDNSSECResolver_DefaultsUpstream(t *testing.T) {
	r := NewDNSSECResolver("")
	assert.Equal(t, defaultUpstream, r.Upstream)
}

func TestNewDNSSECResolver_CustomUpstream(t *testing.T) {
	r := NewDNSSECResolver("1.1.1.1:53")
	assert.Equal(t, "1.1.1.1:53", r.Upstream)
}

func TestRecordName_Format(t *testing.T) {
	assert.Equal(t, "_rsavault.example.com", recordName("example.com"))
}
