package rsavault

import (
	"encoding/json"
	"fmt"
	"os"
)

// SecurityLevel bundles the parameters governing one RSA key-generation
// profile: total modulus bit length, Fermat trial count for primality
// testing, and the sieve bound used as the divisibility prefilter.
type SecurityLevel struct {
	Name         string
	Bits         int
	FermatTrials int
	SieveBound   int
}

var (
	// RSA2048 is the minimum level recommended for new keys as of this
	// writing.
	RSA2048 = SecurityLevel{Name: "rsa2048", Bits: 2048, FermatTrials: 20, SieveBound: 100000}

	// RSA3072 matches common "128-bit security" guidance.
	RSA3072 = SecurityLevel{Name: "rsa3072", Bits: 3072, FermatTrials: 24, SieveBound: 100000}

	// RSA4096 is for long-lived keys where generation cost is not a
	// concern.
	RSA4096 = SecurityLevel{Name: "rsa4096", Bits: 4096, FermatTrials: 28, SieveBound: 100000}
)

var predefinedLevels = map[string]SecurityLevel{
	RSA2048.Name: RSA2048,
	RSA3072.Name: RSA3072,
	RSA4096.Name: RSA4096,
}

// GetSecurityLevel returns the predefined level registered under name.
func GetSecurityLevel(name string) (SecurityLevel, error) {
	lvl, ok := predefinedLevels[name]
	if !ok {
		return SecurityLevel{}, fmt.Errorf("rsavault: unknown security level %q", name)
	}
	return lvl, nil
}

// LoadCustomSecurityLevel reads a SecurityLevel from a JSON file, for
// operators who need a bit size or trial count outside the predefined
// presets.
func LoadCustomSecurityLevel(path string) (SecurityLevel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SecurityLevel{}, fmt.Errorf("rsavault: reading security level file: %w", err)
	}
	var lvl SecurityLevel
	if err := json.Unmarshal(data, &lvl); err != nil {
		return SecurityLevel{}, fmt.Errorf("rsavault: parsing security level file: %w", err)
	}
	if lvl.Bits < 512 || lvl.FermatTrials < 1 || lvl.SieveBound < 3 {
		return SecurityLevel{}, ErrInvalidKeySize
	}
	return lvl, nil
}
