// Package bitcoin generates Bitcoin keypairs (secp256k1) for the two
// supported address formats:
//
//   - Taproot P2TR (bc1p..., Bech32m, case-insensitive)
//   - Legacy P2PKH (1..., Base58Check, case-sensitive)
//
// Private keys are reported in Wallet Import Format (WIF).
package bitcoin

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/vanityforge/vanityforge/pkg/keypair"
	"github.com/vanityforge/vanityforge/pkg/pattern"
)

// AddressType selects the Bitcoin address format.
type AddressType int

const (
	Taproot AddressType = iota // P2TR (bc1p...) - default
	Legacy                     // P2PKH (1...)
)

// String returns the address type name.
func (a AddressType) String() string {
	if a == Legacy {
		return "Legacy (P2PKH)"
	}
	return "Taproot (P2TR)"
}

// ParseAddressType maps a config string to an AddressType.
func ParseAddressType(s string) (AddressType, error) {
	switch strings.ToLower(s) {
	case "", "taproot", "p2tr":
		return Taproot, nil
	case "legacy", "p2pkh":
		return Legacy, nil
	}
	return Taproot, fmt.Errorf("unknown bitcoin address type %q", s)
}

// Provider implements keypair.Provider for Bitcoin.
type Provider struct {
	addrType AddressType
}

// New creates a Bitcoin keypair provider for the given address type.
func New(addrType AddressType) *Provider {
	return &Provider{addrType: addrType}
}

// Name returns the network name including the address format.
func (p *Provider) Name() string {
	return "Bitcoin " + p.addrType.String()
}

// Alphabet depends on the address format: Bech32 for Taproot,
// case-sensitive Base58 for Legacy.
func (p *Provider) Alphabet() pattern.Alphabet {
	if p.addrType == Legacy {
		return pattern.Base58
	}
	return pattern.Bech32
}

// Generate draws a random secp256k1 key and derives the address for the
// configured format. Every Taproot address starts "bc1p" and every P2PKH
// address "1", so the search form strips that fixed part: patterns match
// the variable body, not characters the user cannot choose.
func (p *Provider) Generate() (keypair.Candidate, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return keypair.Candidate{}, err
	}
	privKey, pubKey := btcec.PrivKeyFromBytes(seed[:])

	var address, search string
	if p.addrType == Legacy {
		address = deriveLegacyAddress(pubKey)
		search = strings.TrimPrefix(address, "1")
	} else {
		address = deriveTaprootAddress(pubKey)
		search = strings.TrimPrefix(address, "bc1p")
	}

	return keypair.Candidate{
		Address:    address,
		Search:     search,
		PrivateKey: privateKeyToWIF(privKey),
	}, nil
}
