// Package tron generates Tron keypairs (secp256k1 + Keccak-256).
// Tron address = Base58Check(0x41 + last 20 bytes of Keccak256(pubkey)),
// so every address starts with 'T'.
package tron

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"

	"github.com/vanityforge/vanityforge/pkg/keypair"
	"github.com/vanityforge/vanityforge/pkg/pattern"
)

// MainnetPrefix is the Tron mainnet address version byte.
const MainnetPrefix = 0x41

// Provider implements keypair.Provider for Tron.
type Provider struct{}

// New creates a Tron keypair provider.
func New() *Provider { return &Provider{} }

// Name returns the network name.
func (p *Provider) Name() string { return "Tron" }

// Alphabet returns Base58; Tron addresses are case-sensitive.
func (p *Provider) Alphabet() pattern.Alphabet { return pattern.Base58 }

// Generate draws a random secp256k1 key and derives its Tron address.
func (p *Provider) Generate() (keypair.Candidate, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return keypair.Candidate{}, err
	}

	// Keccak over the uncompressed pubkey without the 0x04 marker,
	// same hash Ethereum uses, different version byte and encoding.
	pubBytes := crypto.FromECDSAPub(&privateKey.PublicKey)
	hash := crypto.Keccak256(pubBytes[1:])

	payload := make([]byte, 21)
	payload[0] = MainnetPrefix
	copy(payload[1:], hash[len(hash)-20:])

	// All mainnet addresses share the leading 'T'; patterns match the
	// variable part after it.
	address := base58CheckEncode(payload)
	return keypair.Candidate{
		Address:    address,
		Search:     strings.TrimPrefix(address, "T"),
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(privateKey)),
	}, nil
}

// base58CheckEncode appends the 4-byte double-SHA256 checksum and
// Base58-encodes the result.
func base58CheckEncode(data []byte) string {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	full := append(data, second[:4]...)
	return base58.Encode(full)
}
