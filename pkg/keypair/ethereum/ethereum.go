// Package ethereum generates Ethereum keypairs (secp256k1 + Keccak-256).
// Display addresses carry the EIP-55 checksum casing; matching runs on
// the lowercase hex form without the 0x prefix.
package ethereum

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vanityforge/vanityforge/pkg/keypair"
	"github.com/vanityforge/vanityforge/pkg/pattern"
)

// Provider implements keypair.Provider for Ethereum.
type Provider struct{}

// New creates an Ethereum keypair provider.
func New() *Provider { return &Provider{} }

// Name returns the network name.
func (p *Provider) Name() string { return "Ethereum" }

// Alphabet returns the hex alphabet Ethereum addresses use.
func (p *Provider) Alphabet() pattern.Alphabet { return pattern.Hex }

// Generate draws a random secp256k1 key and derives its address.
func (p *Provider) Generate() (keypair.Candidate, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return keypair.Candidate{}, err
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	return keypair.Candidate{
		Address:    address.Hex(), // EIP-55 checksummed, 0x-prefixed
		Search:     hex.EncodeToString(address.Bytes()),
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(privateKey)),
	}, nil
}
