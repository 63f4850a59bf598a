// Package solana generates Solana keypairs (Ed25519 + Base58).
package solana

import (
	"crypto/ed25519"
	"crypto/rand"

	"github.com/mr-tron/base58"

	"github.com/vanityforge/vanityforge/pkg/keypair"
	"github.com/vanityforge/vanityforge/pkg/pattern"
)

// Provider implements keypair.Provider for Solana.
type Provider struct{}

// New creates a Solana keypair provider.
func New() *Provider { return &Provider{} }

// Name returns the network name.
func (p *Provider) Name() string { return "Solana" }

// Alphabet returns Base58; Solana addresses are case-sensitive.
func (p *Provider) Alphabet() pattern.Alphabet { return pattern.Base58 }

// Generate draws a random Ed25519 key. The address is the Base58-encoded
// public key; the private key is the 64-byte keypair (seed + pubkey) as
// Solana wallets expect it.
func (p *Provider) Generate() (keypair.Candidate, error) {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return keypair.Candidate{}, err
	}

	address := base58.Encode(pubKey)
	return keypair.Candidate{
		Address:    address,
		Search:     address,
		PrivateKey: base58.Encode(privKey),
	}, nil
}
