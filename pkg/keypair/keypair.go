// Package keypair defines the capability interface the search engine
// draws candidates from. Implementations live in subpackages, one per
// network, so the engine stays independent of any particular signature
// scheme or address derivation.
package keypair

import "github.com/vanityforge/vanityforge/pkg/pattern"

// Candidate is one freshly generated (address, private key) pair.
// Search is the normalized matching form: case-normalized and with any
// fixed network prefix (0x, bc1p, the leading 1 or T) stripped, so
// prefix patterns apply to the first character the user can influence.
type Candidate struct {
	Address    string // display form (checksummed / canonical casing)
	Search     string // normalized form the matcher runs against
	PrivateKey string // hex, WIF or Base58 depending on the network
}

// Provider supplies candidates from a cryptographically secure random
// source. Implementations must be safe to call from many goroutines.
type Provider interface {
	// Name returns the network name for logs and output.
	Name() string

	// Alphabet returns the address alphabet patterns are validated
	// and normalized against.
	Alphabet() pattern.Alphabet

	// Generate draws one keypair. An error is fatal to the current
	// search and must not be retried by the provider itself.
	Generate() (Candidate, error)
}
