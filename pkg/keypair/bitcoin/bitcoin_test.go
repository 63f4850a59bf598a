package bitcoin

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanityforge/vanityforge/pkg/pattern"
)

func TestParseAddressType(t *testing.T) {
	tests := []struct {
		in      string
		want    AddressType
		wantErr bool
	}{
		{in: "", want: Taproot},
		{in: "taproot", want: Taproot},
		{in: "P2TR", want: Taproot},
		{in: "legacy", want: Legacy},
		{in: "p2pkh", want: Legacy},
		{in: "segwit", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAddressType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateTaproot(t *testing.T) {
	p := New(Taproot)
	assert.Equal(t, pattern.Bech32, p.Alphabet())

	cand, err := p.Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(cand.Address, "bc1p"), "taproot addresses start with bc1p, got %q", cand.Address)
	assert.Equal(t, cand.Address, strings.ToLower(cand.Address), "bech32m output is lowercase")
	assert.Equal(t, strings.TrimPrefix(cand.Address, "bc1p"), cand.Search, "search form drops the fixed bc1p part")
	assert.False(t, strings.HasPrefix(cand.Search, "bc1p"))
	assertValidWIF(t, cand.PrivateKey)
}

// A prefix pattern built from the first variable character must match
// the candidate it came from; the fixed bc1p part contains characters
// the Bech32 alphabet rejects, so matching runs past it.
func TestTaprootPrefixPatternMatchesSearchForm(t *testing.T) {
	p := New(Taproot)
	cand, err := p.Generate()
	require.NoError(t, err)
	require.NotEmpty(t, cand.Search)

	pat, err := pattern.Compile(string(cand.Search[0])+"*", p.Alphabet())
	require.NoError(t, err)
	assert.True(t, pat.MatchesFull(cand.Search))
}

func TestGenerateLegacy(t *testing.T) {
	p := New(Legacy)
	assert.Equal(t, pattern.Base58, p.Alphabet())

	cand, err := p.Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(cand.Address, "1"), "P2PKH addresses start with 1, got %q", cand.Address)
	assert.Equal(t, cand.Address[1:], cand.Search, "search form drops the fixed version character")

	pat, err := pattern.Compile(string(cand.Search[0])+"*", p.Alphabet())
	require.NoError(t, err)
	assert.True(t, pat.MatchesFull(cand.Search))

	// Base58Check round-trip: version byte + hash160 + valid checksum.
	decoded, err := base58.Decode(cand.Address)
	require.NoError(t, err)
	require.Len(t, decoded, 25)
	assert.Equal(t, byte(0x00), decoded[0])
	assertChecksum(t, decoded)

	assertValidWIF(t, cand.PrivateKey)
}

func assertValidWIF(t *testing.T, wif string) {
	t.Helper()
	first := wif[0]
	assert.True(t, first == 'K' || first == 'L', "compressed mainnet WIF starts with K or L, got %q", wif)

	decoded, err := base58.Decode(wif)
	require.NoError(t, err)
	require.Len(t, decoded, 38) // 0x80 + 32 key bytes + 0x01 + 4 checksum
	assert.Equal(t, byte(0x80), decoded[0])
	assert.Equal(t, byte(0x01), decoded[33])
	assertChecksum(t, decoded)
}

func assertChecksum(t *testing.T, payload []byte) {
	t.Helper()
	body, check := payload[:len(payload)-4], payload[len(payload)-4:]
	first := sha256.Sum256(body)
	second := sha256.Sum256(first[:])
	assert.Equal(t, second[:4], check)
}
