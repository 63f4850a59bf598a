package ethereum

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanityforge/vanityforge/pkg/pattern"
)

func TestGenerate(t *testing.T) {
	p := New()
	assert.Equal(t, pattern.Hex, p.Alphabet())

	cand, err := p.Generate()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(cand.Address, "0x"))
	require.Len(t, cand.Address, 42)
	require.Len(t, cand.Search, 40)

	// Search is the lowercase form of the checksummed display address.
	assert.Equal(t, strings.ToLower(cand.Address[2:]), cand.Search)

	raw, err := hex.DecodeString(cand.Search)
	require.NoError(t, err)
	assert.Len(t, raw, 20)

	key, err := hex.DecodeString(cand.PrivateKey)
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestGenerateUnique(t *testing.T) {
	p := New()
	a, err := p.Generate()
	require.NoError(t, err)
	b, err := p.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, a.Address, b.Address)
	assert.NotEqual(t, a.PrivateKey, b.PrivateKey)
}
