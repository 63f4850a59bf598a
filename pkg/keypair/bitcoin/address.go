package bitcoin

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

// deriveTaprootAddress creates a P2TR (bc1p...) address using Bech32m.
// BIP-341 key-path spend: the output key is P + TaggedHash("TapTweak", P_x)*G.
func deriveTaprootAddress(pubKey *btcec.PublicKey) string {
	xOnly := schnorr.SerializePubKey(pubKey)
	tweak := taggedHash("TapTweak", xOnly)

	var tweakScalar btcec.ModNScalar
	tweakScalar.SetBytes((*[32]byte)(tweak))

	var tweakPoint btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&tweakScalar, &tweakPoint)

	var point btcec.JacobianPoint
	pubKey.AsJacobian(&point)
	btcec.AddNonConst(&point, &tweakPoint, &point)
	point.ToAffine()

	tweakedXOnly := schnorr.SerializePubKey(btcec.NewPublicKey(&point.X, &point.Y))

	data, err := bech32.ConvertBits(tweakedXOnly, 8, 5, true)
	if err != nil {
		return ""
	}
	// Witness version 1 for Taproot; version 1+ uses Bech32m.
	data = append([]byte{0x01}, data...)
	addr, err := bech32.EncodeM("bc", data)
	if err != nil {
		return ""
	}
	return addr
}

// deriveLegacyAddress creates a P2PKH (1...) address.
// Address = Base58Check(0x00 + RIPEMD160(SHA256(compressed pubkey))).
func deriveLegacyAddress(pubKey *btcec.PublicKey) string {
	sha := sha256.Sum256(pubKey.SerializeCompressed())
	ripemd := ripemd160.New()
	ripemd.Write(sha[:])

	payload := make([]byte, 0, 21)
	payload = append(payload, 0x00) // mainnet P2PKH version
	payload = ripemd.Sum(payload)

	return base58CheckEncode(payload)
}

// privateKeyToWIF converts a private key to Wallet Import Format with the
// compressed-pubkey flag (mainnet keys start with K or L).
func privateKeyToWIF(privKey *btcec.PrivateKey) string {
	data := make([]byte, 34)
	data[0] = 0x80 // mainnet prefix
	copy(data[1:33], privKey.Serialize())
	data[33] = 0x01 // compressed flag
	return base58CheckEncode(data)
}

// base58CheckEncode appends the 4-byte double-SHA256 checksum and
// Base58-encodes the result.
func base58CheckEncode(data []byte) string {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	full := append(data, second[:4]...)
	return base58.Encode(full)
}

// taggedHash implements BIP-340 tagged hashing:
// SHA256(SHA256(tag) || SHA256(tag) || msg).
func taggedHash(tag string, msg []byte) *[32]byte {
	tagHash := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write(msg)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return &out
}
