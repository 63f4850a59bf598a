package pattern

import "strings"

// Base58 alphabet (Bitcoin/Solana style - excludes 0, O, I, l)
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Bech32 charset (excludes 1, b, i, o to prevent ambiguity)
const bech32Charset = "023456789acdefghjklmnpqrstuvwxyz"

// Alphabet identifies the character set a target address is encoded in.
// It decides which pattern characters are legal and how candidates are
// case-normalized before matching.
type Alphabet int

const (
	Hex    Alphabet = iota // 0-9a-f, case-insensitive (Ethereum, Tron raw)
	Base58                 // Bitcoin/Solana style, case-sensitive
	Bech32                 // Taproot bc1p..., case-insensitive
)

// String returns the alphabet name.
func (a Alphabet) String() string {
	switch a {
	case Base58:
		return "Base58"
	case Bech32:
		return "Bech32"
	default:
		return "Hex"
	}
}

// Base returns the number of symbols, used for difficulty estimation.
func (a Alphabet) Base() uint64 {
	switch a {
	case Base58:
		return 58
	case Bech32:
		return 32
	default:
		return 16
	}
}

// CaseSensitive reports whether matching must preserve case.
func (a Alphabet) CaseSensitive() bool {
	return a == Base58
}

// Normalize brings a pattern literal or candidate address into the
// canonical matching form for this alphabet.
func (a Alphabet) Normalize(s string) string {
	if a.CaseSensitive() {
		return s
	}
	return strings.ToLower(s)
}

// ValidRune checks a single character against the alphabet.
// For case-insensitive alphabets the check runs on the lowercased rune.
func (a Alphabet) ValidRune(c rune) bool {
	switch a {
	case Base58:
		return strings.ContainsRune(base58Alphabet, c)
	case Bech32:
		return strings.ContainsRune(bech32Charset, lowerRune(c))
	default:
		c = lowerRune(c)
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
	}
}

// InvalidRunes returns the characters of s that are not part of the
// alphabet. Useful for error messages.
func (a Alphabet) InvalidRunes(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !a.ValidRune(c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

func lowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
