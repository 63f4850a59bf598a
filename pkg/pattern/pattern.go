// Package pattern compiles raw vanity pattern strings into a matchable
// form and evaluates candidate addresses against it. Compilation and
// matching are pure: a compiled Pattern is immutable and safe to share
// across worker goroutines.
package pattern

import (
	"fmt"
	"math"
	"strings"
)

// MaxRawLen is the maximum accepted length of a raw pattern string,
// wildcard markers included.
const MaxRawLen = 10

// Anchor says where in the address the literal must appear.
type Anchor int

const (
	AnchorAny    Anchor = iota // anywhere in the address
	AnchorPrefix               // literal must start the address
	AnchorSuffix               // literal must end the address
	AnchorBoth                 // literal must both start and end the address
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorPrefix:
		return "prefix"
	case AnchorSuffix:
		return "suffix"
	case AnchorBoth:
		return "both"
	default:
		return "any"
	}
}

// InvalidPatternError reports a raw pattern that cannot be compiled.
type InvalidPatternError struct {
	Raw    string
	Reason string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Raw, e.Reason)
}

// Pattern is the compiled, immutable form of a raw pattern string.
//
// Literal holds the match-case form (lowercased for case-insensitive
// alphabets). relaxed holds an ASCII-lowercased copy used by the relaxed
// predicate, which is containment anywhere ignoring both the anchor and
// case. Any address that satisfies the full match therefore satisfies
// the relaxed one, never the reverse.
type Pattern struct {
	Raw      string
	Literal  string
	Anchor   Anchor
	alphabet Alphabet
	relaxed  string
}

// Compile parses a raw pattern into a Pattern. Leading and trailing '*'
// wildcards determine the anchor:
//
//	*lit*  anywhere
//	lit*   prefix
//	*lit   suffix
//	lit    prefix and suffix (exact match when the literal spans the address)
//
// It fails with *InvalidPatternError when the raw string is empty, too
// long, contains an interior wildcard, or contains characters outside
// the target alphabet.
func Compile(raw string, alphabet Alphabet) (*Pattern, error) {
	if raw == "" {
		return nil, &InvalidPatternError{Raw: raw, Reason: "empty pattern"}
	}
	if len(raw) > MaxRawLen {
		return nil, &InvalidPatternError{Raw: raw, Reason: fmt.Sprintf("longer than %d characters", MaxRawLen)}
	}

	literal := raw
	anchor := AnchorBoth
	leading := strings.HasPrefix(literal, "*")
	trailing := len(literal) > 1 && strings.HasSuffix(literal, "*")
	switch {
	case leading && trailing:
		anchor = AnchorAny
		literal = literal[1 : len(literal)-1]
	case leading:
		anchor = AnchorSuffix
		literal = literal[1:]
	case trailing:
		anchor = AnchorPrefix
		literal = literal[:len(literal)-1]
	}

	if literal == "" {
		return nil, &InvalidPatternError{Raw: raw, Reason: "no literal between wildcards"}
	}
	if strings.ContainsRune(literal, '*') {
		return nil, &InvalidPatternError{Raw: raw, Reason: "wildcard only allowed at the ends"}
	}
	if invalid := alphabet.InvalidRunes(literal); len(invalid) > 0 {
		return nil, &InvalidPatternError{
			Raw:    raw,
			Reason: fmt.Sprintf("character(s) %q not valid for %s addresses", string(invalid), alphabet),
		}
	}

	literal = alphabet.Normalize(literal)
	return &Pattern{
		Raw:      raw,
		Literal:  literal,
		Anchor:   anchor,
		alphabet: alphabet,
		relaxed:  strings.ToLower(literal),
	}, nil
}

// Alphabet returns the alphabet the pattern was compiled against.
func (p *Pattern) Alphabet() Alphabet { return p.alphabet }

// MatchesFull reports whether the address satisfies the anchor semantics
// exactly. The address must already be in the alphabet's normalized form
// (providers emit candidates that way). Allocation-free.
func (p *Pattern) MatchesFull(address string) bool {
	switch p.Anchor {
	case AnchorPrefix:
		return strings.HasPrefix(address, p.Literal)
	case AnchorSuffix:
		return strings.HasSuffix(address, p.Literal)
	case AnchorBoth:
		return strings.HasPrefix(address, p.Literal) && strings.HasSuffix(address, p.Literal)
	default:
		return strings.Contains(address, p.Literal)
	}
}

// MatchesRelaxed is the cheaper superset check: case-insensitive
// containment anywhere, ignoring the anchor. It feeds the near-match
// counter in progress reports and is never used to declare success.
func (p *Pattern) MatchesRelaxed(address string) bool {
	return containsFold(address, p.relaxed)
}

// Difficulty estimates the expected number of attempts for one match.
// Anchored-both patterns must hit twice, so the exponent doubles. The
// estimate saturates at MaxUint64 instead of wrapping.
func (p *Pattern) Difficulty() uint64 {
	chars := len(p.Literal)
	if p.Anchor == AnchorBoth {
		chars *= 2
	}
	difficulty := uint64(1)
	base := p.alphabet.Base()
	for i := 0; i < chars; i++ {
		if difficulty > math.MaxUint64/base {
			return math.MaxUint64
		}
		difficulty *= base
	}
	return difficulty
}

// containsFold is an allocation-free ASCII case-insensitive substring
// search. sub must already be lowercase.
func containsFold(s, sub string) bool {
	n := len(sub)
	if n == 0 {
		return true
	}
	for i := 0; i+n <= len(s); i++ {
		j := 0
		for ; j < n; j++ {
			c := s[i+j]
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c != sub[j] {
				break
			}
		}
		if j == n {
			return true
		}
	}
	return false
}
