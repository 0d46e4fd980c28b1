package fe

import (
	"encoding/hex"
	"strings"
)

const suffix = ".fe"

// String formats the element as shortest-hex-upper with a `.fe` suffix, e.g.
// "0.fe", "345.fe", "FFFF...FF.fe". Leading zero nibbles are trimmed; the
// zero value formats as "0.fe".
func (e Elem) String() string {
	if e.v.Sign() == 0 {
		return "0" + suffix
	}
	return strings.ToUpper(e.v.Text(16)) + suffix
}

// PaddedString formats the element as 64 zero-padded hex digits plus the
// `.fe` suffix — the alternate, fixed-width textual form.
func (e Elem) PaddedString() string {
	digits := strings.ToUpper(e.v.Text(16))
	if len(digits) < 64 {
		digits = strings.Repeat("0", 64-len(digits)) + digits
	}
	return digits + suffix
}

// ParseString parses the `<hex>.fe` textual form described in spec.md §4.1
// and §6: 1..64 big-endian hex digits, optionally missing a leading nibble
// (odd-length hex is zero-extended on the left before decoding), followed by
// the literal suffix ".fe". This is an untrusted-input path: the decoded
// value is subject to the same safety bound as FromBytes.
func ParseString(s string) (Elem, error) {
	hexPart, ok := strings.CutSuffix(s, suffix)
	if !ok {
		return Elem{}, &MissingSuffixError{Input: s}
	}
	if hexPart == "" {
		return Elem{}, &HexError{Input: s, Reason: "empty hex digits"}
	}
	if len(hexPart) > 64 {
		return Elem{}, &HexError{Input: s, Reason: "more than 64 hex digits"}
	}
	digits := hexPart
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return Elem{}, &HexError{Input: s, Reason: err.Error()}
	}
	var be [32]byte
	copy(be[32-len(raw):], raw)
	var le [32]byte
	for i, b := range be {
		le[31-i] = b
	}
	return FromBytes(le)
}
