// Package tables implements the wire format of unikit's embedded data
// tables: a base-64 style text encoding whose atomic unit is an unsigned
// 16-bit word, and a fixed-fanout trie view over the decoded arrays.
//
// The encoding is private to unikit. It is not a byte-oriented base-64;
// a standard decoder produces byte streams that do not line up with the
// 16-bit words stored here.
package tables

import (
	"errors"
	"fmt"
	"strings"
)

// Decode error kinds. Decode wraps these with positional detail.
var (
	ErrLength  = errors.New("invalid encoded table length")
	ErrChar    = errors.New("invalid character in encoded table")
	ErrPadding = errors.New("invalid padding in encoded table")
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// sextet returns the 6-bit value of one encoding character, or -1 if the
// character is outside the alphabet. '=' is not part of the alphabet.
func sextet(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 26
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	case c == '+':
		return 62
	case c == '/':
		return 63
	}
	return -1
}

// Decode converts an encoded table string into its array of unsigned
// 16-bit words.
//
// The string length must be greater than zero and a multiple of four.
// Each full group of eight characters decodes to exactly three words. A
// trailing remainder of four characters decodes to one extra word and a
// remainder of eight characters (marked by '=' padding) decodes to two
// extra words, so the result length is always groups*3 + extra.
func Decode(s string) ([]uint16, error) {
	slen := len(s)
	if slen < 1 || slen%4 != 0 {
		return nil, fmt.Errorf("%w: %d characters", ErrLength, slen)
	}

	// Count full eight-character groups. If the last eight-aligned group
	// ends in '=', it is not a full group: it must be the final group of
	// the string, and it decodes through the remainder path below.
	groups := slen / 8
	if groups > 0 && s[groups*8-1] == '=' {
		if slen%8 != 0 {
			return nil, fmt.Errorf("%w: '=' outside final group", ErrPadding)
		}
		groups--
	}

	var extra int
	base := groups * 8
	switch slen - base {
	case 0:
		extra = 0
	case 4:
		extra = 1
	case 8:
		extra = 2
	default:
		return nil, fmt.Errorf("%w: %d trailing characters", ErrLength, slen-base)
	}

	words := make([]uint16, 0, groups*3+extra)

	pos := 0
	for g := 0; g < groups; g++ {
		var acc uint64
		for j := 0; j < 8; j++ {
			v := sextet(s[pos])
			if v < 0 {
				return nil, fmt.Errorf("%w: %q at offset %d", ErrChar, s[pos], pos)
			}
			acc = acc<<6 | uint64(v)
			pos++
		}
		words = append(words,
			uint16(acc>>32),
			uint16(acc>>16&0xFFFF),
			uint16(acc&0xFFFF))
	}

	// A one-word remainder carries 18 significant bits in three
	// characters, a two-word remainder 36 bits in six; the low 2 (resp.
	// 4) bits are padding and everything after must be '='.
	var acc uint64
	for i := 0; i < extra*3; i++ {
		v := sextet(s[pos])
		if v < 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrChar, s[pos], pos)
		}
		acc = acc<<6 | uint64(v)
		pos++
	}
	switch extra {
	case 1:
		words = append(words, uint16(acc>>2&0xFFFF))
	case 2:
		acc >>= 4
		words = append(words, uint16(acc>>16), uint16(acc&0xFFFF))
	}

	for ; pos < slen; pos++ {
		if s[pos] != '=' {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrPadding, s[pos], pos)
		}
	}
	return words, nil
}

// Encode converts an array of unsigned 16-bit words into the encoded
// string form accepted by Decode. Decode(Encode(w)) reproduces w for
// every input.
func Encode(words []uint16) string {
	var sb strings.Builder
	full := len(words) / 3
	sb.Grow(full*8 + 8)

	for g := 0; g < full; g++ {
		acc := uint64(words[g*3])<<32 | uint64(words[g*3+1])<<16 | uint64(words[g*3+2])
		for j := 7; j >= 0; j-- {
			sb.WriteByte(alphabet[acc>>(uint(j)*6)&0x3F])
		}
	}

	switch len(words) - full*3 {
	case 1:
		// 16 bits left-padded into 18, three characters plus one '='.
		acc := uint64(words[full*3]) << 2
		for j := 2; j >= 0; j-- {
			sb.WriteByte(alphabet[acc>>(uint(j)*6)&0x3F])
		}
		sb.WriteByte('=')
	case 2:
		// 32 bits into 36, six characters plus two '='.
		acc := (uint64(words[full*3])<<16 | uint64(words[full*3+1])) << 4
		for j := 5; j >= 0; j-- {
			sb.WriteByte(alphabet[acc>>(uint(j)*6)&0x3F])
		}
		sb.WriteString("==")
	}
	return sb.String()
}
