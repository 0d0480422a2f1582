package unikit

import (
	"errors"
	"fmt"
)

// ErrInvalidCodepoint is returned by Fold for values that fail
// IsValidCodepoint.
var ErrInvalidCodepoint = errors.New("invalid codepoint")

// FoldResult is the case folding of one codepoint: a sequence of one to
// four codepoints. The zero value is not meaningful; use Fold.
type FoldResult struct {
	cps     [4]rune
	n       uint8
	trivial bool
}

// Codepoints returns the folded sequence. The slice aliases the
// result's backing array; it is valid as long as the FoldResult is.
func (f *FoldResult) Codepoints() []rune { return f.cps[:f.n] }

// Len returns the length of the folded sequence, in range 1 to 4.
func (f *FoldResult) Len() int { return int(f.n) }

// Trivial reports whether the folding maps the codepoint to itself.
func (f *FoldResult) Trivial() bool { return f.trivial }

// Fold performs full case folding on cv.
//
// Every valid codepoint folds: most have a trivial folding, the single
// codepoint itself, and the result flags those. Fold returns
// ErrInvalidCodepoint if cv is out of range or a surrogate.
func (ctx *Context) Fold(cv rune) (FoldResult, error) {
	if !IsValidCodepoint(cv) {
		return FoldResult{}, fmt.Errorf("%w: %#x", ErrInvalidCodepoint, cv)
	}

	// Folding data exists for planes 0 and 1 only; everything above
	// folds trivially.
	var r uint16
	var ok bool
	plane1 := false
	switch {
	case cv <= 0xFFFF:
		r, ok = ctx.caseLower.Lookup(uint32(cv) & 0xFFFF)
	case cv <= 0x1FFFF:
		r, ok = ctx.caseUpper.Lookup(uint32(cv) & 0xFFFF)
		plane1 = true
	}
	if !ok {
		return FoldResult{cps: [4]rune{cv}, n: 1, trivial: true}, nil
	}

	// The payload packs the sequence length minus one into the low two
	// bits and the base offset into the case-data array above them.
	seqlen := int(r&0x3) + 1
	base := int(r >> 2)
	if base > len(ctx.caseData)-seqlen {
		panic(fmt.Sprintf("unikit: fold data bound error (base %d, len %d)", base, seqlen))
	}

	f := FoldResult{n: uint8(seqlen)}
	for i := 0; i < seqlen; i++ {
		f.cps[i] = rune(ctx.caseData[base+i])
		if plane1 {
			f.cps[i] += 0x10000
		}
	}
	f.trivial = seqlen == 1 && f.cps[0] == cv
	return f, nil
}
