package unikit

import (
	"errors"
	"reflect"
	"testing"
)

// testFoldContext builds a Context with synthetic fold tables:
//   - plane 0: U+004D -> U+006D, U+00DF -> U+0073 U+0073,
//     U+0041 -> U+0041 (a stored identity record)
//   - plane 1: U+10400 -> U+10428
func testFoldContext(t *testing.T) *Context {
	t.Helper()

	// data: [006D 0073 0073 0428 0041]
	caseData := []uint16{0x006D, 0x0073, 0x0073, 0x0428, 0x0041}
	payloadM := uint16(0<<2 | 0)  // base 0, length 1
	payloadSS := uint16(1<<2 | 1) // base 1, length 2
	payloadA := uint16(4<<2 | 0)  // base 4, length 1

	// Keys 0x004D, 0x00DF and 0x0041 share the 0/0 prefix.
	lower := append(absentNode(), absentNode()...) // 0: root, 1: prefix 0
	lower = append(lower, absentNode()...)         // 2: prefix 00
	lower = append(lower, absentNode()...)         // 3: prefix 004
	lower = append(lower, absentNode()...)         // 4: prefix 00D
	lower[0x0] = 1
	lower[16+0x0] = 2
	lower[32+0x4] = 3
	lower[32+0xD] = 4
	lower[48+0xD] = payloadM
	lower[48+0x1] = payloadA
	lower[64+0xF] = payloadSS

	// Key 0x0400 (the plane offset of U+10400).
	upper := append(absentNode(), absentNode()...)
	upper = append(upper, absentNode()...)
	upper = append(upper, absentNode()...)
	upper[0x0] = 1
	upper[16+0x4] = 2
	upper[32+0x0] = 3
	upper[48+0x0] = uint16(3<<2 | 0) // base 3, length 1

	return &Context{
		caseLower:   mustTrie(t, lower, trieDepth),
		caseUpper:   mustTrie(t, upper, trieDepth),
		caseData:    caseData,
		gcatCore:    make([]uint16, 256),
		gcatGenLow:  emptyTrie(t),
		gcatGenHigh: emptyTrie(t),
		gcatBitmap:  make([]uint16, (0x20000-0x100)/8),
		gcatAstral:  []uint16{2, 0, 0, uint16(Cn)},
	}
}

func TestFoldNonTrivial(t *testing.T) {
	ctx := testFoldContext(t)
	f, err := ctx.Fold(0x004D)
	if err != nil {
		t.Fatal(err)
	}
	if f.Trivial() {
		t.Fatal("folding of U+004D should be non-trivial")
	}
	if !reflect.DeepEqual(f.Codepoints(), []rune{0x006D}) {
		t.Fatalf("Fold(U+004D) = %#v", f.Codepoints())
	}
}

func TestFoldExpanding(t *testing.T) {
	ctx := testFoldContext(t)
	f, err := ctx.Fold(0x00DF)
	if err != nil {
		t.Fatal(err)
	}
	if f.Trivial() || f.Len() != 2 {
		t.Fatalf("Fold(U+00DF): trivial=%v len=%d", f.Trivial(), f.Len())
	}
	if !reflect.DeepEqual(f.Codepoints(), []rune{0x0073, 0x0073}) {
		t.Fatalf("Fold(U+00DF) = %#v", f.Codepoints())
	}
}

func TestFoldAbsentIsTrivial(t *testing.T) {
	ctx := testFoldContext(t)
	f, err := ctx.Fold(0x0061)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Trivial() || f.Len() != 1 || f.Codepoints()[0] != 0x0061 {
		t.Fatalf("Fold(U+0061) = %#v trivial=%v", f.Codepoints(), f.Trivial())
	}
}

// A stored record that maps a codepoint to itself must still be flagged
// trivial.
func TestFoldStoredIdentityIsTrivial(t *testing.T) {
	ctx := testFoldContext(t)
	f, err := ctx.Fold(0x0041)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Trivial() || f.Len() != 1 || f.Codepoints()[0] != 0x0041 {
		t.Fatalf("Fold(U+0041) = %#v trivial=%v", f.Codepoints(), f.Trivial())
	}
}

func TestFoldUpperPlane(t *testing.T) {
	ctx := testFoldContext(t)
	f, err := ctx.Fold(0x10400)
	if err != nil {
		t.Fatal(err)
	}
	if f.Trivial() || !reflect.DeepEqual(f.Codepoints(), []rune{0x10428}) {
		t.Fatalf("Fold(U+10400) = %#v trivial=%v", f.Codepoints(), f.Trivial())
	}
}

func TestFoldAstralPlaneIsTrivial(t *testing.T) {
	ctx := testFoldContext(t)
	for _, cv := range []rune{0x20000, 0xE0100, 0x10FFFF} {
		f, err := ctx.Fold(cv)
		if err != nil {
			t.Fatal(err)
		}
		if !f.Trivial() || f.Len() != 1 || f.Codepoints()[0] != cv {
			t.Fatalf("Fold(%#x) = %#v trivial=%v", cv, f.Codepoints(), f.Trivial())
		}
	}
}

func TestFoldInvalidCodepoint(t *testing.T) {
	ctx := testFoldContext(t)
	for _, cv := range []rune{-1, 0xD800, 0xDFFF, 0x110000} {
		if _, err := ctx.Fold(cv); !errors.Is(err, ErrInvalidCodepoint) {
			t.Fatalf("Fold(%#x) should fail with ErrInvalidCodepoint, got %v", cv, err)
		}
	}
}

func TestFoldDataBoundPanics(t *testing.T) {
	ctx := testFoldContext(t)
	ctx.caseData = ctx.caseData[:1] // record for U+00DF now points past the end
	defer func() {
		if recover() == nil {
			t.Fatal("fold data overrun should panic")
		}
	}()
	ctx.Fold(0x00DF)
}

func TestIsValidCodepoint(t *testing.T) {
	valid := []rune{0, 0x41, 0xD7FF, 0xE000, 0xFFFF, 0x10000, 0x10FFFF}
	invalid := []rune{-1, 0xD800, 0xDC00, 0xDFFF, 0x110000, 0x7FFFFFFF}
	for _, cv := range valid {
		if !IsValidCodepoint(cv) {
			t.Fatalf("IsValidCodepoint(%#x) should be true", cv)
		}
	}
	for _, cv := range invalid {
		if IsValidCodepoint(cv) {
			t.Fatalf("IsValidCodepoint(%#x) should be false", cv)
		}
	}
}
