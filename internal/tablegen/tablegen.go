// Package tablegen compiles the eight unikit data tables from the
// Unicode data carried by the Go ecosystem: General Categories from the
// unicode package range tables and full case foldings from
// golang.org/x/text.
//
// The original unikit tables were generated offline from the Unicode
// Character Database; this package produces the same table shapes from
// the same underlying data and serializes them with tables.Encode, so
// the result plugs into unikit.Init unchanged.
package tablegen

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"

	"github.com/canidlogic/unikit"
	"github.com/canidlogic/unikit/tables"
)

// tracer writes to trace with key 'unikit'
func tracer() tracing.Trace {
	return tracing.Select("unikit")
}

const maxCodepoint = 0x10FFFF

// Tables holds the eight encoded data tables, ready for a DataSource.
type Tables struct {
	CaseLower string
	CaseUpper string
	CaseData  string

	GcatCore    string
	GcatGenLow  string
	GcatGenHigh string
	GcatBitmap  string
	GcatAstral  string
}

// Build compiles all eight tables. It is deterministic for a given Go
// and x/text release; errors indicate a bug in the generator, not bad
// caller input.
func Build() (*Tables, error) {
	cats := stampCategories()

	core := buildCore(cats)
	bitmap := buildBitmap(cats)

	genLow, genHigh, err := buildGeneralTries(cats)
	if err != nil {
		return nil, err
	}
	astral, err := buildAstral(cats)
	if err != nil {
		return nil, err
	}
	lower, upper, caseData, err := buildFolds()
	if err != nil {
		return nil, err
	}

	tracer().Infof("unikit tables built: gen low/high=%d/%d words, bitmap=%d, astral=%d records, case data=%d words",
		len(genLow), len(genHigh), len(bitmap), len(astral)/4, len(caseData))

	return &Tables{
		CaseLower:   tables.Encode(lower),
		CaseUpper:   tables.Encode(upper),
		CaseData:    tables.Encode(caseData),
		GcatCore:    tables.Encode(core),
		GcatGenLow:  tables.Encode(genLow),
		GcatGenHigh: tables.Encode(genHigh),
		GcatBitmap:  tables.Encode(bitmap),
		GcatAstral:  tables.Encode(astral),
	}, nil
}

// stampCategories assigns every codepoint its General Category word.
// Zero means unassigned; only the 30 real assignment tables are
// stamped. The unicode package also carries aggregate tables under the
// one-letter group names plus "LC" (cased letters) and "Cn"
// (unassigned), which overlap the real ones and must be skipped.
func stampCategories() []uint16 {
	cats := make([]uint16, maxCodepoint+1)
	for name, rt := range unicode.Categories {
		if len(name) != 2 || name == "LC" || name == "Cn" {
			continue
		}
		code := uint16(name[0])<<8 | uint16(name[1])
		for _, r := range rt.R16 {
			for cv := uint32(r.Lo); cv <= uint32(r.Hi); cv += uint32(r.Stride) {
				cats[cv] = code
			}
		}
		for _, r := range rt.R32 {
			for cv := r.Lo; cv <= r.Hi && cv <= maxCodepoint; cv += r.Stride {
				cats[cv] = code
			}
		}
	}
	return cats
}

func catWord(c uint16) uint16 {
	if c == 0 {
		return uint16(unikit.Cn)
	}
	return c
}

// buildCore produces the 256-entry direct table for U+0000..U+00FF.
func buildCore(cats []uint16) []uint16 {
	core := make([]uint16, 256)
	for cv := range core {
		core[cv] = catWord(cats[cv])
	}
	return core
}

// bitmapHint returns the 2-bit bitmap field for a category: the three
// categories that dominate the U+0100..U+1FFFF band get a direct
// encoding, everything else defers to the general tries.
func bitmapHint(c uint16) uint16 {
	switch unikit.Category(c) {
	case unikit.Lo:
		return 1
	case unikit.Ll:
		return 2
	case unikit.So:
		return 3
	}
	return 0
}

// buildBitmap packs two bits per codepoint for U+0100..U+1FFFF, eight
// codepoints per word.
func buildBitmap(cats []uint16) []uint16 {
	bitmap := make([]uint16, (0x20000-0x100)/8)
	for cv := 0x100; cv <= 0x1FFFF; cv++ {
		hint := bitmapHint(cats[cv])
		if hint == 0 {
			continue
		}
		idx := cv - 0x100
		bitmap[idx/8] |= hint << (uint(idx%8) * 2)
	}
	return bitmap
}

// buildGeneralTries compiles the two depth-4 tries answering the
// U+0100..U+1FFFF band where the bitmap cannot. Codepoints resolved by
// the classifier's hardcoded fallbacks (surrogates, BMP private use)
// and unassigned codepoints are left out of the tries.
func buildGeneralTries(cats []uint16) (low, high []uint16, err error) {
	genLow := trie.New()
	genHigh := trie.New()
	for cv := 0x100; cv <= 0x1FFFF; cv++ {
		c := cats[cv]
		if c == 0 || bitmapHint(c) != 0 {
			continue
		}
		if cv >= 0xD800 && cv <= 0xDFFF && unikit.Category(c) == unikit.Cs {
			continue
		}
		if cv >= 0xE000 && cv <= 0xF8FF && unikit.Category(c) == unikit.Co {
			continue
		}
		if cv <= 0xFFFF {
			genLow.Add(nybbleKey(uint32(cv)), c)
		} else {
			genHigh.Add(nybbleKey(uint32(cv)&0xFFFF), c)
		}
	}
	if low, err = compileTrie(genLow, trieDepth); err != nil {
		return nil, nil, err
	}
	if high, err = compileTrie(genHigh, trieDepth); err != nil {
		return nil, nil, err
	}
	return low, high, nil
}

// buildAstral emits the sorted astral range records: maximal runs of
// one category within one plane, four words per record.
func buildAstral(cats []uint16) ([]uint16, error) {
	var astral []uint16
	for cv := 0x20000; cv <= maxCodepoint; {
		c := cats[cv]
		if c == 0 {
			cv++
			continue
		}
		plane := cv >> 16
		hi := cv
		for hi+1 <= maxCodepoint && (hi+1)>>16 == plane && cats[hi+1] == c {
			hi++
		}
		astral = append(astral,
			uint16(plane), uint16(cv&0xFFFF), uint16(hi&0xFFFF), c)
		cv = hi + 1
	}
	if len(astral) == 0 {
		return nil, errors.New("tablegen: empty astral table")
	}
	if len(astral)/4 > 0xFFFF {
		return nil, fmt.Errorf("tablegen: astral table overflow: %d records", len(astral)/4)
	}
	return astral, nil
}
