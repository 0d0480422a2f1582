package unikit

import "fmt"

// Category returns the Unicode General Category of cv.
//
// It is a total function: any integer value is accepted, including
// negative values and values above 0x10FFFF, which classify as Cn.
//
// The lookup strategy depends on the codepoint band. The low 256
// codepoints index the core table directly. The band up to U+1FFFF is
// answered by a packed 2-bit bitmap where possible and otherwise by the
// general tries with hardcoded surrogate/private-use fallbacks. Astral
// planes are resolved by binary search over sorted range records.
func (ctx *Context) Category(cv rune) Category {
	switch {
	case cv >= 0 && cv <= 0xFF:
		return Category(ctx.gcatCore[cv])

	case cv >= 0x100 && cv <= 0x1FFFF:
		return ctx.categoryGeneral(cv)

	case cv >= 0x20000 && cv <= 0x10FFFF:
		return ctx.categoryAstral(cv)
	}
	return Cn
}

// categoryGeneral classifies the band U+0100..U+1FFFF.
func (ctx *Context) categoryGeneral(cv rune) Category {
	// Two bits of classification hint per codepoint, eight codepoints
	// per bitmap word.
	offs := cv - 0x100
	shift := uint(offs%8) * 2
	offs /= 8
	if int(offs) >= len(ctx.gcatBitmap) {
		panic(fmt.Sprintf("unikit: bitmap query out of range (U+%04X)", cv))
	}

	switch ctx.gcatBitmap[offs] >> shift & 0x3 {
	case 1:
		return Lo
	case 2:
		return Ll
	case 3:
		return So
	}

	// Bitmap could not answer; consult the general tries.
	var r uint16
	var ok bool
	if cv <= 0xFFFF {
		r, ok = ctx.gcatGenLow.Lookup(uint32(cv))
	} else {
		r, ok = ctx.gcatGenHigh.Lookup(uint32(cv) & 0xFFFF)
	}
	if ok {
		return Category(r)
	}

	// Last resort: the hardcoded remainder ranges.
	if cv >= 0xD800 && cv <= 0xDFFF {
		return Cs
	}
	if cv >= 0xE000 && cv <= 0xF8FF {
		return Co
	}
	return Cn
}

// categoryAstral classifies the band U+20000..U+10FFFF by binary search
// over the sorted astral range records. Each record is four consecutive
// words: plane, low offset, high offset, category.
//
// The search keeps the midpoint strictly above the lower bound so the
// interval always shrinks; this upper-median bias is part of the table
// contract and must not be replaced by a conventional bisection.
func (ctx *Context) categoryAstral(cv rune) Category {
	astral := ctx.gcatAstral
	if len(astral) < 4 || len(astral)%4 != 0 {
		panic(fmt.Sprintf("unikit: invalid astral table length %d", len(astral)))
	}

	plane := uint16(cv >> 16)
	offs := uint16(cv & 0xFFFF)

	lbound := 0
	ubound := len(astral)/4 - 1
	for lbound < ubound {
		mid := lbound + (ubound-lbound)/2
		if mid <= lbound {
			mid = lbound + 1
		}
		rPlane := astral[mid*4]
		rLower := astral[mid*4+1]

		switch {
		case plane < rPlane || (plane == rPlane && offs < rLower):
			ubound = mid - 1
		case plane > rPlane || (plane == rPlane && offs > rLower):
			lbound = mid
		default:
			// Exact match on a record's lower bound.
			lbound = mid
			ubound = mid
		}
	}

	rPlane := astral[lbound*4]
	rLower := astral[lbound*4+1]
	rUpper := astral[lbound*4+2]
	if plane == rPlane && offs >= rLower && offs <= rUpper {
		return Category(astral[lbound*4+3])
	}
	return Cn
}
