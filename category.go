package unikit

import "fmt"

// Category is a Unicode General Category code packed into 16 bits: the
// ASCII code of the uppercase letter in the high byte and the ASCII code
// of the lowercase letter in the low byte.
type Category uint16

// The 30 Unicode General Categories.
const (
	Lu Category = 0x4C75 // Lu: Uppercase letter
	Ll Category = 0x4C6C // Ll: Lowercase letter
	Lt Category = 0x4C74 // Lt: Titlecase digraph
	Lm Category = 0x4C6D // Lm: Modifier letter
	Lo Category = 0x4C6F // Lo: Other letter

	Mn Category = 0x4D6E // Mn: Nonspacing mark
	Mc Category = 0x4D63 // Mc: Spacing mark
	Me Category = 0x4D65 // Me: Enclosing mark

	Nd Category = 0x4E64 // Nd: Decimal digit
	Nl Category = 0x4E6C // Nl: Letter-like numeric
	No Category = 0x4E6F // No: Other numeric

	Pc Category = 0x5063 // Pc: Connector punctuation
	Pd Category = 0x5064 // Pd: Dash punctuation
	Ps Category = 0x5073 // Ps: Opening punctuation
	Pe Category = 0x5065 // Pe: Closing punctuation
	Pi Category = 0x5069 // Pi: Initial quotation mark
	Pf Category = 0x5066 // Pf: Final quotation mark
	Po Category = 0x506F // Po: Other punctuation

	Sm Category = 0x536D // Sm: Math symbol
	Sc Category = 0x5363 // Sc: Currency symbol
	Sk Category = 0x536B // Sk: Modifier symbol
	So Category = 0x536F // So: Other symbol

	Zs Category = 0x5A73 // Zs: Space character
	Zl Category = 0x5A6C // Zl: only for U+2028 LS
	Zp Category = 0x5A70 // Zp: only for U+2029 PS

	Cc Category = 0x4363 // Cc: C0/C1 control code
	Cf Category = 0x4366 // Cf: format control code
	Cs Category = 0x4373 // Cs: surrogate codepoint
	Co Category = 0x436F // Co: private use codepoint
	Cn Category = 0x436E // Cn: reserved or unassigned
)

// CategoryGroup is one of the 7 coarser groupings of the General
// Categories, stored in the high byte of a Category.
type CategoryGroup uint16

// GroupMask extracts the CategoryGroup bits from a Category.
const GroupMask = 0xFF00

// The 7 category groups. The Unicode "LC" (cased letter) grouping is not
// a plain mask; check for Lu, Ll or Lt instead.
const (
	GroupL CategoryGroup = 0x4C00 // Letters
	GroupM CategoryGroup = 0x4D00 // Combining marks
	GroupN CategoryGroup = 0x4E00 // Numbers
	GroupP CategoryGroup = 0x5000 // Punctuation
	GroupS CategoryGroup = 0x5300 // Symbols
	GroupZ CategoryGroup = 0x5A00 // Separators
	GroupC CategoryGroup = 0x4300 // Other
)

// Group returns the category group of c.
func (c Category) Group() CategoryGroup {
	return CategoryGroup(uint16(c) & GroupMask)
}

// String returns the two-letter code, e.g. "Lu".
func (c Category) String() string {
	return string([]byte{byte(c >> 8), byte(c)})
}

// AllCategories lists the 30 General Categories in the conventional
// L, M, N, P, S, Z, C order.
func AllCategories() []Category {
	return []Category{
		Lu, Ll, Lt, Lm, Lo,
		Mn, Mc, Me,
		Nd, Nl, No,
		Pc, Pd, Ps, Pe, Pi, Pf, Po,
		Sm, Sc, Sk, So,
		Zs, Zl, Zp,
		Cc, Cf, Cs, Co, Cn,
	}
}

// ParseCategory parses a two-letter General Category code, uppercase
// letter first, and rejects anything that is not one of the 30 defined
// categories.
func ParseCategory(s string) (Category, error) {
	if len(s) != 2 || s[0] < 'A' || s[0] > 'Z' || s[1] < 'a' || s[1] > 'z' {
		return 0, fmt.Errorf("malformed category code %q", s)
	}
	c := Category(uint16(s[0])<<8 | uint16(s[1]))
	for _, known := range AllCategories() {
		if c == known {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category code %q", s)
}
