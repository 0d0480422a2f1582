package unikit

import (
	"fmt"

	"github.com/canidlogic/unikit/tables"
)

// TableKey names one of the eight embedded data tables.
type TableKey int

// The eight data keys a DataSource must serve.
//
// The CASE keys are the case folding tables: the index tries for the
// lower and upper plane plus the codepoint data array referenced from
// both. The GCAT keys are the General Category tables.
const (
	KeyCaseLower TableKey = 100
	KeyCaseUpper TableKey = 101
	KeyCaseData  TableKey = 102

	KeyGcatCore    TableKey = 200
	KeyGcatGenLow  TableKey = 201
	KeyGcatGenHigh TableKey = 202
	KeyGcatBitmap  TableKey = 203
	KeyGcatAstral  TableKey = 204
)

// String returns the identifier of the key as used by the table
// generator, e.g. "case-lower".
func (k TableKey) String() string {
	switch k {
	case KeyCaseLower:
		return "case-lower"
	case KeyCaseUpper:
		return "case-upper"
	case KeyCaseData:
		return "case-data"
	case KeyGcatCore:
		return "gcat-core"
	case KeyGcatGenLow:
		return "gcat-gen-low"
	case KeyGcatGenHigh:
		return "gcat-gen-high"
	case KeyGcatBitmap:
		return "gcat-bitmap"
	case KeyGcatAstral:
		return "gcat-astral"
	}
	return fmt.Sprintf("TableKey(%d)", int(k))
}

// AllTableKeys lists the eight data keys in fetch order.
func AllTableKeys() []TableKey {
	return []TableKey{
		KeyCaseLower, KeyCaseUpper, KeyCaseData,
		KeyGcatCore, KeyGcatGenLow, KeyGcatGenHigh, KeyGcatBitmap, KeyGcatAstral,
	}
}

// DataSource supplies the encoded table strings. Fetch reports ok=false
// for a key it does not carry, which Init treats as a configuration
// error.
type DataSource interface {
	Fetch(key TableKey) (data string, ok bool)
}

// Context holds the decoded tables of one unikit instance. It is built
// once by Init, immutable afterwards, and safe for concurrent queries.
type Context struct {
	caseLower tables.Trie
	caseUpper tables.Trie
	caseData  []uint16

	gcatCore    []uint16
	gcatGenLow  tables.Trie
	gcatGenHigh tables.Trie
	gcatBitmap  []uint16
	gcatAstral  []uint16
}

// trieDepth is the nybble depth of all four query tries: a full 16-bit
// plane offset.
const trieDepth = 4

// Init fetches and decodes all eight data tables from src and returns a
// ready-to-query Context.
//
// Missing keys, malformed encoded strings and violated table-shape
// invariants (core table not exactly 256 entries, empty astral table or
// astral length not a multiple of 4, trie length not a multiple of 16)
// are returned as errors. Init does not retain src.
func Init(src DataSource) (*Context, error) {
	if src == nil {
		return nil, fmt.Errorf("unikit: nil data source")
	}
	decoded := make(map[TableKey][]uint16, 8)
	for _, key := range AllTableKeys() {
		s, ok := src.Fetch(key)
		if !ok {
			return nil, fmt.Errorf("unikit: data source has no %s table", key)
		}
		words, err := tables.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("unikit: %s table: %w", key, err)
		}
		decoded[key] = words
	}

	ctx := &Context{
		caseData:   decoded[KeyCaseData],
		gcatCore:   decoded[KeyGcatCore],
		gcatBitmap: decoded[KeyGcatBitmap],
		gcatAstral: decoded[KeyGcatAstral],
	}

	var err error
	if ctx.caseLower, err = tables.NewTrie(decoded[KeyCaseLower], trieDepth); err != nil {
		return nil, fmt.Errorf("unikit: %s table: %w", KeyCaseLower, err)
	}
	if ctx.caseUpper, err = tables.NewTrie(decoded[KeyCaseUpper], trieDepth); err != nil {
		return nil, fmt.Errorf("unikit: %s table: %w", KeyCaseUpper, err)
	}
	if ctx.gcatGenLow, err = tables.NewTrie(decoded[KeyGcatGenLow], trieDepth); err != nil {
		return nil, fmt.Errorf("unikit: %s table: %w", KeyGcatGenLow, err)
	}
	if ctx.gcatGenHigh, err = tables.NewTrie(decoded[KeyGcatGenHigh], trieDepth); err != nil {
		return nil, fmt.Errorf("unikit: %s table: %w", KeyGcatGenHigh, err)
	}

	if len(ctx.gcatCore) != 256 {
		return nil, fmt.Errorf("unikit: invalid core table length %d", len(ctx.gcatCore))
	}
	if len(ctx.gcatAstral) < 4 || len(ctx.gcatAstral)%4 != 0 {
		return nil, fmt.Errorf("unikit: invalid astral table length %d", len(ctx.gcatAstral))
	}

	tracer().Infof("unikit tables decoded: case lower/upper/data=%d/%d/%d words, gcat core/low/high/bitmap/astral=%d/%d/%d/%d/%d words",
		ctx.caseLower.Len(), ctx.caseUpper.Len(), len(ctx.caseData),
		len(ctx.gcatCore), ctx.gcatGenLow.Len(), ctx.gcatGenHigh.Len(),
		len(ctx.gcatBitmap), len(ctx.gcatAstral))
	return ctx, nil
}

// IsValidCodepoint reports whether cv is a valid Unicode codepoint:
// in range U+0000 to U+10FFFF and not a surrogate.
func IsValidCodepoint(cv rune) bool {
	if cv < 0 || cv > 0x10FFFF {
		return false
	}
	return cv < 0xD800 || cv > 0xDFFF
}
