package unikit

import (
	"strings"
	"testing"

	"github.com/canidlogic/unikit/tables"
)

type mapSource map[TableKey]string

func (m mapSource) Fetch(key TableKey) (string, bool) {
	s, ok := m[key]
	return s, ok
}

// minimalSource encodes the smallest well-formed table set: empty tries,
// a one-word case-data array, an all-Cn core table and one astral
// record.
func minimalSource() mapSource {
	emptyTrie := make([]uint16, 16)
	for i := range emptyTrie {
		emptyTrie[i] = tables.Absent
	}
	core := make([]uint16, 256)
	for i := range core {
		core[i] = uint16(Cn)
	}
	return mapSource{
		KeyCaseLower:   tables.Encode(emptyTrie),
		KeyCaseUpper:   tables.Encode(emptyTrie),
		KeyCaseData:    tables.Encode([]uint16{0}),
		KeyGcatCore:    tables.Encode(core),
		KeyGcatGenLow:  tables.Encode(emptyTrie),
		KeyGcatGenHigh: tables.Encode(emptyTrie),
		KeyGcatBitmap:  tables.Encode(make([]uint16, (0x20000-0x100)/8)),
		KeyGcatAstral:  tables.Encode([]uint16{2, 0, 0xFFFF, uint16(Cn)}),
	}
}

func TestInitMinimalSource(t *testing.T) {
	ctx, err := Init(minimalSource())
	if err != nil {
		t.Fatal(err)
	}
	if got := ctx.Category(0x41); got != Cn {
		t.Fatalf("Category(0x41) = %s, want Cn from the synthetic core", got)
	}
	f, err := ctx.Fold(0x41)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Trivial() {
		t.Fatal("empty fold tables should make every folding trivial")
	}
}

func TestInitNilSource(t *testing.T) {
	if _, err := Init(nil); err == nil {
		t.Fatal("Init(nil) should fail")
	}
}

func TestInitMissingKey(t *testing.T) {
	src := minimalSource()
	delete(src, KeyGcatBitmap)
	_, err := Init(src)
	if err == nil || !strings.Contains(err.Error(), "gcat-bitmap") {
		t.Fatalf("missing table should name the key, got %v", err)
	}
}

func TestInitMalformedTable(t *testing.T) {
	src := minimalSource()
	src[KeyCaseData] = "not*base64*data!"
	if _, err := Init(src); err == nil {
		t.Fatal("malformed table should fail Init")
	}
}

func TestInitWrongCoreLength(t *testing.T) {
	src := minimalSource()
	src[KeyGcatCore] = tables.Encode(make([]uint16, 255))
	_, err := Init(src)
	if err == nil || !strings.Contains(err.Error(), "core table length") {
		t.Fatalf("want core table length error, got %v", err)
	}
}

func TestInitBadAstralLength(t *testing.T) {
	src := minimalSource()
	src[KeyGcatAstral] = tables.Encode([]uint16{2, 0, 0xFFFF})
	if _, err := Init(src); err == nil {
		t.Fatal("astral length not a multiple of 4 should fail Init")
	}
}

func TestInitBadTrieShape(t *testing.T) {
	src := minimalSource()
	src[KeyCaseLower] = tables.Encode(make([]uint16, 20))
	if _, err := Init(src); err == nil {
		t.Fatal("trie length not a multiple of 16 should fail Init")
	}
}

func TestTableKeyNames(t *testing.T) {
	want := map[TableKey]string{
		KeyCaseLower:   "case-lower",
		KeyCaseUpper:   "case-upper",
		KeyCaseData:    "case-data",
		KeyGcatCore:    "gcat-core",
		KeyGcatGenLow:  "gcat-gen-low",
		KeyGcatGenHigh: "gcat-gen-high",
		KeyGcatBitmap:  "gcat-bitmap",
		KeyGcatAstral:  "gcat-astral",
	}
	keys := AllTableKeys()
	if len(keys) != 8 {
		t.Fatalf("expected 8 table keys, got %d", len(keys))
	}
	for _, k := range keys {
		if k.String() != want[k] {
			t.Fatalf("key %d names itself %q, want %q", int(k), k, want[k])
		}
	}
}
