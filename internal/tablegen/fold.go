package tablegen

import (
	"fmt"

	"github.com/derekparker/trie"
	"golang.org/x/text/cases"

	"github.com/canidlogic/unikit"
	"github.com/canidlogic/unikit/tables"
)

// maxFoldLen is the longest case folding sequence (Unicode guarantees
// full foldings of at most three codepoints; the table format allows
// four).
const maxFoldLen = 4

// buildFolds scans planes 0 and 1 with the x/text full case folder and
// compiles the two fold tries plus the shared case-data array.
//
// A trie payload packs the sequence length minus one into its low two
// bits and the base offset into the data array above them, so the data
// array is limited to 16K words; identical folding sequences share one
// data record.
func buildFolds() (lower, upper []uint16, data []uint16, err error) {
	folder := cases.Fold()
	lowerTrie := trie.New()
	upperTrie := trie.New()
	index := make(map[string]int)
	mappings := 0

	for cv := rune(0); cv <= 0x1FFFF; cv++ {
		if !unikit.IsValidCodepoint(cv) {
			continue
		}
		s := string(cv)
		folded := folder.String(s)
		if folded == s {
			continue
		}
		seq := []rune(folded)
		if len(seq) < 1 || len(seq) > maxFoldLen {
			return nil, nil, nil, fmt.Errorf("tablegen: U+%04X folds to %d codepoints", cv, len(seq))
		}

		// All fold data lives in the source codepoint's plane; the
		// tables store plane offsets only.
		plane1 := cv > 0xFFFF
		words := make([]uint16, len(seq))
		for i, r := range seq {
			inPlane := r <= 0xFFFF
			if plane1 {
				inPlane = r >= 0x10000 && r <= 0x1FFFF
			}
			if !inPlane {
				return nil, nil, nil, fmt.Errorf("tablegen: folding of U+%04X crosses planes (U+%04X)", cv, r)
			}
			words[i] = uint16(r & 0xFFFF)
		}

		base, ok := index[wordKey(words)]
		if !ok {
			base = len(data)
			data = append(data, words...)
			index[wordKey(words)] = base
		}
		if base >= 1<<14 {
			return nil, nil, nil, fmt.Errorf("tablegen: case data offset overflow at U+%04X", cv)
		}
		payload := uint16(base<<2) | uint16(len(seq)-1)
		if payload == tables.Absent {
			return nil, nil, nil, fmt.Errorf("tablegen: fold payload collides with absent sentinel at U+%04X", cv)
		}

		key := nybbleKey(uint32(cv) & 0xFFFF)
		if plane1 {
			upperTrie.Add(key, payload)
		} else {
			lowerTrie.Add(key, payload)
		}
		mappings++
	}

	tracer().Infof("case folding scan: %d non-trivial mappings, %d data words", mappings, len(data))

	if lower, err = compileTrie(lowerTrie, trieDepth); err != nil {
		return nil, nil, nil, err
	}
	if upper, err = compileTrie(upperTrie, trieDepth); err != nil {
		return nil, nil, nil, err
	}
	return lower, upper, data, nil
}

// wordKey builds a map key from a word sequence.
func wordKey(words []uint16) string {
	b := make([]byte, 0, len(words)*2)
	for _, w := range words {
		b = append(b, byte(w>>8), byte(w))
	}
	return string(b)
}
