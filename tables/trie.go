package tables

import (
	"errors"
	"fmt"
)

// Absent is the sentinel word meaning "no entry" at any trie level.
const Absent = 0xFFFF

// nodeSize is the fanout of every trie node: one slot per key nybble.
const nodeSize = 16

// Trie is a read-only view over a decoded table interpreted as a
// fixed-fanout, fixed-depth trie.
//
//   - The array is a sequence of nodes of exactly 16 words each; node 0
//     is the root.
//   - A lookup key is consumed as depth nybbles, most significant first.
//   - At non-final levels a slot holds the index of the next node, or
//     Absent. At the final level a slot holds the payload, or Absent.
//
// Trie values are cheap to copy and safe for concurrent lookups.
type Trie struct {
	words []uint16
	depth int
}

var errTrieDepth = errors.New("trie depth out of range")
var errTrieShape = errors.New("trie length not a positive multiple of 16")

// NewTrie validates the shape invariants once and returns a trie view
// over words. depth must be in 1..8 and words must be a non-empty
// sequence of 16-word nodes.
func NewTrie(words []uint16, depth int) (Trie, error) {
	if depth < 1 || depth > 8 {
		return Trie{}, fmt.Errorf("%w: %d", errTrieDepth, depth)
	}
	if len(words) < nodeSize || len(words)%nodeSize != 0 {
		return Trie{}, fmt.Errorf("%w: %d words", errTrieShape, len(words))
	}
	return Trie{words: words, depth: depth}, nil
}

// Depth returns the fixed nybble depth of this trie.
func (t Trie) Depth() int { return t.depth }

// Len returns the length of the backing array in words.
func (t Trie) Len() int { return len(t.words) }

// Lookup queries the trie for key and returns the payload word, or
// ok=false if no record is mapped to the key. Key nybbles beyond the
// trie depth are ignored.
//
// A node index that points outside the backing array means the embedded
// table is corrupt; Lookup panics rather than masking it.
func (t Trie) Lookup(key uint32) (payload uint16, ok bool) {
	node := 0
	for i := 0; i <= t.depth-2; i++ {
		nyb := int(key >> (uint(t.depth-i-1) * 4) & 0xF)
		if node+nyb >= len(t.words) {
			panic(fmt.Sprintf("unikit/tables: trie bound error (node %d, key %#x)", node, key))
		}
		r := t.words[node+nyb]
		if r == Absent {
			return Absent, false
		}
		node = int(r) * nodeSize
	}
	nyb := int(key & 0xF)
	if node+nyb >= len(t.words) {
		panic(fmt.Sprintf("unikit/tables: trie bound error (node %d, key %#x)", node, key))
	}
	r := t.words[node+nyb]
	if r == Absent {
		return Absent, false
	}
	return r, true
}
