package tablegen

import (
	"fmt"

	"github.com/derekparker/trie"

	"github.com/canidlogic/unikit/tables"
)

// trieDepth is the nybble depth of all compiled tries: one full 16-bit
// plane offset per key.
const trieDepth = 4

const hexDigits = "0123456789abcdef"

// nybbleKey spells the low trieDepth nybbles of v as a key string, most
// significant nybble first.
func nybbleKey(v uint32) string {
	var b [trieDepth]byte
	for i := range b {
		b[i] = hexDigits[v>>(uint(trieDepth-1-i)*4)&0xF]
	}
	return string(b[:])
}

// trieCompiler flattens a nybble-keyed prefix trie into the fixed-fanout
// table sequence queried by tables.Trie. Mirrors the build-then-freeze
// split: the derekparker trie is the mutable build structure, the word
// array is the frozen result.
type trieCompiler struct {
	src   *trie.Trie
	depth int
	words []uint16
}

// compileTrie compiles src into the flat node array. An empty source
// yields a single all-absent root node, which is still a valid table.
// All leaf meta values must be uint16 payloads.
func compileTrie(src *trie.Trie, depth int) ([]uint16, error) {
	c := &trieCompiler{src: src, depth: depth}
	if _, err := c.node("", 0); err != nil {
		return nil, err
	}
	return c.words, nil
}

// node allocates one 16-slot table for the given key prefix and fills
// it: child table indices at non-final levels, payloads at the final
// level. Returns the table index.
func (c *trieCompiler) node(prefix string, level int) (uint16, error) {
	idx := len(c.words) / 16
	if idx >= tables.Absent {
		return 0, fmt.Errorf("tablegen: trie node count overflow at prefix %q", prefix)
	}
	base := len(c.words)
	for i := 0; i < 16; i++ {
		c.words = append(c.words, tables.Absent)
	}

	for n := 0; n < 16; n++ {
		p := prefix + string(hexDigits[n])
		if level == c.depth-1 {
			node, ok := c.src.Find(p)
			if !ok {
				continue
			}
			payload, ok := node.Meta().(uint16)
			if !ok {
				return 0, fmt.Errorf("tablegen: non-uint16 payload at key %q", p)
			}
			if payload == tables.Absent {
				return 0, fmt.Errorf("tablegen: payload %#x collides with absent sentinel at key %q", payload, p)
			}
			c.words[base+n] = payload
			continue
		}
		if !c.src.HasKeysWithPrefix(p) {
			continue
		}
		child, err := c.node(p, level+1)
		if err != nil {
			return 0, err
		}
		c.words[base+n] = child
	}
	return uint16(idx), nil
}
