/*
Package unikit answers two Unicode character-property queries, case
folding and General Category classification, from compact precompiled
binary tables.

The tables are supplied by a DataSource as opaque encoded strings and are
decoded exactly once by Init, which returns an immutable Context. All
queries are bounded, allocation-free lookups over the decoded arrays, so a
Context may be shared freely between goroutines.

Clients that just want the stock Unicode data use the unikitdata
subpackage as their DataSource:

	src, err := unikitdata.Source()
	if err != nil { ... }
	ctx, err := unikit.Init(src)
	if err != nil { ... }
	cat := ctx.Category('A')   // unikit.Lu
	f, err := ctx.Fold('M')    // [U+006D], non-trivial

Unikit performs no segmentation, normalization or collation; it is a
per-codepoint property oracle only.
*/
package unikit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unikit'
func tracer() tracing.Trace {
	return tracing.Select("unikit")
}
