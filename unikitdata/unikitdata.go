// Package unikitdata supplies the stock unikit data tables.
//
// It is the library's default DataSource, standing in for the generated
// data module of the original distribution. The tables are compiled on
// first use from the Unicode data in the Go ecosystem (see
// internal/tablegen) and cached for the process lifetime.
package unikitdata

import (
	"sync"

	"github.com/canidlogic/unikit"
	"github.com/canidlogic/unikit/internal/tablegen"
)

type source struct {
	tabs map[unikit.TableKey]string
}

func (s *source) Fetch(key unikit.TableKey) (string, bool) {
	data, ok := s.tabs[key]
	return data, ok
}

var (
	once      sync.Once
	cached    unikit.DataSource
	cachedErr error
)

// Source returns the stock DataSource, building the tables on the first
// call. The returned value is shared and immutable; an error means the
// table build itself failed and will fail again.
func Source() (unikit.DataSource, error) {
	once.Do(func() {
		t, err := tablegen.Build()
		if err != nil {
			cachedErr = err
			return
		}
		cached = &source{tabs: map[unikit.TableKey]string{
			unikit.KeyCaseLower: t.CaseLower,
			unikit.KeyCaseUpper: t.CaseUpper,
			unikit.KeyCaseData:  t.CaseData,

			unikit.KeyGcatCore:    t.GcatCore,
			unikit.KeyGcatGenLow:  t.GcatGenLow,
			unikit.KeyGcatGenHigh: t.GcatGenHigh,
			unikit.KeyGcatBitmap:  t.GcatBitmap,
			unikit.KeyGcatAstral:  t.GcatAstral,
		}}
	})
	return cached, cachedErr
}
