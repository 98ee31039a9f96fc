package tng

import (
	"github.com/fablekit/tng/eval"
	"github.com/fablekit/tng/ir"
)

// Selected is a thing together with its address in the document.
type Selected struct {
	Section int
	Index   int
	Thing   *ir.Thing
}

// Select returns the things of doc matching q, in document order. A nil
// query matches everything.
func Select(doc *ir.Document, q *eval.Query) ([]Selected, error) {
	var res []Selected
	err := doc.Visit(func(si, ti int, t *ir.Thing) error {
		if q != nil {
			ok, err := q.Match(t, eval.Context{
				Section:     si,
				Index:       ti,
				SectionName: doc.Sections[si].Name(),
			})
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
		res = append(res, Selected{Section: si, Index: ti, Thing: t})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
