package main

import (
	"context"
	"fmt"

	"github.com/fablekit/tng/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}
	syms := doc.symbols()
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

func (d *document) symbols() []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	for si, sec := range d.doc.Sections {
		sSym := d.symbol(sec.Opener, fmt.Sprintf("section %d", si), sec.Name(), protocol.SymbolKindNamespace)
		n := 1
		for ti, th := range sec.Things {
			tSym := d.symbol(th.Opener, th.Kind(), fmt.Sprintf("%d.%d", si, ti), protocol.SymbolKindObject)
			for _, in := range th.Body {
				tSym.Children = append(tSym.Children,
					d.symbol(in, in.Key.String(), in.Value.Literal(), protocol.SymbolKindField))
			}
			tSym.Range.End = d.through(th.Opener, 1+len(th.Body))
			sSym.Children = append(sSym.Children, tSym)
			n += 2 + len(th.Body)
		}
		sSym.Range.End = d.through(sec.Opener, n)
		res = append(res, sSym)
	}
	return res
}

func (d *document) symbol(in *ir.Instr, name, detail string, kind protocol.SymbolKind) protocol.DocumentSymbol {
	sp := d.instrs[d.byInstr[in]].sp
	if name == "" {
		name = in.Key.String()
	}
	return protocol.DocumentSymbol{
		Name:           name,
		Detail:         detail,
		Kind:           kind,
		Range:          d.span(sp.Key.I, sp.End.I+1),
		SelectionRange: d.span(sp.Key.I, sp.Key.I+sp.KeyLen()),
	}
}

func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}
	return doc.foldingRanges(), nil
}

func (d *document) foldingRanges() []protocol.FoldingRange {
	var res []protocol.FoldingRange
	add := func(in *ir.Instr, n int) {
		start := d.instrs[d.byInstr[in]].sp.Key.Line()
		end := d.through(in, n).Line
		if uint32(start) < end {
			res = append(res, protocol.FoldingRange{StartLine: uint32(start), EndLine: end})
		}
	}
	for _, sec := range d.doc.Sections {
		n := 1
		for _, th := range sec.Things {
			add(th.Opener, 1+len(th.Body))
			n += 2 + len(th.Body)
		}
		add(sec.Opener, n)
	}
	return res
}
