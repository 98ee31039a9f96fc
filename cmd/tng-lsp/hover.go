package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fablekit/tng/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}
	i := doc.at(doc.offset(params.Position))
	if i < 0 {
		return nil, nil
	}
	l := doc.instrs[i]
	r := doc.span(l.sp.Key.I, l.sp.End.I+1)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(doc, l),
		},
		Range: &r,
	}, nil
}

func buildHoverText(doc *document, l located) string {
	var parts []string
	k, v := l.in.Key, l.in.Value
	if doc.isMarker(k) {
		parts = append(parts, fmt.Sprintf("**Marker:** `%s`", k.Name))
	} else {
		parts = append(parts, fmt.Sprintf("**Key:** `%s` (%s)", k, k.Type))
	}
	if v.Type == ir.NoneType {
		parts = append(parts, "**Value:** none")
	} else {
		parts = append(parts, fmt.Sprintf("**Value:** `%s` (%s)", v.Literal(), v.Type))
	}
	switch {
	case l.ti >= 0:
		th := doc.doc.Sections[l.si].Things[l.ti]
		parts = append(parts, fmt.Sprintf("**Thing:** %d.%d %s", l.si, l.ti, th.Kind()))
	case l.si >= 0:
		parts = append(parts, fmt.Sprintf("**Section:** %d %s", l.si, doc.doc.Sections[l.si].Name()))
	}
	return strings.Join(parts, "\n\n")
}
