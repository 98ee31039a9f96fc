package main

import (
	"context"
	"strings"

	"github.com/fablekit/tng/encode"
	"github.com/fablekit/tng/ir"

	"go.lsp.dev/protocol"
)

var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenString,
	protocol.SemanticTokenFunction,
	protocol.SemanticTokenEnumMember,
	protocol.SemanticTokenType,
	protocol.SemanticTokenOperator,
}

var tokenModifiers = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDefinition,
}

// Map encoder color attributes to LSP semantic token types
func mapColorToSemanticTokenType(vt ir.ValueType, attr encode.ColorAttr) protocol.SemanticTokenTypes {
	switch attr {
	case encode.KeyColor:
		return protocol.SemanticTokenProperty
	case encode.MarkerColor:
		return protocol.SemanticTokenKeyword
	case encode.IndexColor:
		return protocol.SemanticTokenNumber
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	}
	switch vt {
	case ir.NumberType, ir.BigNumberType, ir.FloatType:
		return protocol.SemanticTokenNumber
	case ir.BoolType, ir.NoneType:
		return protocol.SemanticTokenKeyword
	case ir.CallType:
		return protocol.SemanticTokenFunction
	case ir.NameType:
		return protocol.SemanticTokenEnumMember
	default:
		return protocol.SemanticTokenString
	}
}

func tokenTypeIndex(t protocol.SemanticTokenTypes) uint32 {
	for i, tt := range tokenTypes {
		if tt == t {
			return uint32(i)
		}
	}
	return 0
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: doc.collectSemanticTokens(0, len(doc.content)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	from := doc.offset(params.Range.Start)
	to := doc.offset(params.Range.End)
	return &protocol.SemanticTokens{
		Data: doc.collectSemanticTokens(from, to),
	}, nil
}

type tokenInfo struct {
	start, end int
	tokenType  protocol.SemanticTokenTypes
	modifiers  uint32
}

// collectSemanticTokens encodes the tokens of the instructions
// overlapping [from, to] in the relative form LSP expects.
func (d *document) collectSemanticTokens(from, to int) []uint32 {
	var tokenList []tokenInfo
	for _, l := range d.instrs {
		sp := l.sp
		if sp.End.I < from || sp.Key.I > to {
			continue
		}
		k, v := l.in.Key, l.in.Value
		attr := encode.KeyColor
		var mods uint32
		switch {
		case d.isMarker(k):
			attr = encode.MarkerColor
			if k.Name == d.markers.NewThing || k.Name == d.markers.SectionStart {
				mods = 1
			}
		case k.Type == ir.IndexKey:
			attr = encode.IndexColor
		}
		tokenList = append(tokenList, tokenInfo{
			start:     sp.Key.I,
			end:       sp.Key.I + sp.KeyLen(),
			tokenType: mapColorToSemanticTokenType(v.Type, attr),
			modifiers: mods,
		})
		if text := strings.TrimRight(d.content[sp.Value.I:sp.End.I], " \t"); text != "" {
			tt := mapColorToSemanticTokenType(v.Type, encode.ValueColor)
			if attr == encode.MarkerColor && v.Type == ir.NameType {
				tt = protocol.SemanticTokenType
			}
			tokenList = append(tokenList, tokenInfo{
				start:     sp.Value.I,
				end:       sp.Value.I + len(text),
				tokenType: tt,
			})
		}
		tokenList = append(tokenList, tokenInfo{
			start:     sp.End.I,
			end:       sp.End.I + 1,
			tokenType: mapColorToSemanticTokenType(v.Type, encode.SepColor),
		})
	}

	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		// tokens may not span lines
		end := ti.end
		if nl := strings.IndexByte(d.content[ti.start:end], '\n'); nl >= 0 {
			end = ti.start + nl
		}
		if end <= ti.start {
			continue
		}
		p := d.position(ti.start)
		deltaLine := p.Line - prevLine
		deltaChar := p.Character
		if deltaLine == 0 {
			deltaChar -= prevChar
		}
		tokens = append(tokens,
			deltaLine,
			deltaChar,
			uint32(utf16Len(d.content[ti.start:end])),
			tokenTypeIndex(ti.tokenType),
			ti.modifiers)
		prevLine, prevChar = p.Line, p.Character
	}
	return tokens
}
