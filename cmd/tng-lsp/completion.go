package main

import (
	"context"
	"sort"
	"strings"

	"github.com/fablekit/tng/ir"

	"go.lsp.dev/protocol"
)

// Completion offers markers and the keys already used in the document at
// the start of a line, and known thing kinds after the new thing marker.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := doc.offset(params.Position)
	line := doc.content[doc.pos.Offset(int(params.Position.Line), 0):off]
	return &protocol.CompletionList{
		Items: doc.complete(line),
	}, nil
}

func (d *document) complete(line string) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	if key, rest, ok := strings.Cut(line, " "); ok {
		if key != d.markers.NewThing || strings.Contains(rest, " ") {
			return items
		}
		for _, kind := range d.kinds() {
			if strings.HasPrefix(kind, rest) {
				items = append(items, protocol.CompletionItem{
					Label: kind,
					Kind:  protocol.CompletionItemKindClass,
				})
			}
		}
		return items
	}
	m := d.markers
	for _, name := range []string{m.Version, m.SectionStart, m.SectionEnd, m.NewThing, m.EndThing} {
		if strings.HasPrefix(name, line) {
			items = append(items, protocol.CompletionItem{
				Label:  name,
				Kind:   protocol.CompletionItemKindKeyword,
				Detail: "marker",
			})
		}
	}
	keys := d.keys()
	for _, k := range keys {
		if strings.HasPrefix(k.label, line) {
			items = append(items, protocol.CompletionItem{
				Label:  k.label,
				Kind:   protocol.CompletionItemKindField,
				Detail: strings.Join(k.kinds, ", "),
			})
		}
	}
	return items
}

func (d *document) kinds() []string {
	if d.good == nil {
		return nil
	}
	seen := map[string]bool{}
	var res []string
	for _, th := range d.good.Things() {
		if k := th.Kind(); k != "" && !seen[k] {
			seen[k] = true
			res = append(res, k)
		}
	}
	sort.Strings(res)
	return res
}

type keyItem struct {
	label string
	kinds []string
}

// keys lists the body keys of the last decoded document with the kinds
// of the things using them.
func (d *document) keys() []keyItem {
	if d.good == nil {
		return nil
	}
	byKey := map[string]map[string]bool{}
	for _, th := range d.good.Things() {
		for _, in := range th.Body {
			if in.Key.Type == ir.IndexKey {
				continue
			}
			k := in.Key.String()
			if byKey[k] == nil {
				byKey[k] = map[string]bool{}
			}
			byKey[k][th.Kind()] = true
		}
	}
	res := make([]keyItem, 0, len(byKey))
	for k, ks := range byKey {
		item := keyItem{label: k}
		for kind := range ks {
			item.kinds = append(item.kinds, kind)
		}
		sort.Strings(item.kinds)
		res = append(res, item)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].label < res[j].label
	})
	return res
}
