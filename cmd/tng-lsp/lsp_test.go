package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fablekit/tng/parse"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const small = `Version 2;
XXXSectionStart S;
NewThing Object;
A 1;
EndThing ;
XXXSectionEnd ;
`

const uri = "file:///levels/a.tng"

func open(t *testing.T, content string) (*Server, *document) {
	t.Helper()
	s := NewServer(zap.NewNop())
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:     protocol.DocumentURI(uri),
			Text:    content,
			Version: 1,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(uri)
	if doc == nil {
		t.Fatal("document not stored")
	}
	return s, doc
}

func TestDiagnostics(t *testing.T) {
	_, doc := open(t, small)
	if diags := doc.diagnostics(); len(diags) != 0 {
		t.Errorf("unexpected diagnostics %v", diags)
	}
	_, doc = open(t, "Version 1;\nXXXSectionStart ;\nNewThing ;\nEndThing ;\n")
	diags := doc.diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	d := diags[0]
	if d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity %v", d.Severity)
	}
	if !strings.HasPrefix(d.Message, "structural mismatch") {
		t.Errorf("message %q", d.Message)
	}
	if d.Range.Start.Line != 4 {
		t.Errorf("diagnostic on line %d", d.Range.Start.Line)
	}
}

func TestKeepGood(t *testing.T) {
	s, _ := open(t, small)
	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{Text: small + "B"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(uri)
	if doc.doc != nil || doc.err == nil {
		t.Fatal("expected decoding to fail")
	}
	if doc.good == nil {
		t.Fatal("last good document dropped")
	}
	if len(doc.keys()) != 1 {
		t.Errorf("keys %v", doc.keys())
	}
}

// Readers of other documents are served while a document decodes.
func TestPutDecodesUnlocked(t *testing.T) {
	ds := newDocumentStore()
	ds.put("file:///other.tng", small, 1)
	ds.decode = func(uri, content string, version int32, m parse.Markers) *document {
		if ds.get("file:///other.tng") == nil {
			t.Error("other document missing")
		}
		return newDocument(uri, content, version, m)
	}
	done := make(chan *document, 1)
	go func() { done <- ds.put(uri, small, 1) }()
	select {
	case doc := <-done:
		if doc.err != nil {
			t.Fatal(doc.err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("put blocked readers while decoding")
	}
	if ds.get(uri) == nil {
		t.Error("document not stored")
	}
}

func TestPositionUTF16(t *testing.T) {
	content := "A 1;\nB \"é😀\";\n"
	doc := newDocument(uri, content, 1, parse.DefaultMarkers())
	off := strings.IndexByte(content, ';') + 1
	off = off + strings.IndexByte(content[off:], ';')
	p := doc.position(off)
	if diff := cmp.Diff(protocol.Position{Line: 1, Character: 7}, p); diff != "" {
		t.Error(diff)
	}
	if got := doc.offset(p); got != off {
		t.Errorf("offset %d, want %d", got, off)
	}
	if got := doc.offset(protocol.Position{Line: 0, Character: 99}); got != 4 {
		t.Errorf("clamped offset %d", got)
	}
}

func TestSemanticTokens(t *testing.T) {
	_, doc := open(t, small)
	want := []uint32{
		0, 0, 7, 1, 0,
		0, 8, 1, 2, 0,
		0, 1, 1, 7, 0,
		1, 0, 15, 1, 1,
		0, 16, 1, 6, 0,
		0, 1, 1, 7, 0,
		1, 0, 8, 1, 1,
		0, 9, 6, 6, 0,
		0, 6, 1, 7, 0,
		1, 0, 1, 0, 0,
		0, 2, 1, 2, 0,
		0, 1, 1, 7, 0,
		1, 0, 8, 1, 0,
		0, 9, 1, 7, 0,
		1, 0, 13, 1, 0,
		0, 14, 1, 7, 0,
	}
	if diff := cmp.Diff(want, doc.collectSemanticTokens(0, len(doc.content))); diff != "" {
		t.Error(diff)
	}
	line3 := doc.pos.Offset(3, 0)
	got := doc.collectSemanticTokens(line3, line3+3)
	if diff := cmp.Diff([]uint32{3, 0, 1, 0, 0, 0, 2, 1, 2, 0, 0, 1, 1, 7, 0}, got); diff != "" {
		t.Error(diff)
	}
}

func TestHover(t *testing.T) {
	s, _ := open(t, small)
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
			Position:     protocol.Position{Line: 3, Character: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h == nil {
		t.Fatal("no hover")
	}
	want := "**Key:** `A` (Name)\n\n**Value:** `1` (Number)\n\n**Thing:** 0.0 Object"
	if diff := cmp.Diff(want, h.Contents.Value); diff != "" {
		t.Error(diff)
	}
	if h.Range.Start.Line != 3 || h.Range.End.Character != 4 {
		t.Errorf("range %v", h.Range)
	}
}

func TestSymbols(t *testing.T) {
	_, doc := open(t, small)
	syms := doc.symbols()
	if len(syms) != 1 {
		t.Fatalf("expected 1 section, got %d", len(syms))
	}
	sec := syms[0]
	if sec.Name != "section 0" || sec.Detail != "S" {
		t.Errorf("section %q %q", sec.Name, sec.Detail)
	}
	if diff := cmp.Diff(protocol.Position{Line: 5, Character: 15}, sec.Range.End); diff != "" {
		t.Error(diff)
	}
	if len(sec.Children) != 1 {
		t.Fatalf("expected 1 thing, got %d", len(sec.Children))
	}
	th := sec.Children[0]
	if th.Name != "Object" || th.Detail != "0.0" {
		t.Errorf("thing %q %q", th.Name, th.Detail)
	}
	wantRange := protocol.Range{
		Start: protocol.Position{Line: 2, Character: 0},
		End:   protocol.Position{Line: 4, Character: 10},
	}
	if diff := cmp.Diff(wantRange, th.Range); diff != "" {
		t.Error(diff)
	}
	if len(th.Children) != 1 || th.Children[0].Name != "A" {
		t.Errorf("body %v", th.Children)
	}

	want := []protocol.FoldingRange{
		{StartLine: 2, EndLine: 4},
		{StartLine: 1, EndLine: 5},
	}
	if diff := cmp.Diff(want, doc.foldingRanges()); diff != "" {
		t.Error(diff)
	}
}

func TestComplete(t *testing.T) {
	_, doc := open(t, small)
	labels := func(items []protocol.CompletionItem) []string {
		res := []string{}
		for _, it := range items {
			res = append(res, it.Label)
		}
		return res
	}
	ets := []struct {
		line string
		want []string
	}{
		{"", []string{"Version", "XXXSectionStart", "XXXSectionEnd", "NewThing", "EndThing", "A"}},
		{"XXX", []string{"XXXSectionStart", "XXXSectionEnd"}},
		{"NewThing O", []string{"Object"}},
		{"A 1", []string{}},
	}
	for _, et := range ets {
		if diff := cmp.Diff(et.want, labels(doc.complete(et.line))); diff != "" {
			t.Errorf("%q: %s", et.line, diff)
		}
	}
}

func TestURIPath(t *testing.T) {
	if got := uriPath("file:///tmp/a%20b.tng"); got != "/tmp/a b.tng" {
		t.Errorf("got %q", got)
	}
	if got := uriPath("untitled:1"); got != "untitled:1" {
		t.Errorf("got %q", got)
	}
}
