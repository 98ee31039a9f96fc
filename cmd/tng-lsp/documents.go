package main

import (
	"context"
	"net/url"
	"sort"
	"sync"
	"unicode/utf16"

	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/parse"
	"github.com/fablekit/tng/token"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

type documentStore struct {
	mu      sync.RWMutex
	markers parse.Markers
	docs    map[string]*document
	decode  func(uri, content string, version int32, markers parse.Markers) *document
}

// located is an instruction of the document text, markers included.
type located struct {
	in *ir.Instr
	sp *token.Span
	// si, ti locate the enclosing thing; ti is -1 outside a thing and si
	// is -1 for the version line and closers.
	si, ti int
}

type document struct {
	uri     string
	content string
	version int32
	markers parse.Markers
	pos     *token.PosDoc
	doc     *ir.Document
	err     error
	instrs  []located
	byInstr map[*ir.Instr]int

	// good is the last document that decoded, for completion while
	// the text is being edited.
	good *ir.Document
}

func newDocumentStore() *documentStore {
	return &documentStore{
		markers: parse.DefaultMarkers(),
		docs:    make(map[string]*document),
		decode:  newDocument,
	}
}

func (ds *documentStore) setMarkers(m parse.Markers) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.markers = m.WithDefaults()
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// put decodes content outside the lock; only the swap is serialized.
func (ds *documentStore) put(uri string, content string, version int32) *document {
	ds.mu.RLock()
	markers := ds.markers
	ds.mu.RUnlock()
	doc := ds.decode(uri, content, version, markers)

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if doc.good == nil {
		if old := ds.docs[uri]; old != nil {
			doc.good = old.good
		}
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func newDocument(uri, content string, version int32, markers parse.Markers) *document {
	d := &document{
		uri:     uri,
		content: content,
		version: version,
		markers: markers,
		pos:     token.NewPosDoc([]byte(content)),
	}
	positions := make(map[*ir.Instr]*token.Span)
	d.doc, d.err = parse.ParseString(content,
		parse.ParseFilename(uriPath(uri)),
		parse.ParseMarkers(markers),
		parse.ParsePositions(positions))
	if d.err != nil {
		d.doc = nil
		return d
	}
	d.good = d.doc
	where := map[*ir.Instr][2]int{}
	for si, sec := range d.doc.Sections {
		where[sec.Opener] = [2]int{si, -1}
		for ti, th := range sec.Things {
			where[th.Opener] = [2]int{si, ti}
			for _, in := range th.Body {
				where[in] = [2]int{si, ti}
			}
		}
	}
	for in, sp := range positions {
		w, ok := where[in]
		if !ok {
			w = [2]int{-1, -1}
		}
		d.instrs = append(d.instrs, located{in: in, sp: sp, si: w[0], ti: w[1]})
	}
	sort.Slice(d.instrs, func(i, j int) bool {
		return d.instrs[i].sp.Key.I < d.instrs[j].sp.Key.I
	})
	d.byInstr = make(map[*ir.Instr]int, len(d.instrs))
	for i := range d.instrs {
		d.byInstr[d.instrs[i].in] = i
	}
	return d
}

// at returns the index of the instruction whose text holds off, or -1.
func (d *document) at(off int) int {
	i := sort.Search(len(d.instrs), func(i int) bool {
		return d.instrs[i].sp.End.I >= off
	})
	if i < len(d.instrs) && d.instrs[i].sp.Contains(off) {
		return i
	}
	return -1
}

// through returns the end of the block opened by in, which holds n
// instructions ahead of its closer.
func (d *document) through(in *ir.Instr, n int) protocol.Position {
	i, ok := d.byInstr[in]
	if !ok {
		return protocol.Position{}
	}
	j := min(i+n, len(d.instrs)-1)
	return d.position(d.instrs[j].sp.End.I + 1)
}

func (d *document) isMarker(k *ir.Key) bool {
	if k.Type != ir.NameKey {
		return false
	}
	m := d.markers
	switch k.Name {
	case m.Version, m.SectionStart, m.SectionEnd, m.NewThing, m.EndThing:
		return true
	}
	return false
}

// position converts a byte offset to an LSP position, whose character
// counts UTF-16 code units.
func (d *document) position(off int) protocol.Position {
	off = min(max(off, 0), len(d.content))
	line, col := d.pos.LineCol(off)
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(d.content[off-col : off])),
	}
}

func (d *document) offset(p protocol.Position) int {
	start := d.pos.Offset(int(p.Line), 0)
	n := 0
	for i, r := range d.content[start:] {
		if n >= int(p.Character) || r == '\n' {
			return start + i
		}
		n += utf16.RuneLen(r)
	}
	return len(d.content)
}

func (d *document) span(from, to int) protocol.Range {
	return protocol.Range{Start: d.position(from), End: d.position(to)}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func uriPath(uri string) string {
	if uri == "" {
		return ""
	}
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return uri
	}
	return u.Path
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.client == nil {
		return
	}
	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: doc.diagnostics(),
	})
	if err != nil {
		s.logger.Error("publish diagnostics", zap.String("uri", doc.uri), zap.Error(err))
	}
}

func (d *document) diagnostics() []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if d.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Source:   "tng",
		Message:  d.err.Error(),
	}
	if pe, ok := parse.AsError(d.err); ok {
		diagnostic.Code = pe.Rule
		diagnostic.Message = pe.Err.Error()
		if pe.Msg != "" {
			diagnostic.Message += ": " + pe.Msg
		}
		end := pe.Pos.I
		if end < len(d.content) && d.content[end] != '\n' {
			end++
		}
		diagnostic.Range = d.span(pe.Pos.I, end)
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
