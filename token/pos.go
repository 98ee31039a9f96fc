package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc indexes the line breaks of a script so that byte offsets
// can be reported as line and column.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the zero based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

// Offset is the inverse of LineCol. Out of range lines and columns are
// clamped to the document.
func (p *PosDoc) Offset(line, col int) int {
	start := 0
	switch {
	case line <= 0:
	case line > len(p.n):
		return len(p.d)
	default:
		start = p.n[line-1] + 1
	}
	end := len(p.d)
	if line < len(p.n) {
		end = p.n[line]
	}
	return min(start+max(col, 0), end)
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

func (p *PosDoc) Len() int { return len(p.d) }

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}

// Span locates one instruction: the start of its key, the start of its
// value and the terminating ';'. For a None value Value == End.
type Span struct {
	Key   *Pos
	Value *Pos
	End   *Pos
}

func (s *Span) KeyLen() int {
	n := s.Value.I - s.Key.I
	if n > 0 && s.Key.D.d[s.Value.I-1] == ' ' {
		n--
	}
	return n
}

func (s *Span) ValueLen() int {
	return s.End.I - s.Value.I
}

// Contains reports whether off lies within the instruction, terminator
// included.
func (s *Span) Contains(off int) bool {
	return off >= s.Key.I && off <= s.End.I
}
