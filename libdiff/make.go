package libdiff

import (
	"github.com/fablekit/tng/ir"
)

// Change is one difference between two documents.
//
// Path is "version", a section index such as "2", a thing address such
// as "2.0", or one of those followed by "/" and a field: "name" for a
// section, "kind" for a thing, or an instruction key. Repeated keys in a
// body are told apart with "#n", counting from the second occurrence.
//
// From is unset for Insert and To is unset for Delete.
type Change struct {
	Path string    `json:"path"`
	Op   Op        `json:"op"`
	From *ir.Value `json:"from,omitempty"`
	To   *ir.Value `json:"to,omitempty"`
	Text string    `json:"text,omitempty"`
}

func (c *Change) String() string {
	switch c.Op {
	case Insert:
		return "+ " + c.Path + " " + c.To.Literal()
	case Delete:
		return "- " + c.Path + " " + c.From.Literal()
	}
	if c.Text != "" {
		return "~ " + c.Path + " " + c.Text
	}
	return "~ " + c.Path + " " + c.From.Literal() + " -> " + c.To.Literal()
}

// MakeChange builds the change taking from to to, or nil if they are
// equal. Either side may be nil.
func MakeChange(path string, from, to *ir.Value) *Change {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil:
		return &Change{Path: path, Op: Insert, To: to.Clone()}
	case to == nil:
		return &Change{Path: path, Op: Delete, From: from.Clone()}
	case ir.ValuesEqual(from, to):
		return nil
	}
	return &Change{
		Path: path,
		Op:   Replace,
		From: from.Clone(),
		To:   to.Clone(),
		Text: DiffText(from, to),
	}
}
