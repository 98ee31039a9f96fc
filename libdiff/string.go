package libdiff

import (
	"strings"

	"github.com/fablekit/tng/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText renders a character diff of two String or Name values of the
// same type, with deletions as [-x-] and insertions as {+y+}. It is empty
// for other values and when most of the text changed.
func DiffText(from, to *ir.Value) string {
	if from.Type != to.Type {
		return ""
	}
	switch from.Type {
	case ir.StringType, ir.NameType:
	default:
		return ""
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from.String, to.String, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	buf := &strings.Builder{}
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffInsert:
			diffSize += len(diff.Text)
			buf.WriteString(insOpen + diff.Text + insClose)
		case diffpatch.DiffDelete:
			diffSize += len(diff.Text)
			buf.WriteString(delOpen + diff.Text + delClose)
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		}
	}
	if diffSize > max(len(from.String), len(to.String)) {
		return ""
	}
	return buf.String()
}
