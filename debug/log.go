package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fablekit/tng/ir"
)

// JSON marks an argument to Logf for indented JSON rendering.
type JSON struct{ V any }

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	fmt.Fprintf(out, msg, render(args)...)
}

func render(args []any) []any {
	res := make([]any, len(args))
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case JSON:
			d, err := json.MarshalIndent(x.V, "   |", "  ")
			if err != nil {
				res[i] = fmt.Sprintf("%v", x.V)
				continue
			}
			res[i] = string(d)
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				res[i] = fmt.Sprintf("%v", a)
				continue
			}
			res[i] = string(d)
		case *ir.Instr:
			res[i] = x.String()
		case *ir.Key:
			res[i] = x.String()
		case *ir.Value:
			res[i] = x.Literal()
		case *ir.Thing:
			res[i] = fmt.Sprintf("Thing(%s, %d instrs)", x.Kind(), len(x.Body))
		case *ir.Section:
			res[i] = fmt.Sprintf("Section(%s, %d things)", x.Name(), len(x.Things))
		default:
			res[i] = a
		}
	}
	return res
}
