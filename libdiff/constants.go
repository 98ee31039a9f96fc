package libdiff

import "fmt"

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Op) UnmarshalText(d []byte) error {
	switch string(d) {
	case "insert":
		*o = Insert
	case "delete":
		*o = Delete
	case "replace":
		*o = Replace
	default:
		return fmt.Errorf("unknown op %q", d)
	}
	return nil
}

// markers of a rendered character diff
const (
	delOpen   = "[-"
	delClose  = "-]"
	insOpen   = "{+"
	insClose  = "+}"
	kindField = "kind"
	nameField = "name"
)
