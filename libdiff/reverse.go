package libdiff

// Reverse returns the changes taking the target of changes back to its
// source.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r.Op = Replace
			r.Text = DiffText(r.From, r.To)
		}
		res[i] = r
	}
	return res
}
