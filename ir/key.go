package ir

import (
	"strconv"
	"strings"
)

// Key is the left hand side of an instruction.
//
// For NameKey, Name is set. For IndexKey, Index is set. For PropertyKey,
// Path holds the access chain in order, starting with the root name; it
// always has at least two elements.
type Key struct {
	Type  KeyType `json:"type"`
	Name  string  `json:"name,omitempty"`
	Index uint32  `json:"index,omitempty"`
	Path  []*Key  `json:"path,omitempty"`
}

func KeyName(name string) *Key {
	return &Key{Type: NameKey, Name: name}
}

func KeyIndex(i uint32) *Key {
	return &Key{Type: IndexKey, Index: i}
}

// KeyPath builds a property chain. A single part is returned as is, since
// a one element chain is just that element.
func KeyPath(parts ...*Key) *Key {
	if len(parts) == 1 {
		return parts[0]
	}
	return &Key{Type: PropertyKey, Path: parts}
}

// IsName reports whether k is the plain name n.
func (k *Key) IsName(n string) bool {
	return k != nil && k.Type == NameKey && k.Name == n
}

// Root returns the name a property chain hangs off, or the key itself.
func (k *Key) Root() *Key {
	if k.Type == PropertyKey && len(k.Path) > 0 {
		return k.Path[0]
	}
	return k
}

// Depth is the number of elements in a property chain, 1 otherwise.
func (k *Key) Depth() int {
	if k.Type == PropertyKey {
		return len(k.Path)
	}
	return 1
}

// String renders the key in script syntax, e.g. foo.bar[2] or a[b.c].
func (k *Key) String() string {
	buf := &strings.Builder{}
	k.write(buf)
	return buf.String()
}

func (k *Key) write(buf *strings.Builder) {
	switch k.Type {
	case NameKey:
		buf.WriteString(k.Name)
	case IndexKey:
		buf.WriteString(strconv.FormatUint(uint64(k.Index), 10))
	case PropertyKey:
		for i, part := range k.Path {
			if i == 0 {
				part.write(buf)
				continue
			}
			switch part.Type {
			case NameKey:
				buf.WriteByte('.')
				buf.WriteString(part.Name)
			default:
				buf.WriteByte('[')
				part.write(buf)
				buf.WriteByte(']')
			}
		}
	}
}

func (k *Key) Clone() *Key {
	if k == nil {
		return nil
	}
	res := *k
	if k.Path != nil {
		res.Path = make([]*Key, len(k.Path))
		for i, p := range k.Path {
			res.Path[i] = p.Clone()
		}
	}
	return &res
}
