// Package document defines the generic parsed-document shape consumed by the
// translation tree. A node is either a string, an ordered table of
// (key, node) entries, or something else entirely; anything else is carried
// with its raw value so rejection errors can name what was found. The type is
// a closed union: decoders (see pkg/loader) convert their format-specific
// trees into these values, and nothing downstream inspects dynamic types.
package document

// Value is the closed union of document node kinds. The concrete types are
// String, *Table, and Other.
type Value interface {
	value()
}

// String is a scalar text node.
type String struct {
	Text string
}

func (String) value() {}

// Entry is one key/value pair of a Table, in source order.
type Entry struct {
	Key   string
	Value Value
}

// Table is an ordered mapping of keys to nodes. Order is the order the
// entries appeared in the source document; it decides how a table's shape is
// classified and which duplicate key wins.
type Table struct {
	entries []Entry
}

func (*Table) value() {}

// NewTable builds a table from entries, preserving their order.
func NewTable(entries ...Entry) *Table {
	return &Table{entries: entries}
}

// Append adds an entry at the end of the table.
func (t *Table) Append(key string, value Value) {
	t.entries = append(t.entries, Entry{Key: key, Value: value})
}

// Entries returns the table entries in source order. The returned slice must
// not be mutated.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Get returns the last value registered under key, if any.
func (t *Table) Get(key string) (Value, bool) {
	if t == nil {
		return nil, false
	}
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Key == key {
			return t.entries[i].Value, true
		}
	}
	return nil, false
}

// Other is any node that is neither a string nor a table. Raw keeps the
// decoded value for diagnostics.
type Other struct {
	Raw any
}

func (Other) value() {}
