package selection

// Node is a handle to a document element.
//
// Implementations must be comparable (typically pointer types): nodes are
// used as keys of the bindings table. QueryFirst must return an untyped nil
// when nothing matches.
type Node interface {
	// QueryFirst returns the first descendant matching selector, or nil.
	QueryFirst(selector string) Node

	// QueryAll returns all descendants matching selector in document order.
	QueryAll(selector string) []Node

	// Attribute returns the named attribute value.
	Attribute(name string) (any, bool)

	// SetAttribute sets the named attribute value.
	SetAttribute(name string, value any)
}

// Group is an ordered sequence of slots. A nil slot is empty.
type Group []Node

// Len returns the number of slots, including empty ones.
func (g Group) Len() int { return len(g) }

// Count returns the number of non-empty slots.
func (g Group) Count() int {
	n := 0
	for _, node := range g {
		if node != nil {
			n++
		}
	}
	return n
}

// Placeholder stands in for a datum that has no node yet.
type Placeholder struct {
	Datum any
}

// EnterGroup is an ordered sequence of enter slots. A nil slot is empty.
type EnterGroup []*Placeholder

// Len returns the number of slots, including empty ones.
func (g EnterGroup) Len() int { return len(g) }

// Count returns the number of placeholders.
func (g EnterGroup) Count() int {
	n := 0
	for _, p := range g {
		if p != nil {
			n++
		}
	}
	return n
}
