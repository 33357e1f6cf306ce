package selection

// ValueFunc computes an attribute value from a slot's bound datum (nil
// when unbound) and its index within the group.
type ValueFunc func(datum any, index int) any

// Attr sets the named attribute on every node of the selection.
//
// If value is a ValueFunc (or a func(any, int) any) it is called per node;
// otherwise value is used as is. Empty slots are skipped.
func (s *Selection) Attr(name string, value any) *Selection {
	var fn ValueFunc
	switch v := value.(type) {
	case ValueFunc:
		fn = v
	case func(any, int) any:
		fn = v
	}

	for _, group := range s.groups {
		for i, node := range group {
			if node == nil {
				continue
			}
			if fn == nil {
				node.SetAttribute(name, value)
				continue
			}
			datum, _ := s.bindings.lookup(node)
			node.SetAttribute(name, fn(datum, i))
		}
	}
	return s
}
