package selection

// Selection is an ordered sequence of node groups with data-binding state.
//
// A Selection is not safe for concurrent use.
type Selection struct {
	groups   []Group
	bindings *bindings
	config   *config

	// Partition computed by the last Data call.
	joined bool
	enter  []EnterGroup
	exit   []Group
}

// Select queries doc for the first node matching selector.
// The result has one group holding one slot, empty when nothing matches.
func Select(doc Node, selector string, opts ...Option) *Selection {
	return root(doc, opts).Select(selector)
}

// SelectAll queries doc for every node matching selector.
// The result has one group holding the matches in document order.
func SelectAll(doc Node, selector string, opts ...Option) *Selection {
	return root(doc, opts).SelectAll(selector)
}

// root wraps the document node in a single-group, single-slot selection.
func root(doc Node, opts []Option) *Selection {
	return &Selection{
		groups:   []Group{{doc}},
		bindings: newBindings(),
		config:   newConfig(opts),
	}
}

// derive returns a selection over groups sharing s's bindings and config.
func (s *Selection) derive(groups []Group) *Selection {
	return &Selection{
		groups:   groups,
		bindings: s.bindings,
		config:   s.config,
	}
}

// Select returns, for every slot, the first descendant matching selector.
// Group count and group lengths are preserved; empty input slots and
// slots without a match are empty in the result.
func (s *Selection) Select(selector string) *Selection {
	groups := make([]Group, len(s.groups))
	for gi, group := range s.groups {
		out := make(Group, len(group))
		for i, node := range group {
			if node == nil {
				continue
			}
			out[i] = node.QueryFirst(selector)
		}
		groups[gi] = out
	}
	return s.derive(groups)
}

// SelectAll returns one group per non-empty slot holding all of that
// node's descendants matching selector. Empty slots contribute no group.
func (s *Selection) SelectAll(selector string) *Selection {
	var groups []Group
	for _, group := range s.groups {
		for _, node := range group {
			if node == nil {
				continue
			}
			groups = append(groups, Group(node.QueryAll(selector)))
		}
	}
	return s.derive(groups)
}

// Groups returns a copy of the selection's groups.
func (s *Selection) Groups() []Group {
	return copyGroups(s.groups)
}

// Len returns the number of groups.
func (s *Selection) Len() int {
	return len(s.groups)
}

// Empty reports whether the selection holds no nodes.
func (s *Selection) Empty() bool {
	for _, group := range s.groups {
		if group.Count() > 0 {
			return false
		}
	}
	return true
}

// Nodes returns the non-empty slots of every group in order.
func (s *Selection) Nodes() []Node {
	var nodes []Node
	for _, group := range s.groups {
		for _, node := range group {
			if node != nil {
				nodes = append(nodes, node)
			}
		}
	}
	return nodes
}

// Datum returns the datum bound to node, if any.
func (s *Selection) Datum(node Node) (any, bool) {
	if node == nil {
		return nil, false
	}
	return s.bindings.lookup(node)
}

// Enter returns the enter groups computed by the last Data call, or nil
// if Data has not been called.
func (s *Selection) Enter() []EnterGroup {
	if !s.joined {
		return nil
	}
	out := make([]EnterGroup, len(s.enter))
	for i, g := range s.enter {
		out[i] = append(EnterGroup(nil), g...)
	}
	return out
}

// Exit returns a selection over the exit groups computed by the last Data
// call, or nil if Data has not been called. The exit selection shares the
// bindings table with s.
func (s *Selection) Exit() *Selection {
	if !s.joined {
		return nil
	}
	return s.derive(copyGroups(s.exit))
}

func copyGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = append(Group(nil), g...)
	}
	return out
}
