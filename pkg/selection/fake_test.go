package selection

// fakeNode is a minimal element tree whose selectors match tag names only.
type fakeNode struct {
	tag      string
	attrs    map[string]any
	children []*fakeNode
}

func el(tag string, children ...*fakeNode) *fakeNode {
	return &fakeNode{tag: tag, children: children}
}

func (n *fakeNode) walk(fn func(*fakeNode) bool) bool {
	for _, c := range n.children {
		if !fn(c) || !c.walk(fn) {
			return false
		}
	}
	return true
}

func (n *fakeNode) QueryFirst(selector string) Node {
	var found *fakeNode
	n.walk(func(c *fakeNode) bool {
		if c.tag == selector {
			found = c
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return found
}

func (n *fakeNode) QueryAll(selector string) []Node {
	var out []Node
	n.walk(func(c *fakeNode) bool {
		if c.tag == selector {
			out = append(out, c)
		}
		return true
	})
	return out
}

func (n *fakeNode) Attribute(name string) (any, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *fakeNode) SetAttribute(name string, value any) {
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[name] = value
}

// strongs builds <document><div><strong>... count times.
func strongs(count int) *fakeNode {
	div := el("div")
	for i := 0; i < count; i++ {
		div.children = append(div.children, el("strong"))
	}
	return el("#document", div)
}
