package vdom

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	return &VNode{
		Kind:     KindFragment,
		Children: collectChildren(children),
	}
}

// Document creates a document root holding children.
func Document(children ...any) *VNode {
	return &VNode{
		Kind:     KindDocument,
		Children: collectChildren(children),
	}
}

func collectChildren(children []any) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				out = append(out, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					out = append(out, c)
				}
			}
		case string:
			out = append(out, Text(v))
		}
	}
	return out
}
