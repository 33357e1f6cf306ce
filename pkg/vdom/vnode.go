package vdom

import (
	"strings"

	"github.com/vango-dev/vsel/pkg/selection"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <strong>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
	KindDocument              // Document root
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	case KindDocument:
		return "Document"
	default:
		return "Unknown"
	}
}

// VNode is a document tree node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw
}

// Props holds attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

var _ selection.Node = (*VNode)(nil)

// QueryFirst returns the first descendant matching selector, or nil.
// An invalid selector matches nothing. Combinators only see ancestors
// inside v, so "body strong" on a node below body matches nothing.
func (v *VNode) QueryFirst(selector string) selection.Node {
	if v == nil {
		return nil
	}
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil
	}
	if found := v.Find(sel); found != nil {
		return found
	}
	return nil
}

// QueryAll returns all descendants matching selector in document order.
// An invalid selector matches nothing. Combinators only see ancestors
// inside v, as in QueryFirst.
func (v *VNode) QueryAll(selector string) []selection.Node {
	if v == nil {
		return nil
	}
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil
	}
	matches := v.FindAll(sel)
	nodes := make([]selection.Node, len(matches))
	for i, m := range matches {
		nodes[i] = m
	}
	return nodes
}

// Attribute returns the named attribute.
func (v *VNode) Attribute(name string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	val, ok := v.Props[name]
	return val, ok
}

// SetAttribute sets the named attribute. A nil value removes it.
// Non-element nodes are left untouched.
func (v *VNode) SetAttribute(name string, value any) {
	if v == nil || v.Kind != KindElement {
		return
	}
	if value == nil {
		delete(v.Props, name)
		return
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[name] = value
}

// ID returns the id attribute as a string.
func (v *VNode) ID() string {
	return v.stringAttr("id")
}

// Classes returns the whitespace-separated class list.
func (v *VNode) Classes() []string {
	return strings.Fields(v.stringAttr("class"))
}

func (v *VNode) stringAttr(name string) string {
	val, ok := v.Attribute(name)
	if !ok {
		return ""
	}
	return stringify(val)
}

// TextContent returns the concatenated text of all descendant text nodes.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	var b strings.Builder
	for _, c := range v.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}
