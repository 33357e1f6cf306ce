package vdom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTML parses an HTML document into a KindDocument tree.
//
// The HTML5 parsing algorithm is applied, so the result always contains
// html, head and body elements. Comments and doctypes are dropped.
// Attribute values are stored as strings.
func ParseHTML(r io.Reader) (*VNode, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return convert(root), nil
}

// ParseHTMLString is ParseHTML over a string.
func ParseHTMLString(s string) (*VNode, error) {
	return ParseHTML(strings.NewReader(s))
}

func convert(n *html.Node) *VNode {
	switch n.Type {
	case html.DocumentNode:
		doc := &VNode{Kind: KindDocument}
		doc.Children = convertChildren(n)
		return doc
	case html.ElementNode:
		el := &VNode{
			Kind:  KindElement,
			Tag:   n.Data,
			Props: make(Props, len(n.Attr)),
		}
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			el.Props[key] = a.Val
		}
		el.Children = convertChildren(n)
		return el
	case html.TextNode:
		return Text(n.Data)
	default:
		return nil
	}
}

func convertChildren(n *html.Node) []*VNode {
	children := make([]*VNode, 0)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v := convert(c); v != nil {
			children = append(children, v)
		}
	}
	return children
}
