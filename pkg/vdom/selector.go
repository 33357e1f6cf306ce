package vdom

import (
	"fmt"
	"slices"
	"strings"
)

// SelectorError reports a selector that could not be parsed.
type SelectorError struct {
	Selector string
	Offset   int
	Reason   string
}

// Error implements the error interface.
func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q at offset %d: %s", e.Selector, e.Offset, e.Reason)
}

// Selector is a parsed selector list.
type Selector struct {
	source string
	list   []complexSelector
}

// String returns the selector source.
func (s *Selector) String() string {
	return s.source
}

type combinator uint8

const (
	combDescendant combinator = iota // A B
	combChild                        // A > B
)

// complexSelector is a chain of compounds; combs[i] joins parts[i] and
// parts[i+1].
type complexSelector struct {
	parts []compound
	combs []combinator
}

type compound struct {
	tag     string // "" or "*" matches any element
	id      string
	classes []string
	attrs   []attrMatcher
}

type attrMatcher struct {
	name  string
	op    string // "", "=", "~=", "^=", "$=", "*=", "|="
	value string
}

// ParseSelector parses a selector list.
func ParseSelector(source string) (*Selector, error) {
	p := &selectorParser{src: source}
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	return &Selector{source: source, list: list}, nil
}

// MustParseSelector is like ParseSelector but panics on error.
func MustParseSelector(source string) *Selector {
	s, err := ParseSelector(source)
	if err != nil {
		panic(err)
	}
	return s
}

type selectorParser struct {
	src string
	pos int
}

func (p *selectorParser) fail(reason string) error {
	return &SelectorError{Selector: p.src, Offset: p.pos, Reason: reason}
}

func (p *selectorParser) eof() bool { return p.pos >= len(p.src) }

func (p *selectorParser) peek() byte { return p.src[p.pos] }

func (p *selectorParser) skipSpace() bool {
	start := p.pos
	for !p.eof() && isSpace(p.peek()) {
		p.pos++
	}
	return p.pos > start
}

func (p *selectorParser) parseList() ([]complexSelector, error) {
	var list []complexSelector
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.fail("expected selector")
		}
		cs, err := p.parseComplex()
		if err != nil {
			return nil, err
		}
		list = append(list, cs)
		p.skipSpace()
		if p.eof() {
			return list, nil
		}
		if p.peek() != ',' {
			return nil, p.fail(fmt.Sprintf("unexpected %q", p.peek()))
		}
		p.pos++
	}
}

func (p *selectorParser) parseComplex() (complexSelector, error) {
	var cs complexSelector
	first, err := p.parseCompound()
	if err != nil {
		return cs, err
	}
	cs.parts = append(cs.parts, first)

	for {
		hadSpace := p.skipSpace()
		if p.eof() || p.peek() == ',' {
			return cs, nil
		}
		comb := combDescendant
		if p.peek() == '>' {
			comb = combChild
			p.pos++
			p.skipSpace()
		} else if !hadSpace {
			return cs, p.fail(fmt.Sprintf("unexpected %q", p.peek()))
		}
		next, err := p.parseCompound()
		if err != nil {
			return cs, err
		}
		cs.combs = append(cs.combs, comb)
		cs.parts = append(cs.parts, next)
	}
}

func (p *selectorParser) parseCompound() (compound, error) {
	var c compound
	start := p.pos

	if !p.eof() {
		switch ch := p.peek(); {
		case ch == '*':
			c.tag = "*"
			p.pos++
		case isIdentChar(ch):
			c.tag = strings.ToLower(p.ident())
		}
	}

	for !p.eof() {
		switch p.peek() {
		case '#':
			p.pos++
			id := p.ident()
			if id == "" {
				return c, p.fail("expected id after '#'")
			}
			c.id = id
		case '.':
			p.pos++
			class := p.ident()
			if class == "" {
				return c, p.fail("expected class after '.'")
			}
			c.classes = append(c.classes, class)
		case '[':
			p.pos++
			am, err := p.parseAttr()
			if err != nil {
				return c, err
			}
			c.attrs = append(c.attrs, am)
		default:
			if p.pos == start {
				return c, p.fail(fmt.Sprintf("unexpected %q", p.peek()))
			}
			return c, nil
		}
	}
	if p.pos == start {
		return c, p.fail("expected selector")
	}
	return c, nil
}

func (p *selectorParser) parseAttr() (attrMatcher, error) {
	var am attrMatcher
	p.skipSpace()
	am.name = p.ident()
	if am.name == "" {
		return am, p.fail("expected attribute name")
	}
	p.skipSpace()
	if p.eof() {
		return am, p.fail("unterminated attribute selector")
	}
	if p.peek() == ']' {
		p.pos++
		return am, nil
	}

	switch {
	case p.peek() == '=':
		am.op = "="
		p.pos++
	case p.pos+1 < len(p.src) && p.src[p.pos+1] == '=' && strings.IndexByte("~^$*|", p.peek()) >= 0:
		am.op = p.src[p.pos : p.pos+2]
		p.pos += 2
	default:
		return am, p.fail(fmt.Sprintf("unexpected %q in attribute selector", p.peek()))
	}

	p.skipSpace()
	if p.eof() {
		return am, p.fail("expected attribute value")
	}
	if q := p.peek(); q == '"' || q == '\'' {
		end := strings.IndexByte(p.src[p.pos+1:], q)
		if end < 0 {
			return am, p.fail("unterminated string")
		}
		am.value = p.src[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
	} else {
		am.value = p.ident()
		if am.value == "" {
			return am, p.fail("expected attribute value")
		}
	}

	p.skipSpace()
	if p.eof() || p.peek() != ']' {
		return am, p.fail("expected ']'")
	}
	p.pos++
	return am, nil
}

func (p *selectorParser) ident() string {
	start := p.pos
	for !p.eof() && isIdentChar(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c >= 0x80
}

// Match reports whether node matches the selector. ancestors lists the
// element ancestors of node, outermost first.
func (s *Selector) Match(node *VNode, ancestors []*VNode) bool {
	if node == nil || node.Kind != KindElement {
		return false
	}
	for _, cs := range s.list {
		if cs.match(len(cs.parts)-1, node, ancestors) {
			return true
		}
	}
	return false
}

func (cs complexSelector) match(idx int, node *VNode, ancestors []*VNode) bool {
	if !cs.parts[idx].match(node) {
		return false
	}
	if idx == 0 {
		return true
	}
	switch cs.combs[idx-1] {
	case combChild:
		n := len(ancestors)
		return n > 0 && cs.match(idx-1, ancestors[n-1], ancestors[:n-1])
	default:
		for j := len(ancestors) - 1; j >= 0; j-- {
			if cs.match(idx-1, ancestors[j], ancestors[:j]) {
				return true
			}
		}
		return false
	}
}

func (c compound) match(n *VNode) bool {
	if n.Kind != KindElement {
		return false
	}
	if c.tag != "" && c.tag != "*" && !strings.EqualFold(c.tag, n.Tag) {
		return false
	}
	if c.id != "" && n.ID() != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := n.Classes()
		for _, class := range c.classes {
			if !slices.Contains(have, class) {
				return false
			}
		}
	}
	for _, am := range c.attrs {
		if !am.match(n) {
			return false
		}
	}
	return true
}

func (am attrMatcher) match(n *VNode) bool {
	raw, ok := n.Attribute(am.name)
	if !ok || !present(raw) {
		return false
	}
	val := stringify(raw)
	switch am.op {
	case "":
		return true
	case "=":
		return val == am.value
	case "~=":
		return slices.Contains(strings.Fields(val), am.value)
	case "^=":
		return am.value != "" && strings.HasPrefix(val, am.value)
	case "$=":
		return am.value != "" && strings.HasSuffix(val, am.value)
	case "*=":
		return am.value != "" && strings.Contains(val, am.value)
	case "|=":
		return val == am.value || strings.HasPrefix(val, am.value+"-")
	default:
		return false
	}
}

// Find returns the first descendant of v matching sel, or nil.
func (v *VNode) Find(sel *Selector) *VNode {
	var found *VNode
	v.walkElements(func(n *VNode, ancestors []*VNode) bool {
		if sel.Match(n, ancestors) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every descendant of v matching sel in document order.
func (v *VNode) FindAll(sel *Selector) []*VNode {
	var found []*VNode
	v.walkElements(func(n *VNode, ancestors []*VNode) bool {
		if sel.Match(n, ancestors) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// walkElements visits the element descendants of v in document order.
// Fragments are transparent. fn returns false to stop the walk.
func (v *VNode) walkElements(fn func(n *VNode, ancestors []*VNode) bool) {
	if v == nil {
		return
	}
	var ancestors []*VNode
	if v.Kind == KindElement {
		ancestors = []*VNode{v}
	}
	walkChildren(v, ancestors, fn)
}

func walkChildren(v *VNode, ancestors []*VNode, fn func(*VNode, []*VNode) bool) bool {
	for _, c := range v.Children {
		if c == nil {
			continue
		}
		switch c.Kind {
		case KindFragment:
			if !walkChildren(c, ancestors, fn) {
				return false
			}
		case KindElement:
			if !fn(c, ancestors) {
				return false
			}
			next := append(ancestors[:len(ancestors):len(ancestors)], c)
			if !walkChildren(c, next, fn) {
				return false
			}
		}
	}
	return true
}
