// Package vdom provides the in-memory document tree that selections
// operate on.
//
// A document is a tree of VNodes: elements carrying Props (attributes),
// text, raw HTML and fragments, rooted at a KindDocument node. Trees are
// built either with the element factories:
//
//	doc := Document(
//	    Div(ID("chart"),
//	        Strong(Text("a1")),
//	        Strong(Text("a2")),
//	    ),
//	)
//
// or by parsing HTML with ParseHTML. The service and CLI always parse;
// the factories are for building documents in Go code and tests.
//
// # Queries
//
// *VNode implements selection.Node. QueryFirst and QueryAll match a CSS
// selector subset against descendants in document order:
//
//	tag  *  #id  .class  [attr]  [attr=value]  [attr~=value]
//	[attr^=value]  [attr$=value]  [attr*=value]
//	descendant (A B)  child (A > B)  lists (A, B)
//
// Combinators are evaluated against ancestors within the queried subtree.
// Fragments are transparent: their children are matched as if they were
// children of the fragment's parent.
package vdom
