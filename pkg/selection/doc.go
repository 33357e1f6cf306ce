// Package selection binds ordered data to groups of document nodes.
//
// A Selection is an ordered sequence of Groups. Each Group is an ordered
// sequence of slots; a slot holds a Node or is empty (nil). Slot positions
// are significant: the data join aligns data with nodes by index.
//
// # Querying
//
// Select and SelectAll start at a document node:
//
//	bars := selection.Select(doc, "#chart").SelectAll("rect")
//
// Select keeps the shape of the receiver; SelectAll produces one group per
// non-empty input slot.
//
// # Data Join
//
// Data binds values to the current nodes and partitions the result:
//
//	bars.Data([]any{4, 8, 15})
//	bars.Attr("height", func(d any, i int) any { return d })
//	for _, g := range bars.Enter() {
//	    // g[i] is a *Placeholder for values that have no node yet
//	}
//	bars.Exit().Attr("data-state", "stale")
//
// Bindings live in a side-table keyed by node identity, never on the
// nodes themselves. Selections derived from one another share the table.
//
// # Absence
//
// Nothing in this package returns an error. Failed queries produce empty
// slots or groups and every operation propagates that emptiness.
package selection
