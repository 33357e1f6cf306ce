package selection

// bindings associates nodes with their bound datum.
type bindings struct {
	data map[Node]any
}

func newBindings() *bindings {
	return &bindings{data: make(map[Node]any)}
}

func (b *bindings) bind(node Node, datum any) {
	b.data[node] = datum
}

func (b *bindings) clear(node Node) {
	delete(b.data, node)
}

func (b *bindings) lookup(node Node) (any, bool) {
	d, ok := b.data[node]
	return d, ok
}
