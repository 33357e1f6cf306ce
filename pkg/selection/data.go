package selection

// Data binds values to the selection, group by group, by index.
//
// For a group of length m and n values, the update group and the enter
// group both have length max(m, n). Slots below n that hold a node keep
// it and bind values[i]; every other slot below n is empty in the update
// group and holds a Placeholder for values[i] in the enter group. Nodes
// at or beyond n lose their binding and appear, at the same index, in an
// exit group of length m. A group of length zero yields an exit group
// with a single empty slot.
//
// The receiver's groups are replaced by the update groups and the
// receiver is returned. Enter and Exit expose the partition until the
// next call to Data.
func (s *Selection) Data(values []any) *Selection {
	n := len(values)
	update := make([]Group, len(s.groups))
	enter := make([]EnterGroup, len(s.groups))
	exit := make([]Group, len(s.groups))
	stats := JoinStats{Groups: len(s.groups), Values: n}

	for gi, group := range s.groups {
		m := len(group)
		size := max(m, n)
		updateGroup := make(Group, size)
		enterGroup := make(EnterGroup, size)

		for i := 0; i < n; i++ {
			var node Node
			if i < m {
				node = group[i]
			}
			if node == nil {
				enterGroup[i] = &Placeholder{Datum: values[i]}
				stats.Enter++
				continue
			}
			s.bindings.bind(node, values[i])
			updateGroup[i] = node
			stats.Update++
		}

		var exitGroup Group
		if m == 0 {
			exitGroup = Group{nil}
		} else {
			exitGroup = make(Group, m)
			for i := n; i < m; i++ {
				node := group[i]
				if node == nil {
					continue
				}
				s.bindings.clear(node)
				exitGroup[i] = node
				stats.Exit++
			}
		}

		update[gi] = updateGroup
		enter[gi] = enterGroup
		exit[gi] = exitGroup
	}

	s.groups = update
	s.enter = enter
	s.exit = exit
	s.joined = true

	s.config.logger.Debug("data joined",
		"groups", stats.Groups,
		"values", stats.Values,
		"update", stats.Update,
		"enter", stats.Enter,
		"exit", stats.Exit,
	)
	for _, o := range s.config.observers {
		o.ObserveJoin(stats)
	}

	return s
}
