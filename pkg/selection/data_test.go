package selection

import (
	"testing"
)

func TestDataEqualSizes(t *testing.T) {
	doc := strongs(2)
	s := Select(doc, "div").SelectAll("strong").Data([]any{0, 1})

	g := s.Groups()[0]
	if len(g) != 2 {
		t.Fatalf("update length = %d, want 2", len(g))
	}
	for i := range g {
		if g[i] == nil {
			t.Fatalf("update slot %d is empty", i)
		}
		if d := datumOf(t, s, g[i]); d != i {
			t.Errorf("slot %d datum = %v, want %d", i, d, i)
		}
	}

	enter := s.Enter()[0]
	if len(enter) != 2 || enter.Count() != 0 {
		t.Errorf("enter = %v, want two empty slots", enter)
	}
	exit := s.Exit().Groups()[0]
	if len(exit) != 2 || exit.Count() != 0 {
		t.Errorf("exit = %v, want two empty slots", exit)
	}
}

func TestDataMoreValuesThanNodes(t *testing.T) {
	doc := strongs(2)
	s := Select(doc, "div").SelectAll("strong").Data([]any{0, 1, 2, 3})

	g := s.Groups()[0]
	if len(g) != 4 {
		t.Fatalf("update length = %d, want 4", len(g))
	}
	for i := 0; i < 2; i++ {
		if d := datumOf(t, s, g[i]); d != i {
			t.Errorf("slot %d datum = %v, want %d", i, d, i)
		}
	}
	if g[2] != nil || g[3] != nil {
		t.Error("update slots 2-3 should be empty")
	}

	enter := s.Enter()[0]
	if len(enter) != 4 {
		t.Fatalf("enter length = %d, want 4", len(enter))
	}
	if enter[0] != nil || enter[1] != nil {
		t.Error("enter slots 0-1 should be empty")
	}
	for i := 2; i < 4; i++ {
		if enter[i] == nil || enter[i].Datum != i {
			t.Errorf("enter slot %d = %v, want placeholder for %d", i, enter[i], i)
		}
	}

	exit := s.Exit().Groups()[0]
	if len(exit) != 2 || exit.Count() != 0 {
		t.Errorf("exit = %v, want two empty slots", exit)
	}
}

func TestDataFewerValuesThanNodes(t *testing.T) {
	doc := strongs(4)
	div := doc.children[0]
	s := Select(doc, "div").SelectAll("strong").Data([]any{0, 1})

	g := s.Groups()[0]
	if len(g) != 4 {
		t.Fatalf("update length = %d, want 4", len(g))
	}
	if g[2] != nil || g[3] != nil {
		t.Error("update slots beyond the data should be empty")
	}

	exit := s.Exit().Groups()[0]
	if len(exit) != 4 {
		t.Fatalf("exit length = %d, want 4", len(exit))
	}
	if exit[0] != nil || exit[1] != nil {
		t.Error("exit slots 0-1 should be empty")
	}
	if exit[2] != div.children[2] || exit[3] != div.children[3] {
		t.Error("exit slots 2-3 should hold the orphaned nodes")
	}
	for _, node := range exit[2:] {
		if _, ok := s.Datum(node); ok {
			t.Error("exiting node kept its binding")
		}
	}

	enter := s.Enter()[0]
	if len(enter) != 4 || enter.Count() != 0 {
		t.Errorf("enter = %v, want four empty slots", enter)
	}
}

func TestDataFailedSelect(t *testing.T) {
	s := Select(el("#document"), "p").Data([]any{0, 1, 2})

	g := s.Groups()[0]
	if len(g) != 3 || g.Count() != 0 {
		t.Fatalf("update = %v, want three empty slots", g)
	}

	enter := s.Enter()[0]
	if len(enter) != 3 {
		t.Fatalf("enter length = %d, want 3", len(enter))
	}
	for i, p := range enter {
		if p == nil || p.Datum != i {
			t.Errorf("enter slot %d = %v, want placeholder for %d", i, p, i)
		}
	}

	exit := s.Exit().Groups()[0]
	if len(exit) != 1 || exit[0] != nil {
		t.Errorf("exit = %v, want a single empty slot", exit)
	}
}

func TestDataSingleNode(t *testing.T) {
	tests := []struct {
		name      string
		values    []any
		wantEnter []any // nil entries are empty slots
		wantExit  bool
	}{
		{
			name:      "more data",
			values:    []any{0, 1, 2},
			wantEnter: []any{nil, 1, 2},
		},
		{
			name:      "no data",
			values:    []any{},
			wantEnter: []any{nil},
			wantExit:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := el("#document", el("p"))
			p := doc.children[0]
			s := Select(doc, "p").Data(tt.values)

			g := s.Groups()[0]
			if len(tt.values) > 0 {
				if g[0] != p {
					t.Fatal("slot 0 should keep the p node")
				}
				if d := datumOf(t, s, p); d != 0 {
					t.Errorf("p datum = %v, want 0", d)
				}
			}

			enter := s.Enter()[0]
			if len(enter) != len(tt.wantEnter) {
				t.Fatalf("enter length = %d, want %d", len(enter), len(tt.wantEnter))
			}
			for i, want := range tt.wantEnter {
				if want == nil {
					if enter[i] != nil {
						t.Errorf("enter slot %d should be empty", i)
					}
					continue
				}
				if enter[i] == nil || enter[i].Datum != want {
					t.Errorf("enter slot %d = %v, want placeholder for %v", i, enter[i], want)
				}
			}

			exit := s.Exit().Groups()[0]
			if len(exit) != 1 {
				t.Fatalf("exit length = %d, want 1", len(exit))
			}
			if tt.wantExit && exit[0] != p {
				t.Error("exit slot 0 should hold the p node")
			}
			if !tt.wantExit && exit[0] != nil {
				t.Error("exit slot 0 should be empty")
			}
		})
	}
}

func TestDataMultipleGroups(t *testing.T) {
	doc := el("#document",
		el("p", el("strong")),
		el("p", el("strong"), el("strong")),
		el("p", el("strong"), el("strong"), el("strong")),
	)

	s := SelectAll(doc, "p").SelectAll("strong").Data([]any{0, 1})
	update := s.Groups()
	enter := s.Enter()
	exit := s.Exit().Groups()

	// One strong: binds 0, enters 1.
	if d := datumOf(t, s, update[0][0]); d != 0 {
		t.Errorf("group 0 slot 0 datum = %v, want 0", d)
	}
	if update[0][1] != nil {
		t.Error("group 0 slot 1 should be empty in update")
	}
	if enter[0][0] != nil || enter[0][1] == nil || enter[0][1].Datum != 1 {
		t.Errorf("group 0 enter = %v, want [nil, 1]", enter[0])
	}
	if len(exit[0]) != 1 || exit[0][0] != nil {
		t.Errorf("group 0 exit = %v, want [nil]", exit[0])
	}

	// Two strongs: both bound, nothing enters or exits.
	for i := 0; i < 2; i++ {
		if d := datumOf(t, s, update[1][i]); d != i {
			t.Errorf("group 1 slot %d datum = %v, want %d", i, d, i)
		}
	}
	if enter[1].Count() != 0 || exit[1].Count() != 0 {
		t.Error("group 1 should have no enter or exit slots")
	}

	// Three strongs: the last exits.
	if len(exit[2]) != 3 || exit[2][2] != doc.children[2].children[2] {
		t.Errorf("group 2 exit = %v, want third strong at index 2", exit[2])
	}
	if exit[2][0] != nil || exit[2][1] != nil {
		t.Error("group 2 exit slots 0-1 should be empty")
	}
	if enter[2].Count() != 0 {
		t.Error("group 2 should have no enter slots")
	}
}

func TestDataEmptyGroupExit(t *testing.T) {
	s := SelectAll(el("#document", el("div")), "strong").Data([]any{7, 8})

	if g := s.Groups()[0]; len(g) != 2 || g.Count() != 0 {
		t.Errorf("update = %v, want two empty slots", g)
	}
	enter := s.Enter()[0]
	if len(enter) != 2 || enter[0].Datum != 7 || enter[1].Datum != 8 {
		t.Errorf("enter = %v, want placeholders for 7 and 8", enter)
	}
	exit := s.Exit().Groups()[0]
	if len(exit) != 1 || exit[0] != nil {
		t.Errorf("exit = %v, want a single empty slot", exit)
	}
}

func TestDataRebindReplacesPartition(t *testing.T) {
	doc := strongs(3)
	s := SelectAll(doc, "strong").Data([]any{"a"})
	if s.Exit().Groups()[0].Count() != 2 {
		t.Fatal("first join should exit two nodes")
	}

	// The update group now holds only the first node.
	s.Data([]any{"x", "y"})
	if s.Exit().Groups()[0].Count() != 0 {
		t.Error("second join should replace the exit partition")
	}
	enter := s.Enter()[0]
	if len(enter) != 3 || enter[1] == nil || enter[1].Datum != "y" {
		t.Errorf("enter = %v, want placeholder for y at index 1", enter)
	}
	if d := datumOf(t, s, doc.children[0].children[0]); d != "x" {
		t.Errorf("rebound datum = %v, want x", d)
	}
}

func TestDataEnterLengthProperty(t *testing.T) {
	for nodes := 1; nodes <= 4; nodes++ {
		for values := 0; values <= 5; values++ {
			data := make([]any, values)
			for i := range data {
				data[i] = i
			}
			s := SelectAll(strongs(nodes), "strong").Data(data)

			want := max(nodes, values)
			if got := len(s.Enter()[0]); got != want {
				t.Errorf("nodes=%d values=%d: enter length = %d, want %d", nodes, values, got, want)
			}
			if got := len(s.Groups()[0]); got != want {
				t.Errorf("nodes=%d values=%d: update length = %d, want %d", nodes, values, got, want)
			}

			exit := s.Exit().Groups()[0]
			if len(exit) != nodes {
				t.Errorf("nodes=%d values=%d: exit length = %d, want %d", nodes, values, len(exit), nodes)
			}
			if wantExit := max(nodes-values, 0); exit.Count() != wantExit {
				t.Errorf("nodes=%d values=%d: exit count = %d, want %d", nodes, values, exit.Count(), wantExit)
			}
			for i := 0; i < min(values, nodes); i++ {
				if exit[i] != nil {
					t.Errorf("nodes=%d values=%d: exit slot %d should be empty", nodes, values, i)
				}
			}
		}
	}
}

func TestDataObserver(t *testing.T) {
	var got []JoinStats
	obs := ObserverFunc(func(stats JoinStats) { got = append(got, stats) })

	SelectAll(strongs(3), "strong", WithObserver(obs)).Data([]any{1, 2, 3, 4, 5})
	SelectAll(strongs(3), "strong", WithObserver(obs)).Data([]any{1})

	want := []JoinStats{
		{Groups: 1, Values: 5, Update: 3, Enter: 2, Exit: 0},
		{Groups: 1, Values: 1, Update: 1, Enter: 0, Exit: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("observed %d joins, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("join %d stats = %+v, want %+v", i, got[i], want[i])
		}
	}
}
