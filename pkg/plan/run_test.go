package plan

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vango-dev/vsel/pkg/render"
	"github.com/vango-dev/vsel/pkg/selection"
	"github.com/vango-dev/vsel/pkg/vdom"
)

const fourStrongs = `<div id="d3"><strong>a1</strong><strong>a2</strong><strong>a3</strong><strong>a4</strong></div>`

func mustParse(t *testing.T, src string) *Plan {
	t.Helper()
	p, err := Parse([]byte(src), "test")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return p
}

func mustDoc(t *testing.T, src string) *vdom.VNode {
	t.Helper()
	doc, err := vdom.ParseHTMLString(src)
	if err != nil {
		t.Fatalf("ParseHTMLString: %v", err)
	}
	return doc
}

func TestRunFewerValues(t *testing.T) {
	doc := mustDoc(t, fourStrongs)
	p := mustParse(t, `{"steps": [
		{"op": "select", "selector": "#d3"},
		{"op": "selectAll", "selector": "strong"},
		{"op": "data", "values": [0, 1]},
		{"op": "attr", "name": "class", "value": "bar-{d}-{i}"},
		{"op": "exit"},
		{"op": "attr", "name": "data-state", "value": "exiting"}
	]}`)

	report, err := Run(doc, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(report.Update) != 1 || len(report.Update[0]) != 4 {
		t.Fatalf("update shape = %v", report.Update)
	}
	for i := 0; i < 2; i++ {
		slot := report.Update[0][i]
		if slot == nil || slot.Tag != "strong" || !slot.Bound || slot.Datum != float64(i) {
			t.Errorf("update slot %d = %+v", i, slot)
		}
	}
	if report.Update[0][2] != nil || report.Update[0][3] != nil {
		t.Error("update slots 2-3 should be empty")
	}
	if report.Update[0][1].Class != "bar-1-1" {
		t.Errorf("update slot 1 class = %q, want bar-1-1", report.Update[0][1].Class)
	}

	exit := report.Exit[0]
	if len(exit) != 4 || exit[0] != nil || exit[1] != nil || exit[2] == nil || exit[3] == nil {
		t.Fatalf("exit = %v", exit)
	}
	if exit[2].Bound {
		t.Error("exiting node should not be bound")
	}

	for _, want := range []string{
		`<strong class="bar-0-0">a1</strong>`,
		`<strong class="bar-1-1">a2</strong>`,
		`<strong data-state="exiting">a3</strong>`,
		`<strong data-state="exiting">a4</strong>`,
	} {
		if !strings.Contains(report.HTML, want) {
			t.Errorf("HTML missing %s:\n%s", want, report.HTML)
		}
	}

	// The final selection is the exit view.
	if got := report.Selection[0]; len(got) != 4 || got[2] == nil {
		t.Errorf("selection = %v", got)
	}
}

func TestRunMoreValues(t *testing.T) {
	doc := mustDoc(t, `<div id="d3"><strong>a</strong><strong>b</strong></div>`)
	p := mustParse(t, `{"steps": [
		{"op": "select", "selector": "#d3"},
		{"op": "selectAll", "selector": "strong"},
		{"op": "data", "values": ["w", "x", "y", "z"]},
		{"op": "attr", "name": "title", "value": "{d}"}
	]}`)

	report, err := Run(doc, p, WithoutHTML())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.HTML != "" {
		t.Error("WithoutHTML should leave HTML empty")
	}

	enter := report.Enter[0]
	if len(enter) != 4 || enter[0] != nil || enter[1] != nil {
		t.Fatalf("enter = %v", enter)
	}
	for i, want := range []string{"y", "z"} {
		slot := enter[i+2]
		if slot == nil || !slot.Placeholder || slot.Datum != want {
			t.Errorf("enter slot %d = %+v, want placeholder for %s", i+2, slot, want)
		}
	}
	if len(report.Exit[0]) != 2 || report.Exit[0][0] != nil || report.Exit[0][1] != nil {
		t.Errorf("exit = %v, want two empty slots", report.Exit[0])
	}
}

func TestRunFailedSelect(t *testing.T) {
	doc := mustDoc(t, `<div></div>`)
	p := mustParse(t, `{"steps": [
		{"op": "select", "selector": "p"},
		{"op": "data", "values": [0, 1, 2]}
	]}`)

	report, err := Run(doc, p, WithoutHTML())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := report.Update[0]; len(got) != 3 || got[0] != nil || got[1] != nil || got[2] != nil {
		t.Errorf("update = %v, want three empty slots", got)
	}
	if got := report.Enter[0]; len(got) != 3 || got[0] == nil || got[0].Datum != float64(0) {
		t.Errorf("enter = %v", got)
	}
	if got := report.Exit[0]; len(got) != 1 || got[0] != nil {
		t.Errorf("exit = %v, want a single empty slot", got)
	}
}

func TestRunWithoutData(t *testing.T) {
	doc := mustDoc(t, `<ul><li>a</li><li>b</li></ul>`)
	p := mustParse(t, `{"steps": [
		{"op": "selectAll", "selector": "li"},
		{"op": "attr", "name": "hidden", "value": true}
	]}`)

	report, err := Run(doc, p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Update != nil || report.Enter != nil || report.Exit != nil {
		t.Error("partitions should be nil without a data step")
	}
	if len(report.Selection) != 1 || len(report.Selection[0]) != 2 {
		t.Errorf("selection = %v", report.Selection)
	}
	if !strings.Contains(report.HTML, "<li hidden>a</li>") {
		t.Errorf("HTML = %s", report.HTML)
	}

	// Nulls mark empty slots in the JSON form.
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"update":null`) {
		t.Errorf("json = %s", data)
	}
}

func TestRunObserverAndRenderer(t *testing.T) {
	doc := mustDoc(t, fourStrongs)
	p := mustParse(t, `{"steps": [
		{"op": "selectAll", "selector": "strong"},
		{"op": "data", "values": [1]}
	]}`)

	var stats []selection.JoinStats
	obs := selection.ObserverFunc(func(s selection.JoinStats) { stats = append(stats, s) })

	report, err := Run(doc, p,
		WithSelectionOptions(selection.WithObserver(obs)),
		WithRenderer(render.RendererConfig{Doctype: true}),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(stats) != 1 || stats[0].Exit != 3 || stats[0].Update != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if !strings.HasPrefix(report.HTML, "<!DOCTYPE html>") {
		t.Errorf("HTML = %.40s", report.HTML)
	}
}

func TestRunInvalidPlan(t *testing.T) {
	_, err := Run(mustDoc(t, "<p></p>"), &Plan{Steps: []Step{{Op: OpExit}}})
	if codeOf(err) != "E144" {
		t.Errorf("error = %v, want E144", err)
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		template string
		datum    any
		index    int
		want     string
	}{
		{"bar-{d}", float64(3), 0, "bar-3"},
		{"bar-{d}", 2.5, 0, "bar-2.5"},
		{"{i}:{d}", "x", 7, "7:x"},
		{"{d}{d}", true, 0, "truetrue"},
		{"none-{d}", nil, 1, "none-"},
		{"plain", 1, 1, "plain"},
	}
	for _, tt := range tests {
		if got := Expand(tt.template, tt.datum, tt.index); got != tt.want {
			t.Errorf("Expand(%q, %v, %d) = %q, want %q", tt.template, tt.datum, tt.index, got, tt.want)
		}
	}
}

func TestAttrValue(t *testing.T) {
	if v := attrValue(42.0); v != 42.0 {
		t.Errorf("literal number = %v", v)
	}
	if v := attrValue("plain"); v != "plain" {
		t.Errorf("literal string = %v", v)
	}
	fn, ok := attrValue("{d}").(selection.ValueFunc)
	if !ok {
		t.Fatal("{d} should produce a ValueFunc")
	}
	if got := fn(float64(9), 0); got != float64(9) {
		t.Errorf("{d} = %#v, want the datum itself", got)
	}
	fn, ok = attrValue("n{i}").(selection.ValueFunc)
	if !ok || fn(nil, 4) != "n4" {
		t.Error("n{i} should expand the index")
	}
}
