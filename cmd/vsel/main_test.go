package main

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/vsel/internal/errors"
	"github.com/vango-dev/vsel/pkg/plan"
)

const page = `<div id="d3"><strong>a1</strong><strong>a2</strong><strong>a3</strong><strong>a4</strong></div>`

const barsPlan = `{"steps": [
  {"op": "select", "selector": "#d3"},
  {"op": "selectAll", "selector": "strong"},
  {"op": "data", "values": [0, 1]},
  {"op": "attr", "name": "class", "value": "bar-{d}"}
]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestJoinSummary(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "page.html", page)
	p := writeFile(t, dir, "plan.json", barsPlan)

	out, err := execute(t, "", "join", "--doc", doc, "--plan", p, "--config", dir)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	for _, want := range []string{
		"joined 1 group(s)",
		"update 0: [strong=0, strong=1, -, -]",
		"enter  0: [-, -, -, -]",
		"exit   0: [-, -, strong, strong]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJoinHTMLFromStdin(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "plan.json", barsPlan)

	out, err := execute(t, page, "join", "--doc", "-", "--plan", p, "--html", "--config", dir)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if !strings.Contains(out, `<strong class="bar-0">a1</strong>`) || !strings.Contains(out, `<strong>a3</strong>`) {
		t.Errorf("html = %s", out)
	}
}

func TestJoinJSON(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "page.html", page)
	p := writeFile(t, dir, "plan.json", `{"steps": [
  {"op": "selectAll", "selector": "strong"},
  {"op": "data", "values": ["a", "b", "c", "d", "e"]}
]}`)

	out, err := execute(t, "", "join", "-d", doc, "-p", p, "--json", "-c", dir)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	var report plan.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	enter := report.Enter[0]
	if len(enter) != 5 || enter[4] == nil || enter[4].Datum != "e" {
		t.Errorf("enter = %v", enter)
	}
}

func TestJoinErrors(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "page.html", page)
	good := writeFile(t, dir, "plan.json", barsPlan)
	bad := writeFile(t, dir, "bad.json", `{"steps": [{"op": "explode"}]}`)

	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{name: "missing doc", args: []string{"join", "--plan", good}, wantCode: "E180"},
		{name: "missing plan", args: []string{"join", "--doc", doc}, wantCode: "E180"},
		{name: "missing document", args: []string{"join", "--doc", filepath.Join(dir, "nope.html"), "--plan", good, "-c", dir}, wantCode: "E100"},
		{name: "missing plan file", args: []string{"join", "--doc", doc, "--plan", filepath.Join(dir, "nope.json"), "-c", dir}, wantCode: "E140"},
		{name: "bad plan", args: []string{"join", "--doc", doc, "--plan", bad, "-c", dir}, wantCode: "E141"},
		{name: "bad scheme", args: []string{"join", "--doc", "ftp://x/y", "--plan", good, "-c", dir}, wantCode: "E103"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if ve := errors.FromError(err, ""); ve.Code != tt.wantCode {
				t.Errorf("code = %q, want %q (%v)", ve.Code, tt.wantCode, err)
			}
		})
	}
}

func TestJoinJSONError(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "plan.json", barsPlan)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"join", "--doc", filepath.Join(dir, "nope.html"), "--plan", p, "-c", dir, "--json"})
	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var printed printedError
	if !stderrors.As(err, &printed) {
		t.Errorf("error %v is not marked as printed", err)
	}
	if ve := errors.FromError(err, ""); ve.Code != "E100" {
		t.Errorf("code = %q, want E100", ve.Code)
	}

	var body errors.Body
	if uerr := json.Unmarshal(errOut.Bytes(), &body); uerr != nil {
		t.Fatalf("stderr is not a JSON error: %v\n%s", uerr, errOut.String())
	}
	if body.Code != "E100" || body.Cause == "" {
		t.Errorf("body = %+v", body)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestJoinInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "page.html", page)
	p := writeFile(t, dir, "plan.json", barsPlan)
	writeFile(t, dir, "vsel.json", `{"log": {"level": "chatty"}}`)

	_, err := execute(t, "", "join", "--doc", doc, "--plan", p, "--config", dir)
	if errors.CategoryOf(err) != errors.CategoryConfig {
		t.Errorf("error = %v, want a config error", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version --short = %q, want %q", out, version)
	}

	out, err = execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("version output = %q", out)
	}
}

func TestFormatSlot(t *testing.T) {
	tests := []struct {
		slot *plan.Slot
		want string
	}{
		{nil, "-"},
		{&plan.Slot{Placeholder: true, Datum: 2.0}, "+2"},
		{&plan.Slot{Tag: "div", ID: "d3"}, "div#d3"},
		{&plan.Slot{Tag: "li", Bound: true, Datum: "x"}, "li=x"},
	}
	for _, tt := range tests {
		if got := formatSlot(tt.slot); got != tt.want {
			t.Errorf("formatSlot(%+v) = %q, want %q", tt.slot, got, tt.want)
		}
	}
}
