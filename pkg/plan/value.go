package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vango-dev/vsel/pkg/selection"
)

// attrValue turns a step value into an Attr argument. Strings containing
// {d} or {i} become a ValueFunc; everything else is a literal.
func attrValue(v any) any {
	s, ok := v.(string)
	if !ok || !strings.Contains(s, "{d}") && !strings.Contains(s, "{i}") {
		return v
	}
	if s == "{d}" {
		return selection.ValueFunc(func(datum any, _ int) any { return datum })
	}
	return selection.ValueFunc(func(datum any, index int) any {
		return Expand(s, datum, index)
	})
}

// Expand replaces {d} with the formatted datum and {i} with index.
func Expand(template string, datum any, index int) string {
	r := strings.NewReplacer(
		"{d}", formatDatum(datum),
		"{i}", strconv.Itoa(index),
	)
	return r.Replace(template)
}

func formatDatum(d any) string {
	switch v := d.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
