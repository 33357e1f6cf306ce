package plan

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/vango-dev/vsel/internal/errors"
	"github.com/vango-dev/vsel/pkg/vdom"
)

// Step operations.
const (
	OpSelect    = "select"
	OpSelectAll = "selectAll"
	OpData      = "data"
	OpAttr      = "attr"
	OpExit      = "exit"
)

// Plan is an ordered list of selection steps.
type Plan struct {
	Steps []Step `json:"steps"`
}

// Step is a single plan operation. Only the fields of its Op are used.
type Step struct {
	Op       string `json:"op"`
	Selector string `json:"selector,omitempty"`
	Values   []any  `json:"values,omitempty"`
	Name     string `json:"name,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// Parse decodes a plan from JSON. name labels error locations and is
// usually the file the plan was read from.
func Parse(data []byte, name string) (*Plan, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var p Plan
	if err := dec.Decode(&p); err != nil {
		ve := errors.New("E140").Wrap(err)
		if offset, ok := errorOffset(err); ok {
			line, col := position(data, offset)
			ve.WithLocation(name, line, col)
		}
		return nil, ve
	}
	if dec.More() {
		return nil, errors.New("E140").
			WithDetail("Unexpected data after the plan object.")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Read decodes a plan from r.
func Read(r io.Reader, name string) (*Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E140").Wrap(err)
	}
	return Parse(data, name)
}

func errorOffset(err error) (int64, bool) {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return syntaxErr.Offset, true
	}
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return typeErr.Offset, true
	}
	return 0, false
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// Validate checks step fields and ordering.
func (p *Plan) Validate() error {
	if len(p.Steps) == 0 {
		return errors.New("E143").
			WithDetail("The plan has no steps.")
	}

	selected := false
	joined := false
	for i, step := range p.Steps {
		switch step.Op {
		case OpSelect, OpSelectAll:
			if step.Selector == "" {
				return stepError("E143", i, step, "selector is required")
			}
			if _, err := vdom.ParseSelector(step.Selector); err != nil {
				return errors.New("E142").
					WithDetail(fmt.Sprintf("step %d (%s): %q", i, step.Op, step.Selector)).
					Wrap(err)
			}
			selected = true
			joined = false
		case OpData:
			if !selected {
				return stepError("E144", i, step, "data requires a preceding select or selectAll")
			}
			if step.Values == nil {
				return stepError("E143", i, step, "values is required")
			}
			joined = true
		case OpAttr:
			if !selected {
				return stepError("E144", i, step, "attr requires a preceding select or selectAll")
			}
			if step.Name == "" {
				return stepError("E143", i, step, "name is required")
			}
		case OpExit:
			if !joined {
				return stepError("E144", i, step, "exit requires a preceding data step")
			}
			joined = false
		default:
			return stepError("E141", i, step, fmt.Sprintf("unknown op %q", step.Op)).
				WithSuggestion("Use one of select, selectAll, data, attr, exit")
		}
	}
	return nil
}

func stepError(code string, i int, step Step, msg string) *errors.VselError {
	return errors.New(code).WithDetail(fmt.Sprintf("step %d (%s): %s", i, step.Op, msg))
}
