package plan

import (
	"github.com/vango-dev/vsel/pkg/render"
	"github.com/vango-dev/vsel/pkg/selection"
	"github.com/vango-dev/vsel/pkg/vdom"
)

// Report describes the outcome of a plan run.
type Report struct {
	// Update, Enter and Exit are the partitions of the last data step.
	// They are nil when the plan has no data step.
	Update [][]*Slot `json:"update"`
	Enter  [][]*Slot `json:"enter"`
	Exit   [][]*Slot `json:"exit"`

	// Selection holds the groups of the selection after the last step.
	Selection [][]*Slot `json:"selection"`

	// HTML is the rendered document after all steps.
	HTML string `json:"html,omitempty"`
}

// Slot describes a non-empty group slot. Empty slots are reported as nil.
type Slot struct {
	Tag         string `json:"tag,omitempty"`
	ID          string `json:"id,omitempty"`
	Class       string `json:"class,omitempty"`
	Datum       any    `json:"datum"`
	Bound       bool   `json:"bound"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	selection []selection.Option
	render    render.RendererConfig
	skipHTML  bool
}

// WithSelectionOptions passes options to the root selection.
func WithSelectionOptions(opts ...selection.Option) Option {
	return func(c *runConfig) { c.selection = append(c.selection, opts...) }
}

// WithRenderer sets the renderer configuration for Report.HTML.
func WithRenderer(cfg render.RendererConfig) Option {
	return func(c *runConfig) { c.render = cfg }
}

// WithoutHTML leaves Report.HTML empty.
func WithoutHTML() Option {
	return func(c *runConfig) { c.skipHTML = true }
}

// Run validates p and executes it against doc, mutating doc's attributes.
func Run(doc *vdom.VNode, p *Plan, opts ...Option) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var cur, joined *selection.Selection
	for _, step := range p.Steps {
		switch step.Op {
		case OpSelect:
			if cur == nil {
				cur = selection.Select(doc, step.Selector, cfg.selection...)
			} else {
				cur = cur.Select(step.Selector)
			}
		case OpSelectAll:
			if cur == nil {
				cur = selection.SelectAll(doc, step.Selector, cfg.selection...)
			} else {
				cur = cur.SelectAll(step.Selector)
			}
		case OpData:
			cur = cur.Data(step.Values)
			joined = cur
		case OpAttr:
			cur.Attr(step.Name, attrValue(step.Value))
		case OpExit:
			cur = cur.Exit()
		}
	}

	report := &Report{Selection: describeGroups(cur, cur.Groups())}
	if joined != nil {
		report.Update = describeGroups(joined, joined.Groups())
		report.Enter = describeEnter(joined.Enter())
		report.Exit = describeGroups(joined, joined.Exit().Groups())
	}

	if !cfg.skipHTML {
		html, err := render.NewRenderer(cfg.render).RenderToString(doc)
		if err != nil {
			return nil, err
		}
		report.HTML = html
	}
	return report, nil
}

func describeGroups(s *selection.Selection, groups []selection.Group) [][]*Slot {
	out := make([][]*Slot, len(groups))
	for gi, group := range groups {
		slots := make([]*Slot, len(group))
		for i, node := range group {
			if node == nil {
				continue
			}
			slots[i] = describeNode(s, node)
		}
		out[gi] = slots
	}
	return out
}

func describeNode(s *selection.Selection, node selection.Node) *Slot {
	slot := &Slot{}
	if v, ok := node.(*vdom.VNode); ok {
		slot.Tag = v.Tag
		slot.ID = v.ID()
		if class, ok := v.Attribute("class"); ok {
			slot.Class, _ = class.(string)
		}
	}
	slot.Datum, slot.Bound = s.Datum(node)
	return slot
}

func describeEnter(groups []selection.EnterGroup) [][]*Slot {
	out := make([][]*Slot, len(groups))
	for gi, group := range groups {
		slots := make([]*Slot, len(group))
		for i, p := range group {
			if p == nil {
				continue
			}
			slots[i] = &Slot{Datum: p.Datum, Placeholder: true}
		}
		out[gi] = slots
	}
	return out
}
