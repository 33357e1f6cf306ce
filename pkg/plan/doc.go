// Package plan executes declarative data joins against a document.
//
// A plan is a JSON list of steps applied in order to a current
// selection:
//
//	{"steps": [
//	  {"op": "select", "selector": "#chart"},
//	  {"op": "selectAll", "selector": "rect"},
//	  {"op": "data", "values": [4, 8, 15]},
//	  {"op": "attr", "name": "height", "value": "{d}"},
//	  {"op": "attr", "name": "x", "value": "bar-{i}"},
//	  {"op": "exit"},
//	  {"op": "attr", "name": "hidden", "value": true}
//	]}
//
// The first query step runs against the document root. In string attr
// values {d} expands to the bound datum and {i} to the slot index; a value
// of exactly "{d}" sets the datum itself. Run returns a Report describing
// the update, enter and exit partitions of the last data step together
// with the rendered document.
package plan
