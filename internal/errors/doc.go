// Package errors provides structured, actionable error messages for vsel.
//
// Errors carry a code, a category, a short message, an optional longer
// detail, a fix suggestion and, for errors tied to a file, a location
// with the surrounding lines.
//
// # Error Categories
//
//   - document: loading or parsing input documents
//   - config: vsel.json problems
//   - plan: invalid join plans (unknown steps, bad selectors)
//   - request: malformed service requests
//   - cli: command-line usage problems
//
// # Usage
//
//	err := errors.New("E140").
//	    WithLocation("plan.json", 3, 12).
//	    WithSuggestion("Check that the plan is valid JSON")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E140: Plan could not be parsed
//	//
//	//   plan.json:3:12
//	//
//	//      2 │   "steps": [
//	//   →  3 │     {"op": "select" "selector": "p"},
//	//        │            ^
//	//      4 │   ]
//	//
//	//   Hint: Check that the plan is valid JSON
package errors
