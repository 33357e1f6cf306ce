// Package render serializes vdom document trees back to HTML.
//
// The renderer handles:
//
//   - Text and attribute escaping
//   - Void elements (input, br, img, etc.)
//   - Boolean attributes (disabled, hidden, etc.)
//   - Raw text elements (script, style)
//   - Optional pretty printing
//
// Attributes are written in sorted order so output is deterministic.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(doc)
//
// To stream HTML to a writer:
//
//	err := renderer.RenderToWriter(w, doc)
package render
