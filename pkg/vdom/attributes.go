package vdom

import (
	"fmt"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// AttrOf creates an arbitrary attribute.
func AttrOf(key string, value any) Attr { return attr(key, value) }

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return attr("title", title) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// X sets the SVG x attribute.
func X(x any) Attr { return attr("x", x) }

// Y sets the SVG y attribute.
func Y(y any) Attr { return attr("y", y) }

// Fill sets the SVG fill attribute.
func Fill(color string) Attr { return attr("fill", color) }

// ViewBox sets the SVG viewBox attribute.
func ViewBox(box string) Attr { return attr("viewBox", box) }

// stringify converts an attribute value to its HTML string form.
// A true boolean is the empty string (present, no value).
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return ""
		}
		return "false"
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// present reports whether an attribute value renders as present.
// A false boolean renders as absent.
func present(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return v != nil
}
