package page

import (
	"fmt"
	"strconv"
)

// displayForm renders a non-string value as plain text. Floats use the
// shortest representation that round-trips, so JSON-decoded integers
// (float64 in Go) render without a trailing ".0" or exponent.
func displayForm(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

// DisplayForm renders any attribute value as its plain textual form.
// Strings pass through untouched.
func DisplayForm(v any) string {
	return displayForm(v)
}
