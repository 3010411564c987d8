package utils

import (
	"fmt"
	"strconv"
)

// ToString converts scalar values to their string form. Booleans render as
// "true"/"false" and floats without a trailing exponent, which matters when
// API scalars end up in titles and custom fields.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
