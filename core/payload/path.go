package payload

import (
	"strconv"
	"strings"
)

// Resolve walks a colon-delimited attribute path against a value and returns
// the node it addresses. Numeric segments index into sequences; other
// segments (and numeric strings at a mapping level) look up mapping fields.
// Any mismatch (a missing key, an out-of-range index, descending into a
// scalar, an empty segment) resolves to absent. Resolve never panics and is
// safe to call concurrently.
func Resolve(path string, v Value) (Value, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Null(), false
	}

	current := v
	for _, segment := range strings.Split(path, ":") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return Null(), false
		}

		switch current.Kind() {
		case KindSequence:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 {
				return Null(), false
			}
			next, ok := current.Index(idx)
			if !ok {
				return Null(), false
			}
			current = next
		case KindMapping:
			next, ok := current.Field(segment)
			if !ok {
				return Null(), false
			}
			current = next
		default:
			return Null(), false
		}
	}

	return current, true
}
