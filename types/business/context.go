package business

import "strings"

// UserContext is the caller-supplied bag of user and booking attributes a
// transaction is evaluated against (age, hasPWDId, userType, totalBookings,
// booking-time attributes, ...). It is read-only to the engine and never
// persisted here.
type UserContext map[string]interface{}

// Resolve walks a dot-separated path through nested maps and returns the
// terminal value. The second return is false when any segment is missing,
// an intermediate value is not a map, or the terminal value is nil.
func (c UserContext) Resolve(path string) (interface{}, bool) {
	var current interface{} = map[string]interface{}(c)

	for _, segment := range strings.Split(path, ".") {
		var node map[string]interface{}
		switch v := current.(type) {
		case map[string]interface{}:
			node = v
		case UserContext:
			node = map[string]interface{}(v)
		default:
			return nil, false
		}

		value, exists := node[segment]
		if !exists {
			return nil, false
		}
		current = value
	}

	if current == nil {
		return nil, false
	}
	return current, true
}
