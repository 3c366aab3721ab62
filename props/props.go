// Package props provides the property-map primitive shared by the
// introspection, trait-injection, and tracing packages.
package props

// Map is a name-to-value mapping with unique keys.
type Map map[string]any

// Merge folds the given maps left-to-right into a single new map.
// On key collision the later map wins. The inputs are not modified.
func Merge(maps ...Map) Map {
	result := make(Map)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// Apply copies each entry of m into target. An entry is written only if
// target lacks the key, or overwrite is true. Keys are never deleted.
func Apply(target, m Map, overwrite bool) {
	for k, v := range m {
		if _, exists := target[k]; exists && !overwrite {
			continue
		}
		target[k] = v
	}
}

// Clone returns a shallow copy of m. Returns an empty map for nil input
// so callers can always write to the result.
func Clone(m Map) Map {
	result := make(Map, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
