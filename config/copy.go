package config

// deepCopy clones a parsed value tree. Mappings and sequences
// are duplicated recursively; scalars are immutable values and
// are shared as-is.
func deepCopy(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case map[string]interface{}:
		cp := make(
			map[string]interface{}, len(typedVal),
		)
		for key := range typedVal {
			cp[key] = deepCopy(typedVal[key])
		}

		return cp
	case []interface{}:
		cp := make([]interface{}, len(typedVal))
		for idx := range typedVal {
			cp[idx] = deepCopy(typedVal[idx])
		}

		return cp
	default:
		return val
	}
}
