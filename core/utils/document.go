package utils

// Lookup walks a decoded JSON document along the given object keys. It returns nil when
// any step is missing or is not an object.
func Lookup(doc any, path ...string) any {
	cur := doc
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// Object returns the object at path, or nil.
func Object(doc any, path ...string) map[string]any {
	obj, _ := Lookup(doc, path...).(map[string]any)
	return obj
}

// Array returns the array at path, or nil.
func Array(doc any, path ...string) []any {
	arr, _ := Lookup(doc, path...).([]any)
	return arr
}

// String returns the string at path, or "".
func String(doc any, path ...string) string {
	return ToString(Lookup(doc, path...), "")
}

// FirstString returns the first non-empty string among the given paths.
func FirstString(doc any, paths ...[]string) string {
	for _, p := range paths {
		if s := String(doc, p...); s != "" {
			return s
		}
	}
	return ""
}
