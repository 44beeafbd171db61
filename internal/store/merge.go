package store

// Document is a decoded JSON object.
type Document map[string]any

// Clone returns a deep copy of d. Nested objects and arrays are copied so the
// result can be mutated without touching d.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	return cloneMap(d)
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Document:
		return cloneMap(t)
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case Document:
		return t, true
	case map[string]any:
		return t, true
	}
	return nil, false
}

// Merge copies src into dst recursively. Where both sides hold an object the
// two are merged key by key; otherwise the src value replaces dst's. Keys only
// present in dst are left alone. dst is modified and returned.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = map[string]any{}
	}
	for k, sv := range src {
		srcMap, srcIsMap := asMap(sv)
		dstMap, dstIsMap := asMap(dst[k])
		if srcIsMap && dstIsMap {
			dst[k] = Merge(dstMap, srcMap)
			continue
		}
		dst[k] = cloneValue(sv)
	}
	return dst
}

// Object returns the object stored at key, creating it when missing or when
// the existing value is not an object.
func (d Document) Object(key string) map[string]any {
	if m, ok := asMap(d[key]); ok {
		return m
	}
	m := map[string]any{}
	d[key] = m
	return m
}
