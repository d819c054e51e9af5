package values

// Merge returns base overlaid with overlay. Neither input is modified and the
// result shares no nested maps or lists with them.
//
// Keys of base come first in the result, followed by keys that only exist in
// overlay, in overlay order. When both sides hold a mapping under the same
// key the two are merged recursively; a missing or non-mapping base value is
// treated as an empty mapping. Every other conflict is won by overlay.
func Merge(base, overlay *Map) *Map {
	var out *Map
	if base == nil {
		out = New()
	} else {
		out = base.Clone()
	}

	for key, value := range overlay.All() {
		current, ok := out.Get(key)
		if !ok {
			out.Set(key, Clone(value))
			continue
		}

		if nested, isMap := value.(*Map); isMap {
			currentMap, _ := current.(*Map)
			out.Set(key, Merge(currentMap, nested))

			continue
		}

		out.Set(key, Clone(value))
	}

	return out
}
