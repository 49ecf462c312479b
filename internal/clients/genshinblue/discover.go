package genshinblue

import (
	"strconv"
	"strings"
)

// markerFields separate real records from grouping nodes that happen to
// carry a name-like key
var markerFields = []string{"id", "rarity", "experience", "characters"}

// RawItem is one discovered record-like mapping plus where it was found
type RawItem struct {
	// Fields is the mapping exactly as decoded
	Fields Value

	// Path holds the mapping keys and sequence indexes walked to reach
	// the item, e.g. ["mondstadt", "sunsettia"]
	Path []string

	// Inherited holds source values collected from enclosing mappings,
	// outermost first
	Inherited []string
}

// Discover walks a payload of unknown shape and returns every mapping
// that looks like an item record, in document order. An item is both
// emitted and descended into: some payloads nest items inside items.
func Discover(root Value) []RawItem {
	return DiscoverAt(root, nil)
}

// DiscoverAt is Discover with a preset base path, for callers that
// already know which subtree they handed over (e.g. a category key).
func DiscoverAt(root Value, base []string) []RawItem {
	var items []RawItem
	discover(root, base, nil, &items)
	return items
}

func discover(v Value, path []string, inherited []string, out *[]RawItem) {
	switch v.Kind() {
	case KindMapping:
		isItem := looksLikeItem(v)
		if isItem {
			*out = append(*out, RawItem{
				Fields:    v,
				Path:      append([]string(nil), path...),
				Inherited: append([]string(nil), inherited...),
			})
		}

		childInherited := appendSources(inherited, v)

		if !isItem {
			if child, ok := wrapperChild(v); ok {
				discover(child, path, childInherited, out)
				return
			}
		}

		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			discover(child, append(path, key), childInherited, out)
		}
	case KindSequence:
		for i, child := range v.Items() {
			discover(child, append(path, strconv.Itoa(i)), inherited, out)
		}
	}
}

// looksLikeItem reports whether the mapping is a record rather than a
// grouping node: it needs a non-empty name and at least one marker
// field
func looksLikeItem(v Value) bool {
	if v.Kind() != KindMapping {
		return false
	}
	name, ok := v.Get("name")
	if !ok {
		return false
	}
	s, ok := name.Str()
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	for _, marker := range markerFields {
		if _, ok := v.Get(marker); ok {
			return true
		}
	}
	return false
}

// wrapperChild detects the two-key envelope some endpoints wrap their
// payload in, {"id": ..., "items": [...]}. The id key is grouping
// noise; the real content sits under the other key and keeps the
// parent's path.
func wrapperChild(v Value) (Value, bool) {
	keys := v.Keys()
	if len(keys) != 2 {
		return Value{}, false
	}

	var other string
	switch {
	case keys[0] == "id":
		other = keys[1]
	case keys[1] == "id":
		other = keys[0]
	default:
		return Value{}, false
	}

	id, _ := v.Get("id")
	if id.Kind() != KindScalar {
		return Value{}, false
	}

	child, _ := v.Get(other)
	return child, true
}

// appendSources extends the inherited source list with the mapping's
// own source-bearing fields, so region grouping nodes propagate their
// identity down to leaf items
func appendSources(inherited []string, v Value) []string {
	var fresh []string
	for _, field := range []string{"source", "sources"} {
		child, ok := v.Get(field)
		if !ok {
			continue
		}
		fresh = append(fresh, stringList(child)...)
	}
	if len(fresh) == 0 {
		return inherited
	}

	combined := make([]string, 0, len(inherited)+len(fresh))
	combined = append(combined, inherited...)
	return append(combined, fresh...)
}
