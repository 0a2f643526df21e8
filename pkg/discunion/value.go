package discunion

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is a variant value: a record whose discriminant field carries its
// tag, alongside the payload fields produced by its builder.
//
// No operation in this package mutates a Value. Construction always
// allocates a fresh map, but the copy is shallow: nested maps, slices and
// pointers are shared with the payload the value was built from.
type Value map[string]any

// Tag returns the tag stored under the discriminant key.
// It reports false when the field is absent or does not hold a tag.
func (v Value) Tag(key string) (Tag, bool) {
	return tagOf(v[key])
}

// String renders the fields sorted by name, e.g. {msg:"hello" type:"foo"}.
func (v Value) String() string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(formatField(v[name]))
	}
	b.WriteByte('}')
	return b.String()
}

func formatField(field any) string {
	switch f := field.(type) {
	case Tag:
		if f.IsSymbol() {
			return f.String()
		}
		return strconv.Quote(f.text)
	case string:
		return strconv.Quote(f)
	default:
		return fmt.Sprintf("%v", f)
	}
}

// createType copies payload into a new Value and sets the discriminant last,
// so it always wins over a payload field of the same name.
func createType(tag Tag, payload map[string]any, key string) Value {
	out := make(Value, len(payload)+1)
	for name, field := range payload {
		out[name] = field
	}
	out[key] = tag
	return out
}
