package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Instance is a validated record produced by Validate. It is immutable:
// accessors return the stored values but nothing mutates them after
// construction. Nested records are held as *Instance, lists as []any.
type Instance struct {
	schema *Schema
	values map[string]any
}

// Schema returns the schema this instance was validated against.
func (i *Instance) Schema() *Schema { return i.schema }

// Get returns the value of a field, or nil when an optional field was
// absent from the input.
func (i *Instance) Get(name string) any { return i.values[name] }

// Has reports whether the field carries a value.
func (i *Instance) Has(name string) bool {
	_, ok := i.values[name]
	return ok
}

// AsMap projects the instance back into plain nested maps and slices,
// suitable for an external encoder. The projection is lossless:
// validating it against the same schema succeeds and yields an instance
// equal to the original.
func (i *Instance) AsMap() map[string]any {
	out := make(map[string]any, len(i.values))
	for _, f := range i.schema.fields {
		v, ok := i.values[f.Name]
		if !ok {
			continue
		}
		out[f.Name] = plain(v)
	}
	return out
}

// plain recursively strips Instance wrappers.
func plain(v any) any {
	switch v := v.(type) {
	case *Instance:
		return v.AsMap()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

// Decode unmarshals the plain projection into out, typically a pointer to
// a struct. Field mapping follows mapstructure conventions.
func (i *Instance) Decode(out any) error {
	if err := mapstructure.Decode(i.AsMap(), out); err != nil {
		return fmt.Errorf("failed to decode instance: %w", err)
	}
	return nil
}

// Equal reports whether both instances share a schema and hold equal
// values.
func (i *Instance) Equal(other *Instance) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.schema == other.schema && reflect.DeepEqual(i.values, other.values)
}

// String renders the instance with its fields in declaration order.
func (i *Instance) String() string {
	var b strings.Builder
	b.WriteString(i.schema.name)
	b.WriteByte('(')
	first := true
	for _, f := range i.schema.fields {
		v, ok := i.values[f.Name]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%v", f.Name, v)
	}
	b.WriteByte(')')
	return b.String()
}
