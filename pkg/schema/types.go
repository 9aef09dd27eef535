package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/aretw0/lattice/pkg/format"
)

// Type defines the contract for field coercion.
// Implementations turn a raw input value into the declared Go value.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Coerce converts a raw value to the declared type. On failure it
	// returns an error: a *FormatError for format failures, an ErrorList
	// for nested failures, and a plain error for type mismatches.
	Coerce(value any) (any, error)
}

// --- Built-in Type Implementations ---

// StringType coerces string values. No conversion from other primitives
// is attempted.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Coerce(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", value)
	}
	return s, nil
}

// IntType coerces integer values. It accepts the Go int family, whole
// floats (from JSON unmarshaling), json.Number, and numeric strings.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Coerce(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int(v), nil
		}
		return nil, fmt.Errorf("expected int, got float (not a whole number)")
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("expected int, got number %q", v.String())
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("expected int, got string %q", v)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("expected int, got %T", value)
	}
}

// FloatType coerces floating-point values.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Coerce(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("expected float, got number %q", v.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("expected float, got string %q", v)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected float, got %T", value)
	}
}

// BoolType coerces boolean values. Strings accepted by strconv.ParseBool
// ("true", "1", ...) are converted.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Coerce(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("expected bool, got string %q", v)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("expected bool, got %T", value)
	}
}

// FormatType coerces strings constrained to a named syntactic format.
// A non-string value is a type failure; a string that fails the check is
// a format failure.
type FormatType struct {
	format   string
	registry *format.Registry
}

func (t *FormatType) Name() string { return t.format }

func (t *FormatType) Coerce(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", value)
	}
	if err := t.registry.Validate(t.format, s); err != nil {
		return nil, &FormatError{Format: t.format, Message: err.Error()}
	}
	return s, nil
}

// ObjectType coerces nested records against an embedded schema.
type ObjectType struct {
	schema *Schema
}

func (t *ObjectType) Name() string { return t.schema.Name() }

// Schema returns the embedded schema.
func (t *ObjectType) Schema() *Schema { return t.schema }

func (t *ObjectType) Coerce(value any) (any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object, got %T", value)
	}
	inst, err := t.schema.Validate(m)
	if err != nil {
		// Already an ErrorList with sub-field paths; the caller re-roots it.
		return nil, err
	}
	return inst, nil
}

// ListType coerces slices of a specific element type. Element failures
// are reported per index, and every element is checked.
type ListType struct {
	elem Type
}

func (t *ListType) Name() string {
	return fmt.Sprintf("[%s]", t.elem.Name())
}

// Elem returns the element type.
func (t *ListType) Elem() Type { return t.elem }

func (t *ListType) Coerce(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected list, got %T", value)
	}

	out := make([]any, rv.Len())
	var errs ErrorList
	for i := 0; i < rv.Len(); i++ {
		coerced, err := t.elem.Coerce(rv.Index(i).Interface())
		if err != nil {
			errs = append(errs, reroot(Path{}.Index(i), err)...)
			continue
		}
		out[i] = coerced
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// --- Factory Functions ---

// String creates a string type.
func String() Type { return &StringType{} }

// Int creates an integer type.
func Int() Type { return &IntType{} }

// Float creates a float type.
func Float() Type { return &FloatType{} }

// Bool creates a boolean type.
func Bool() Type { return &BoolType{} }

// Email creates a string type constrained to syntactically valid email
// addresses.
func Email() Type { return Format("email") }

// Format creates a string type constrained to a named format from the
// default registry. Unknown names are rejected when the schema is built.
func Format(name string) Type { return FormatIn(format.Default(), name) }

// FormatIn creates a format-constrained string type backed by a specific
// registry.
func FormatIn(reg *format.Registry, name string) Type {
	return &FormatType{format: name, registry: reg}
}

// Object creates a nested record type validated against s.
func Object(s *Schema) Type { return &ObjectType{schema: s} }

// List creates a list type for elements of the given type.
func List(elem Type) Type { return &ListType{elem: elem} }

// ParseType converts a string type name to a Type.
// Supports the built-in primitives ("string", "int", "float", "bool"),
// formats registered on the default registry ("email", "url", ...), and
// list forms ("[string]", "[email]", ...). Nested object types have no
// string form; use the JSON schema definition instead.
func ParseType(typeStr string) (Type, error) {
	// Handle list types: [string], [int], etc.
	if len(typeStr) > 2 && typeStr[0] == '[' && typeStr[len(typeStr)-1] == ']' {
		elemType, err := ParseType(typeStr[1 : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return List(elemType), nil
	}

	switch typeStr {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	default:
		if format.Default().Has(typeStr) {
			return Format(typeStr), nil
		}
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}

// checkType verifies that a field type is usable at schema build time,
// so misconfiguration surfaces before any record is validated.
func checkType(t Type) error {
	switch t := t.(type) {
	case nil:
		return fmt.Errorf("type is nil")
	case *FormatType:
		if !t.registry.Has(t.format) {
			return fmt.Errorf("unknown format: %s", t.format)
		}
	case *ListType:
		return checkType(t.elem)
	case *ObjectType:
		if t.schema == nil {
			return fmt.Errorf("object type requires a schema")
		}
	}
	return nil
}
