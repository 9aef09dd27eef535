package schema

import "fmt"

// Validator is a custom rule bound to a single field. It receives the
// coerced value and returns the value to use, possibly transformed, or an
// error whose message surfaces verbatim in the validation report.
//
// Validators must be pure: the same input always yields the same result.
type Validator func(value any) (any, error)

// Field is one named slot in a schema.
type Field struct {
	Name       string
	Type       Type
	Optional   bool
	Validators []Validator
}

// FieldOption configures a field definition.
type FieldOption func(*Field)

// Optional marks the field as not required. Absent optional fields are
// simply omitted from the resulting instance.
func Optional() FieldOption {
	return func(f *Field) { f.Optional = true }
}

// WithValidator appends a custom validator to the field's chain.
// Validators run in registration order, only after coercion succeeds.
func WithValidator(v Validator) FieldOption {
	return func(f *Field) { f.Validators = append(f.Validators, v) }
}

// NewField builds a field definition.
func NewField(name string, t Type, opts ...FieldOption) Field {
	f := Field{Name: name, Type: t}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Schema is a named, ordered set of field definitions. Build it once with
// New; it is immutable afterwards and safe for concurrent readers.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// New compiles a schema from field definitions.
// It rejects empty names, duplicate fields, nil types, and format types
// whose format is not registered.
func New(name string, fields ...Field) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("schema name is required")
	}

	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d: name is required", i)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("field %s: duplicate name", f.Name)
		}
		if err := checkType(f.Type); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		s.fields[i] = f
		s.index[f.Name] = i
	}
	return s, nil
}

// MustNew is like New but panics on error. Intended for schemas defined
// at package initialization, in the manner of regexp.MustCompile.
func MustNew(name string, fields ...Field) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Fields returns the field definitions in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the definition for name and whether it exists.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}
