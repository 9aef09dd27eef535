package schema

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/lattice/pkg/format"
)

// Wire form of a schema definition. Custom validators are functions and
// are not part of it; a deserialized schema carries structure only.
type schemaDef struct {
	Name   string     `json:"name"`
	Fields []fieldDef `json:"fields"`
}

type fieldDef struct {
	Name     string  `json:"name"`
	Type     typeDef `json:"type"`
	Optional bool    `json:"optional,omitempty"`
}

type typeDef struct {
	Kind   string     `json:"kind"`
	Elem   *typeDef   `json:"elem,omitempty"`
	Schema *schemaDef `json:"schema,omitempty"`
}

// MarshalJSON serializes the schema definition, including nested object
// schemas and list element types.
func (s *Schema) MarshalJSON() ([]byte, error) {
	def, err := describeSchema(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(def)
}

// UnmarshalJSON deserializes a schema definition. Custom validators
// cannot be reconstructed and custom format registries are replaced by
// the default registry.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var def schemaDef
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}

	parsed, err := buildSchema(&def)
	if err != nil {
		return err
	}

	*s = *parsed
	return nil
}

func describeSchema(s *Schema) (*schemaDef, error) {
	def := &schemaDef{Name: s.name, Fields: make([]fieldDef, len(s.fields))}
	for i, f := range s.fields {
		td, err := describeType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		def.Fields[i] = fieldDef{Name: f.Name, Type: *td, Optional: f.Optional}
	}
	return def, nil
}

func describeType(t Type) (*typeDef, error) {
	switch t := t.(type) {
	case *StringType:
		return &typeDef{Kind: "string"}, nil
	case *IntType:
		return &typeDef{Kind: "int"}, nil
	case *FloatType:
		return &typeDef{Kind: "float"}, nil
	case *BoolType:
		return &typeDef{Kind: "bool"}, nil
	case *FormatType:
		return &typeDef{Kind: t.format}, nil
	case *ListType:
		elem, err := describeType(t.elem)
		if err != nil {
			return nil, err
		}
		return &typeDef{Kind: "list", Elem: elem}, nil
	case *ObjectType:
		nested, err := describeSchema(t.schema)
		if err != nil {
			return nil, err
		}
		return &typeDef{Kind: "object", Schema: nested}, nil
	case nil:
		return nil, fmt.Errorf("type is nil")
	default:
		return nil, fmt.Errorf("cannot serialize type %s", t.Name())
	}
}

func buildSchema(def *schemaDef) (*Schema, error) {
	fields := make([]Field, len(def.Fields))
	for i, fd := range def.Fields {
		t, err := buildType(&fd.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}
		fields[i] = Field{Name: fd.Name, Type: t, Optional: fd.Optional}
	}
	return New(def.Name, fields...)
}

func buildType(def *typeDef) (Type, error) {
	switch def.Kind {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	case "list":
		if def.Elem == nil {
			return nil, fmt.Errorf("list type requires an element type")
		}
		elem, err := buildType(def.Elem)
		if err != nil {
			return nil, err
		}
		return List(elem), nil
	case "object":
		if def.Schema == nil {
			return nil, fmt.Errorf("object type requires a schema")
		}
		nested, err := buildSchema(def.Schema)
		if err != nil {
			return nil, err
		}
		return Object(nested), nil
	default:
		if format.Default().Has(def.Kind) {
			return Format(def.Kind), nil
		}
		return nil, fmt.Errorf("unsupported type: %s", def.Kind)
	}
}
