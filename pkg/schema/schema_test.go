package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lattice/pkg/schema"
)

func TestNew_RejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name   string
		schema string
		fields []schema.Field
	}{
		{"empty schema name", "", []schema.Field{schema.NewField("id", schema.Int())}},
		{"empty field name", "User", []schema.Field{schema.NewField("", schema.Int())}},
		{"nil type", "User", []schema.Field{schema.NewField("id", nil)}},
		{"duplicate field", "User", []schema.Field{
			schema.NewField("id", schema.Int()),
			schema.NewField("id", schema.String()),
		}},
		{"unknown format", "User", []schema.Field{
			schema.NewField("when", schema.Format("datetime")),
		}},
		{"unknown format in list", "User", []schema.Field{
			schema.NewField("whens", schema.List(schema.Format("datetime"))),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := schema.New(tc.schema, tc.fields...)
			assert.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestNew_PreservesDeclarationOrder(t *testing.T) {
	s, err := schema.New("Ordered",
		schema.NewField("c", schema.Int()),
		schema.NewField("a", schema.Int()),
		schema.NewField("b", schema.Int()),
	)
	require.NoError(t, err)

	fields := s.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "c", fields[0].Name)
	assert.Equal(t, "a", fields[1].Name)
	assert.Equal(t, "b", fields[2].Name)
}

func TestSchema_FieldLookup(t *testing.T) {
	s, err := schema.New("User",
		schema.NewField("id", schema.Int()),
		schema.NewField("bio", schema.String(), schema.Optional()),
	)
	require.NoError(t, err)

	f, ok := s.Field("bio")
	require.True(t, ok)
	assert.True(t, f.Optional)
	assert.Equal(t, "string", f.Type.Name())

	_, ok = s.Field("missing")
	assert.False(t, ok)
}

func TestMustNew_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		schema.MustNew("User", schema.NewField("id", nil))
	})
	assert.NotPanics(t, func() {
		schema.MustNew("User", schema.NewField("id", schema.Int()))
	})
}
