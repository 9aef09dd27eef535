package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lattice/pkg/schema"
)

func TestInstance_AsMapRoundTrip(t *testing.T) {
	user := userSchema(t)

	inst, err := user.Validate(validUserInput())
	require.NoError(t, err)

	dump := inst.AsMap()

	// Re-validating the projection succeeds and yields an equal instance.
	again, err := user.Validate(dump)
	require.NoError(t, err)
	assert.True(t, inst.Equal(again))
	assert.Equal(t, dump, again.AsMap())
}

func TestInstance_AsMapShape(t *testing.T) {
	user := userSchema(t)

	inst, err := user.Validate(validUserInput())
	require.NoError(t, err)

	dump := inst.AsMap()
	assert.Equal(t, 1, dump["id"])
	assert.Equal(t, "Alice", dump["name"])

	addresses, ok := dump["addresses"].([]any)
	require.True(t, ok, "nested instances must project to plain values")
	require.Len(t, addresses, 2)

	first, ok := addresses[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"street":   "123 Main St",
		"city":     "New York",
		"zip_code": "10001",
	}, first)
}

func TestInstance_AsMapOmitsAbsentOptional(t *testing.T) {
	s, err := schema.New("Profile",
		schema.NewField("name", schema.String()),
		schema.NewField("bio", schema.String(), schema.Optional()),
	)
	require.NoError(t, err)

	inst, err := s.Validate(map[string]any{"name": "Alice"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "Alice"}, inst.AsMap())
}

func TestInstance_Decode(t *testing.T) {
	type address struct {
		Street string `mapstructure:"street"`
		City   string `mapstructure:"city"`
		Zip    string `mapstructure:"zip_code"`
	}
	type userRecord struct {
		ID        int       `mapstructure:"id"`
		Name      string    `mapstructure:"name"`
		Email     string    `mapstructure:"email"`
		Addresses []address `mapstructure:"addresses"`
	}

	user := userSchema(t)
	inst, err := user.Validate(validUserInput())
	require.NoError(t, err)

	var rec userRecord
	require.NoError(t, inst.Decode(&rec))

	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "Alice", rec.Name)
	require.Len(t, rec.Addresses, 2)
	assert.Equal(t, "10001", rec.Addresses[0].Zip)
	assert.Equal(t, "Los Angeles", rec.Addresses[1].City)
}

func TestInstance_String(t *testing.T) {
	s, err := schema.New("Point",
		schema.NewField("x", schema.Int()),
		schema.NewField("y", schema.Int()),
	)
	require.NoError(t, err)

	// Rendering follows declaration order, not map iteration order.
	inst, err := s.Validate(map[string]any{"y": 2, "x": 1})
	require.NoError(t, err)
	assert.Equal(t, "Point(x=1, y=2)", inst.String())
}

func TestInstance_Equal(t *testing.T) {
	user := userSchema(t)

	a, err := user.Validate(validUserInput())
	require.NoError(t, err)
	b, err := user.Validate(validUserInput())
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	changed := validUserInput()
	changed["name"] = "Alicia"
	c, err := user.Validate(changed)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestInstance_AsMapIsDetached(t *testing.T) {
	user := userSchema(t)

	inst, err := user.Validate(validUserInput())
	require.NoError(t, err)

	dump := inst.AsMap()
	dump["name"] = "Mallory"
	dump["addresses"].([]any)[0].(map[string]any)["city"] = "Nowhere"

	// Mutating the projection must not reach the instance.
	assert.Equal(t, "Alice", inst.Get("name"))
	fresh := inst.AsMap()
	assert.Equal(t, "New York", fresh["addresses"].([]any)[0].(map[string]any)["city"])
}
