// Package schema provides declarative validation of untyped nested records.
//
// A Schema is a named, ordered list of field definitions. Validating a raw
// record (map[string]any, the shape of decoded JSON) either produces an
// immutable, typed Instance or a complete list of failures — every bad
// field is reported, not just the first.
//
// Basic usage:
//
//	user, err := schema.New("User",
//	    schema.NewField("id", schema.Int()),
//	    schema.NewField("name", schema.String()),
//	    schema.NewField("email", schema.Email()),
//	)
//
//	inst, err := user.Validate(map[string]any{
//	    "id":    1,
//	    "name":  "Alice",
//	    "email": "alice@example.com",
//	})
//	if err != nil {
//	    for _, fe := range schema.Errors(err) {
//	        // fe.Path, fe.Kind, fe.Message
//	    }
//	}
//
// Schemas compose: Object embeds another schema as a field, List validates
// every element of a slice. Failures inside nested structures surface with
// dotted paths threading the parent field and, for lists, the element
// index ("addresses.1.zip_code").
//
// Custom rules are registered per field at construction time. A validator
// receives the coerced value and may transform it or reject it:
//
//	schema.NewField("name", schema.String(), schema.WithValidator(func(v any) (any, error) {
//	    if len(v.(string)) < 2 {
//	        return nil, errors.New("Name must be at least 2 characters long")
//	    }
//	    return v, nil
//	}))
//
// Validators run only on values that already passed coercion, so a custom
// rule never has to defend against wrong types.
//
// A validated Instance projects back to plain maps with AsMap, decodes
// into caller structs with Decode, and round-trips: re-validating the
// AsMap output yields an equal instance.
package schema
