package schema

// Validate checks raw against the schema and builds a typed instance.
//
// Fields are processed in declaration order. Every failure across every
// field, including arbitrarily nested objects and lists, is collected;
// the returned error is an ErrorList carrying all of them, never just the
// first. Raw keys not declared in the schema are ignored.
//
// On success the returned Instance holds the coerced (and, where custom
// validators transformed them, rewritten) values. An instance is only
// produced when no field failed.
func (s *Schema) Validate(raw map[string]any) (*Instance, error) {
	values := make(map[string]any, len(s.fields))
	var errs ErrorList

	for _, f := range s.fields {
		path := Path{f.Name}

		value, present := raw[f.Name]
		if !present {
			if !f.Optional {
				errs = append(errs, &FieldError{
					Path:    path,
					Kind:    KindMissing,
					Message: "field is required",
				})
			}
			continue
		}

		coerced, err := f.Type.Coerce(value)
		if err != nil {
			errs = append(errs, reroot(path, err)...)
			continue
		}

		// Custom validators only ever see structurally valid values.
		rejected := false
		for _, v := range f.Validators {
			next, err := v(coerced)
			if err != nil {
				errs = append(errs, &FieldError{
					Path:    path,
					Kind:    KindCustom,
					Message: err.Error(),
				})
				rejected = true
				break
			}
			coerced = next
		}
		if !rejected {
			values[f.Name] = coerced
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &Instance{schema: s, values: values}, nil
}

// reroot converts a coercion error into field errors rooted at base.
// Nested ErrorLists keep their kinds and get base prepended to each path;
// flat errors are classified as format or type failures.
func reroot(base Path, err error) ErrorList {
	switch e := err.(type) {
	case ErrorList:
		out := make(ErrorList, len(e))
		for i, fe := range e {
			out[i] = &FieldError{
				Path:    base.join(fe.Path),
				Kind:    fe.Kind,
				Message: fe.Message,
			}
		}
		return out
	case *FormatError:
		return ErrorList{{Path: base, Kind: KindFormat, Message: e.Message}}
	default:
		return ErrorList{{Path: base, Kind: KindType, Message: err.Error()}}
	}
}
