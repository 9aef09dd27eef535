package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	// KindMissing marks a required field absent from the input.
	KindMissing Kind = "missing"
	// KindType marks a raw value that cannot be coerced to the declared type.
	KindType Kind = "type"
	// KindFormat marks a well-typed value that fails a format constraint.
	KindFormat Kind = "format"
	// KindCustom marks a value rejected by a field's custom validator.
	KindCustom Kind = "custom"
)

// Path locates a failure inside a nested record. Segments are field names
// or, for list elements, decimal indices.
type Path []string

// Child returns a copy of p extended with a field name.
func (p Path) Child(name string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, name)
}

// Index returns a copy of p extended with a list element index.
func (p Path) Index(i int) Path {
	return p.Child(strconv.Itoa(i))
}

// join returns p followed by tail, as a fresh slice.
func (p Path) join(tail Path) Path {
	joined := make(Path, 0, len(p)+len(tail))
	joined = append(joined, p...)
	return append(joined, tail...)
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// FieldError represents a single field validation failure.
type FieldError struct {
	Path    Path // Location of the failure within the record
	Kind    Kind // Failure classification
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ErrorList aggregates every failure found in one validation pass, in
// field declaration order. Nested failures carry re-rooted paths.
type ErrorList []*FieldError

func (l ErrorList) Error() string {
	if len(l) == 1 {
		return l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(l))
	for i, err := range l {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Errors returns the individual failures if err is an ErrorList.
// Otherwise returns nil.
func Errors(err error) []*FieldError {
	if list, ok := err.(ErrorList); ok {
		return list
	}
	return nil
}

// FormatError is returned by format-constrained types when a value is the
// right primitive type but does not match the expected format.
type FormatError struct {
	Format  string
	Message string
}

func (e *FormatError) Error() string { return e.Message }
