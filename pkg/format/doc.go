// Package format provides named syntactic checks for string fields.
//
// A Registry maps format names ("email", "url", ...) to check functions.
// The shared Default registry covers the common formats; domain-specific
// formats can be registered on it, or kept in a private registry and bound
// to a schema with schema.FormatIn.
package format
