// FILE: configfile/coder.go
package configfile

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ValueCoder converts between a domain type and the string form stored in a
// TagValue. Encode must produce a string that Decode accepts; Decode returns
// a DecodingError when the string is not a valid encoding of T.
type ValueCoder[T any] interface {
	Encode(value T) string
	Decode(encoded string) (T, error)
}

// StringCoder stores strings as-is. Decode never fails.
type StringCoder struct{}

func (StringCoder) Encode(value string) string { return value }

func (StringCoder) Decode(encoded string) (string, error) { return encoded, nil }

// BoolCoder stores booleans as "true"/"false" and accepts anything
// strconv.ParseBool does.
type BoolCoder struct{}

func (BoolCoder) Encode(value bool) string { return strconv.FormatBool(value) }

func (BoolCoder) Decode(encoded string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(encoded))
	if err != nil {
		return false, &DecodingError{Type: "bool", Value: encoded}
	}
	return v, nil
}

// IntCoder stores integers in decimal.
type IntCoder struct{}

func (IntCoder) Encode(value int) string { return strconv.Itoa(value) }

func (IntCoder) Decode(encoded string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(encoded))
	if err != nil {
		return 0, &DecodingError{Type: "int", Value: encoded}
	}
	return v, nil
}

// Float64Coder stores floating-point values in the shortest exact decimal
// form.
type Float64Coder struct{}

func (Float64Coder) Encode(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func (Float64Coder) Decode(encoded string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(encoded), 64)
	if err != nil {
		return 0, &DecodingError{Type: "float64", Value: encoded}
	}
	return v, nil
}

// ListCoder stores slices as a parenthesized, comma-separated list, e.g.
// "(1, 2, 3)". Elements are coded by Elem. Nested parentheses in element
// encodings are respected when splitting.
type ListCoder[T any] struct {
	Elem ValueCoder[T]
}

func (c ListCoder[T]) Encode(values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = c.Elem.Encode(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (c ListCoder[T]) Decode(encoded string) ([]T, error) {
	trimmed := strings.TrimSpace(encoded)
	if len(trimmed) < 2 || trimmed[0] != '(' || trimmed[len(trimmed)-1] != ')' {
		return nil, &DecodingError{Type: "list", Value: encoded}
	}
	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if inner == "" {
		return []T{}, nil
	}

	var values []T
	depth := 0
	start := 0
	for i := 0; i <= len(inner); i++ {
		if i < len(inner) {
			switch inner[i] {
			case '(':
				depth++
				continue
			case ')':
				depth--
				continue
			}
			if inner[i] != ',' || depth != 0 {
				continue
			}
		}
		v, err := c.Elem.Decode(strings.TrimSpace(inner[start:i]))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		start = i + 1
	}
	if depth != 0 {
		return nil, &DecodingError{Type: "list", Value: encoded}
	}
	return values, nil
}

// RetrieveValue decodes the value stored under the given tag path. The
// lookup is strict; a missing section or tag and a malformed stored value
// all surface as errors.
func RetrieveValue[T any](s *Section, path string, coder ValueCoder[T]) (T, error) {
	var zero T
	raw, err := s.RetrieveTagValue(path)
	if err != nil {
		return zero, err
	}
	return coder.Decode(raw)
}

// RetrieveValueDefault decodes the value stored under the given tag path,
// returning defaultValue if the section or tag does not exist. The tree is
// never modified.
func RetrieveValueDefault[T any](s *Section, path string, defaultValue T, coder ValueCoder[T]) (T, error) {
	raw, err := s.RetrieveTagValue(path)
	if err != nil {
		return defaultValue, nil
	}
	return coder.Decode(raw)
}

// UpdateValue decodes the value stored under the given tag path, creating
// missing sections and, if the tag itself is missing, storing the encoded
// defaultValue before returning it.
func UpdateValue[T any](s *Section, path string, defaultValue T, coder ValueCoder[T]) (T, error) {
	raw := s.UpdateTagValue(path, coder.Encode(defaultValue))
	return coder.Decode(raw)
}

// StoreValue encodes a value and stores it under the given tag path,
// creating missing sections and the tag as needed.
func StoreValue[T any](s *Section, path string, value T, coder ValueCoder[T]) {
	s.StoreTagValue(path, coder.Encode(value))
}

// anyCoder is the type-erased form of a ValueCoder kept in a registry.
type anyCoder interface {
	encodeAny(value any) (string, error)
	decodeAny(encoded string) (any, error)
}

type coderAdapter[T any] struct {
	coder ValueCoder[T]
}

func (a coderAdapter[T]) encodeAny(value any) (string, error) {
	v, ok := value.(T)
	if !ok {
		return "", fmt.Errorf("value %v has type %T, not %T", value, value, v)
	}
	return a.coder.Encode(v), nil
}

func (a coderAdapter[T]) decodeAny(encoded string) (any, error) {
	return a.coder.Decode(encoded)
}

// CoderRegistry maps runtime types to value coders for callers that select
// the codec dynamically rather than at the call site.
type CoderRegistry struct {
	coders map[reflect.Type]anyCoder
}

// NewCoderRegistry creates an empty registry.
func NewCoderRegistry() *CoderRegistry {
	return &CoderRegistry{coders: make(map[reflect.Type]anyCoder)}
}

// RegisterCoder adds a coder for T to the registry, replacing any previous
// coder for the same type.
func RegisterCoder[T any](r *CoderRegistry, coder ValueCoder[T]) {
	r.coders[reflect.TypeOf((*T)(nil)).Elem()] = coderAdapter[T]{coder: coder}
}

// Encode converts a value to its string form using the coder registered for
// its dynamic type.
func (r *CoderRegistry) Encode(value any) (string, error) {
	c, ok := r.coders[reflect.TypeOf(value)]
	if !ok {
		return "", fmt.Errorf("no value coder registered for type %T", value)
	}
	return c.encodeAny(value)
}

// Decode converts a string to a value of the given type using the
// registered coder.
func (r *CoderRegistry) Decode(t reflect.Type, encoded string) (any, error) {
	c, ok := r.coders[t]
	if !ok {
		return nil, fmt.Errorf("no value coder registered for type %s", t)
	}
	return c.decodeAny(encoded)
}

// DefaultRegistry holds coders for the basic scalar types.
var DefaultRegistry = NewCoderRegistry()

func init() {
	RegisterCoder[string](DefaultRegistry, StringCoder{})
	RegisterCoder[bool](DefaultRegistry, BoolCoder{})
	RegisterCoder[int](DefaultRegistry, IntCoder{})
	RegisterCoder[float64](DefaultRegistry, Float64Coder{})
	RegisterCoder[[]float64](DefaultRegistry, ListCoder[float64]{Elem: Float64Coder{}})
	RegisterCoder[BrokenLine](DefaultRegistry, BrokenLineCoder{})
}
