// FILE: configfile/type.go
package configfile

// Typed convenience accessors on sections, built on the standard value
// coders. The strict variants fail on a missing tag or a malformed value;
// the Default variants return the supplied default on a missing tag without
// modifying the tree, but still report a malformed stored value.

// String retrieves a string value stored under the given tag path.
func (s *Section) String(path string) (string, error) {
	return RetrieveValue[string](s, path, StringCoder{})
}

// StringDefault retrieves a string value, returning defaultValue if the tag
// does not exist.
func (s *Section) StringDefault(path, defaultValue string) string {
	return s.RetrieveTagValueDefault(path, defaultValue)
}

// Bool retrieves a boolean value stored under the given tag path.
func (s *Section) Bool(path string) (bool, error) {
	return RetrieveValue[bool](s, path, BoolCoder{})
}

// BoolDefault retrieves a boolean value, returning defaultValue if the tag
// does not exist.
func (s *Section) BoolDefault(path string, defaultValue bool) (bool, error) {
	return RetrieveValueDefault[bool](s, path, defaultValue, BoolCoder{})
}

// Int retrieves an integer value stored under the given tag path.
func (s *Section) Int(path string) (int, error) {
	return RetrieveValue[int](s, path, IntCoder{})
}

// IntDefault retrieves an integer value, returning defaultValue if the tag
// does not exist.
func (s *Section) IntDefault(path string, defaultValue int) (int, error) {
	return RetrieveValueDefault[int](s, path, defaultValue, IntCoder{})
}

// Float64 retrieves a floating-point value stored under the given tag path.
func (s *Section) Float64(path string) (float64, error) {
	return RetrieveValue[float64](s, path, Float64Coder{})
}

// Float64Default retrieves a floating-point value, returning defaultValue
// if the tag does not exist.
func (s *Section) Float64Default(path string, defaultValue float64) (float64, error) {
	return RetrieveValueDefault[float64](s, path, defaultValue, Float64Coder{})
}
