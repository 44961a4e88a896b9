// FILE: configfile/decode.go
package configfile

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DecodeSection decodes the subtree rooted at s into the target struct or
// map. Field names are matched via the "config" struct tag; string values
// are weakly typed, so numeric and boolean fields decode from their stored
// string form, durations from strings like "30s", and slice fields from
// comma-separated values.
func DecodeSection(s *Section, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(s.ToMap()); err != nil {
		return fmt.Errorf("decode failed for section %q: %w", s.Path(), err)
	}

	return nil
}

// decodeHook returns the composite decode hook for all type conversions
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
		stringToBrokenLineHookFunc(),
	)
}

// stringToBrokenLineHookFunc decodes "(min, deadMin, deadMax, max)" strings
// into BrokenLine fields.
func stringToBrokenLineHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(BrokenLine{}) {
			return data, nil
		}
		return BrokenLineCoder{}.Decode(data.(string))
	}
}
