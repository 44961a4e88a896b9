// FILE: configfile/brokenline.go
package configfile

// BrokenLine maps a raw device axis value to the normalized range [-1, 1]
// through a piecewise-linear function with a dead zone: values between
// DeadMin and DeadMax map to 0, values toward Min map linearly to -1, and
// values toward Max map linearly to +1.
type BrokenLine struct {
	Min     float64
	DeadMin float64
	DeadMax float64
	Max     float64
}

// Map applies the broken-line function to a raw value, clamped to [-1, 1].
func (b BrokenLine) Map(v float64) float64 {
	switch {
	case v < b.DeadMin:
		if b.DeadMin <= b.Min {
			return -1
		}
		r := (v - b.DeadMin) / (b.DeadMin - b.Min)
		if r < -1 {
			return -1
		}
		return r
	case v > b.DeadMax:
		if b.Max <= b.DeadMax {
			return 1
		}
		r := (v - b.DeadMax) / (b.Max - b.DeadMax)
		if r > 1 {
			return 1
		}
		return r
	default:
		return 0
	}
}

// BrokenLineCoder encodes a BrokenLine as a list of its four breakpoints,
// e.g. "(0, 120, 136, 255)".
type BrokenLineCoder struct{}

func (BrokenLineCoder) Encode(value BrokenLine) string {
	return ListCoder[float64]{Elem: Float64Coder{}}.Encode([]float64{
		value.Min, value.DeadMin, value.DeadMax, value.Max,
	})
}

func (BrokenLineCoder) Decode(encoded string) (BrokenLine, error) {
	values, err := ListCoder[float64]{Elem: Float64Coder{}}.Decode(encoded)
	if err != nil {
		return BrokenLine{}, err
	}
	if len(values) != 4 {
		return BrokenLine{}, &DecodingError{Type: "broken line", Value: encoded}
	}
	return BrokenLine{Min: values[0], DeadMin: values[1], DeadMax: values[2], Max: values[3]}, nil
}
