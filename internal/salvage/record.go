package salvage

import (
	"math"
	"strconv"
	"strings"
)

// RewardRecord is the salvage reward carried by one asset file.
type RewardRecord struct {
	Name            string
	MinInitialValue float64
	MaxInitialValue float64
	MassBasedValue  bool
}

// Unit is "kg" for mass based rewards and "ea" for counted ones.
func (r RewardRecord) Unit() string {
	if r.MassBasedValue {
		return "kg"
	}
	return "ea"
}

// String renders the record as one summary line:
//
//	NAME: XX / ea
//	NAME: XX - YY / kg
//
// The range form is used whenever min and max differ, compared exactly.
func (r RewardRecord) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString(": ")
	b.WriteString(formatValue(r.MinInitialValue))
	if r.MinInitialValue != r.MaxInitialValue {
		b.WriteString(" - ")
		b.WriteString(formatValue(r.MaxInitialValue))
	}
	b.WriteString(" / ")
	b.WriteString(r.Unit())
	return b.String()
}

// formatValue prints the shortest decimal that round-trips, without an
// exponent, so 10.0 is "10" and 0.25 is "0.25".
func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
