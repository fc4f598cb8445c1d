package stats

import (
	"encoding/json"
	"math"
)

// Optional is a float64 that may be absent, e.g. the mean of an empty set.
type Optional struct {
	Value float64
	Valid bool
}

// Some returns a present value.
func Some(v float64) Optional {
	return Optional{Value: v, Valid: true}
}

// MarshalJSON encodes an absent value as null.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Summary holds the descriptive statistics of one sequence.
type Summary struct {
	Mean   Optional `json:"mean"`
	StdDev Optional `json:"stddev"`
	Min    Optional `json:"min"`
	Max    Optional `json:"max"`
}

// Mean computes the arithmetic mean. Absent for empty input.
func Mean(values []float64) Optional {
	if len(values) == 0 {
		return Optional{}
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return Some(sum / float64(len(values)))
}

// PopulationStdDev computes sqrt(mean((x - mean)^2)) without Bessel's
// correction. Absent for empty input.
func PopulationStdDev(values []float64) Optional {
	m := Mean(values)
	if !m.Valid {
		return Optional{}
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - m.Value
		sumSq += d * d
	}
	return Some(math.Sqrt(sumSq / float64(len(values))))
}

// MinMax returns the smallest and largest value. Both absent for empty input.
func MinMax(values []float64) (Optional, Optional) {
	if len(values) == 0 {
		return Optional{}, Optional{}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return Some(lo), Some(hi)
}

// Describe computes mean, population stddev, min and max of values.
func Describe(values []float64) Summary {
	lo, hi := MinMax(values)
	return Summary{
		Mean:   Mean(values),
		StdDev: PopulationStdDev(values),
		Min:    lo,
		Max:    hi,
	}
}
