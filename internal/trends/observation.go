package trends

import (
	"math"
	"time"
)

// Observation is a single daily row of one metric family: a date plus
// nullable numeric values keyed by metric (column) name.
// Sequences of observations are kept newest-first, the way they are stored.
type Observation struct {
	Date    time.Time
	Values  map[string]*float64
	Imputed map[string]bool
}

// Value returns the value of the given field, and false if the field
// is missing, null or NaN.
func (o Observation) Value(field string) (float64, bool) {
	v, ok := o.Values[field]
	if !ok || v == nil || math.IsNaN(*v) {
		return 0, false
	}
	return *v, true
}

// IsImputed reports whether the field value was carried forward
// rather than measured.
func (o Observation) IsImputed(field string) bool {
	return o.Imputed[field]
}

// Float64 returns a pointer to v. Handy when building nullable values.
func Float64(v float64) *float64 {
	return &v
}

// Average returns the arithmetic mean of the non-null values of field in
// obs[start : start+count]. Returns false when the slice holds no usable value.
func Average(obs []Observation, field string, start, count int) (float64, bool) {
	if len(obs) == 0 || count <= 0 || start < 0 || start >= len(obs) {
		return 0, false
	}

	end := min(start+count, len(obs))
	var sum float64
	var n int
	for _, o := range obs[start:end] {
		if v, ok := o.Value(field); ok {
			sum += v
			n++
		}
	}

	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// CarryForward fills the gaps of a newest-first series with its most recent
// non-null value. The returned flags mark which entries were filled.
// If the series has no value at all, it is returned unchanged.
func CarryForward(values []*float64) ([]*float64, []bool) {
	filled := make([]*float64, len(values))
	imputed := make([]bool, len(values))

	var lastValid *float64
	for _, v := range values {
		if v != nil && !math.IsNaN(*v) {
			lastValid = v
			break
		}
	}

	for i, v := range values {
		if v != nil && !math.IsNaN(*v) {
			filled[i] = v
			continue
		}
		if lastValid == nil {
			continue
		}
		filled[i] = Float64(*lastValid)
		imputed[i] = true
	}

	return filled, imputed
}
