package trends

import (
	"sort"
	"time"
)

type SparklinePoint struct {
	Value   *float64 `json:"value"`
	Imputed bool     `json:"imputed,omitempty"`
}

// Sparkline projects field from a newest-first sequence into a chronological
// (oldest-first) series for charting. Nulls are kept as nil points.
func Sparkline(obs []Observation, field string) []SparklinePoint {
	points := make([]SparklinePoint, 0, len(obs))
	for i := len(obs) - 1; i >= 0; i-- {
		o := obs[i]
		point := SparklinePoint{
			Imputed: o.IsImputed(field),
		}
		if v, ok := o.Value(field); ok {
			point.Value = Float64(v)
		}
		points = append(points, point)
	}
	return points
}

type MonthlyAggregate struct {
	Month   string  `json:"month"` // 2006-01
	Label   string  `json:"label"` // Jan 2006
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Monthly groups observations by calendar month (in UTC) and averages the
// non-null values of field. Months without any value are left out.
// The result is sorted chronologically.
func Monthly(obs []Observation, field string) []MonthlyAggregate {
	type monthAcc struct {
		month time.Time
		sum   float64
		count int
	}

	groups := make(map[string]*monthAcc)
	for _, o := range obs {
		if o.Date.IsZero() {
			continue
		}
		v, ok := o.Value(field)
		if !ok {
			continue
		}

		d := o.Date.UTC()
		key := d.Format("2006-01")
		acc, ok := groups[key]
		if !ok {
			acc = &monthAcc{
				month: time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC),
			}
			groups[key] = acc
		}
		acc.sum += v
		acc.count++
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	aggregates := make([]MonthlyAggregate, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		aggregates = append(aggregates, MonthlyAggregate{
			Month:   key,
			Label:   acc.month.Format("Jan 2006"),
			Average: acc.sum / float64(acc.count),
			Count:   acc.count,
		})
	}

	return aggregates
}
