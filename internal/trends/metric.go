package trends

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type MetricType string

var ErrUnknownMetric = errors.New("unknown metric type")

const (
	MetricHRV              MetricType = "hrv"
	MetricRestingHeartRate MetricType = "restingHeartRate"
	MetricWeight           MetricType = "weight"
	MetricBodyFat          MetricType = "bodyFat"
	MetricSleepDuration    MetricType = "sleepDuration"
	MetricSleepEfficiency  MetricType = "sleepEfficiency"
	MetricDeepSleep        MetricType = "deepSleep"
	MetricSleepDelay       MetricType = "sleepDelay"
	MetricVO2Max           MetricType = "vo2max"
	MetricFiveKTime        MetricType = "fiveKTime"
)

// older dashboard builds used these tags
var metricAliases = map[string]MetricType{
	"rhr":        MetricRestingHeartRate,
	"sleep":      MetricSleepDuration,
	"efficiency": MetricSleepEfficiency,
	"deep_sleep": MetricDeepSleep,
	"delay":      MetricSleepDelay,
	"5k_time":    MetricFiveKTime,
}

// ParseMetricType resolves a metric tag, canonical or legacy, case-insensitively.
func ParseMetricType(tag string) (MetricType, error) {
	tag = strings.TrimSpace(tag)
	for metric := range policies {
		if strings.EqualFold(string(metric), tag) {
			return metric, nil
		}
	}
	if metric, ok := metricAliases[strings.ToLower(tag)]; ok {
		return metric, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, tag)
}

// MetricTypes returns all known metric types, sorted.
func MetricTypes() []MetricType {
	types := make([]MetricType, 0, len(policies))
	for metric := range policies {
		types = append(types, metric)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})
	return types
}

type policy interface {
	classify(recent, previous float64) Trend
}

// adding a metric is adding a row here
var policies = map[MetricType]policy{
	MetricHRV:              polarity{higherIsBetter: true, upLabel: LabelIncreasing, downLabel: LabelDecreasing},
	MetricVO2Max:           polarity{higherIsBetter: true, upLabel: LabelImproving, downLabel: LabelDeclining},
	MetricRestingHeartRate: polarity{higherIsBetter: false, upLabel: LabelIncreasing, downLabel: LabelDecreasing},
	MetricWeight:           polarity{higherIsBetter: false, upLabel: LabelIncreasing, downLabel: LabelDecreasing},
	MetricBodyFat:          polarity{higherIsBetter: false, upLabel: LabelIncreasing, downLabel: LabelDecreasing},
	MetricFiveKTime:        polarity{higherIsBetter: false, upLabel: LabelSlowing, downLabel: LabelImproving},
	MetricSleepDuration:    band{min: 7.0, max: 8.5},
	MetricSleepEfficiency:  floor{min: 96},
	MetricDeepSleep:        floor{min: 60},
	MetricSleepDelay:       ceiling{max: 20},
}

// polarity labels a metric by the direction of its change.
type polarity struct {
	higherIsBetter bool
	upLabel        string
	downLabel      string
}

func (p polarity) classify(recent, previous float64) Trend {
	if isStable(recent, previous) {
		return Trend{Kind: KindStable, Label: LabelStable}
	}

	increased := recent-previous > 0
	good := increased == p.higherIsBetter
	label := p.downLabel
	if increased {
		label = p.upLabel
	}

	if good {
		return Trend{Kind: KindGood, Label: label}
	}
	return Trend{Kind: KindBad, Label: label}
}

// band is good while the recent average stays within [min, max].
type band struct {
	min, max float64
}

func (b band) classify(recent, _ float64) Trend {
	switch {
	case recent < b.min:
		return Trend{Kind: KindBad, Label: LabelBelowTarget}
	case recent > b.max:
		return Trend{Kind: KindBad, Label: LabelAboveTarget}
	default:
		return Trend{Kind: KindGood, Label: LabelWithinTarget}
	}
}

// floor is good when the recent average reaches min.
type floor struct {
	min float64
}

func (f floor) classify(recent, _ float64) Trend {
	if recent >= f.min {
		return Trend{Kind: KindGood, Label: LabelAboveTarget}
	}
	return Trend{Kind: KindBad, Label: LabelBelowTarget}
}

// ceiling is good while the recent average stays under max (lower is better).
type ceiling struct {
	max float64
}

func (c ceiling) classify(recent, _ float64) Trend {
	if recent < c.max {
		return Trend{Kind: KindGood, Label: LabelWithinTarget}
	}
	return Trend{Kind: KindBad, Label: LabelAboveTarget}
}
