package trends

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MinObservations is the least number of observations needed to classify a trend.
	MinObservations = 10
	// RecentWindow and PreviousWindow are the sizes of the compared averages:
	// the 3 newest observations vs. the 7 before them.
	RecentWindow   = 3
	PreviousWindow = 7
	// StableThreshold is the relative change below which a metric is stable.
	StableThreshold = 0.02
)

const (
	LabelInsufficientData = "insufficient data"
	LabelNoData           = "no data"
	LabelStable           = "stable"
	LabelIncreasing       = "increasing"
	LabelDecreasing       = "decreasing"
	LabelImproving        = "improving"
	LabelDeclining        = "declining"
	LabelSlowing          = "slowing"
	LabelWithinTarget     = "within target"
	LabelBelowTarget      = "below target"
	LabelAboveTarget      = "above target"
)

// Kind is the severity of a trend. The presentation layer maps it to colours.
type Kind int

const (
	KindInsufficientData Kind = iota
	KindNeutral
	KindStable
	KindGood
	KindBad
)

var kindNames = map[Kind]string{
	KindInsufficientData: "insufficient_data",
	KindNeutral:          "neutral",
	KindStable:           "stable",
	KindGood:             "good",
	KindBad:              "bad",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown trend kind: %d", int(k))
	}
	return []byte(name), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if strings.EqualFold(name, string(text)) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown trend kind: %s", text)
}

type Trend struct {
	Kind  Kind   `json:"kind"`
	Label string `json:"label"`
}

func InsufficientData() Trend {
	return Trend{Kind: KindInsufficientData, Label: LabelInsufficientData}
}

// Classify computes the trend of field over a newest-first sequence of observations,
// using the classification policy of the given metric type.
//
// The 3 newest values are averaged and compared with the average of the 7 values
// before them. Polarity metrics (HRV, weight, ...) are labeled by the direction of
// the change, or "stable" if it is below 2%. Target metrics (sleep) are judged by
// the recent average alone.
func Classify(obs []Observation, field string, metric MetricType) Trend {
	if len(obs) < MinObservations {
		return InsufficientData()
	}

	recent, ok := Average(obs, field, 0, RecentWindow)
	if !ok {
		return InsufficientData()
	}
	previous, ok := Average(obs, field, RecentWindow, PreviousWindow)
	if !ok {
		return InsufficientData()
	}

	p, ok := policies[metric]
	if !ok {
		return Trend{Kind: KindNeutral, Label: LabelNoData}
	}

	return p.classify(recent, previous)
}

// isStable reports whether the change from previous to recent is below the
// stable threshold. With a zero baseline the relative change is undefined:
// the series is stable only if nothing changed at all, otherwise the sign
// of the difference decides.
func isStable(recent, previous float64) bool {
	diff := recent - previous
	if previous == 0 {
		return diff == 0
	}
	return math.Abs(diff/previous) < StableThreshold
}
