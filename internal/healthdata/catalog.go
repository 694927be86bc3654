package healthdata

import (
	"strconv"

	"github.com/2beens/healthdash/internal/trends"
)

type Family string

const (
	FamilyOura     Family = "oura"
	FamilyWithings Family = "withings"
	FamilyRunning  Family = "running"
)

// Metric describes one displayed metric: where its values come from,
// how they are classified and how they are formatted.
type Metric struct {
	Type      trends.MetricType
	Family    Family
	Field     string
	Section   string
	Title     string
	Unit      string
	Precision int
	// Format overrides the default precision based formatting.
	Format func(v float64) string
}

func (m Metric) FormatValue(v float64) string {
	if m.Format != nil {
		return m.Format(v)
	}
	return strconv.FormatFloat(v, 'f', m.Precision, 64)
}

const (
	SectionHeart   = "Heart"
	SectionBody    = "Body"
	SectionSleep   = "Sleep"
	SectionRunning = "Running"
)

var catalog = []Metric{
	{Type: trends.MetricHRV, Family: FamilyOura, Field: FieldAverageHRV, Section: SectionHeart, Title: "HRV", Unit: "ms"},
	{Type: trends.MetricRestingHeartRate, Family: FamilyOura, Field: FieldRestingHeartRate, Section: SectionHeart, Title: "Resting HR", Unit: "bpm"},
	{Type: trends.MetricWeight, Family: FamilyWithings, Field: FieldWeight, Section: SectionBody, Title: "Weight", Unit: "lbs", Precision: 1},
	{Type: trends.MetricBodyFat, Family: FamilyWithings, Field: FieldFatRatio, Section: SectionBody, Title: "Body Fat", Unit: "%", Precision: 1},
	{Type: trends.MetricSleepDuration, Family: FamilyOura, Field: FieldTotalSleep, Section: SectionSleep, Title: "Total Sleep", Unit: "h", Precision: 1},
	{Type: trends.MetricDeepSleep, Family: FamilyOura, Field: FieldDeepSleepMinutes, Section: SectionSleep, Title: "Deep Sleep", Unit: "min"},
	{Type: trends.MetricSleepEfficiency, Family: FamilyOura, Field: FieldEfficiency, Section: SectionSleep, Title: "Efficiency", Unit: "%"},
	{Type: trends.MetricSleepDelay, Family: FamilyOura, Field: FieldDelay, Section: SectionSleep, Title: "Delay", Unit: "min"},
	{Type: trends.MetricVO2Max, Family: FamilyRunning, Field: FieldVO2Max, Section: SectionRunning, Title: "VO2 Max", Unit: "ml/kg/min", Precision: 1},
	{Type: trends.MetricFiveKTime, Family: FamilyRunning, Field: FieldFiveKSeconds, Section: SectionRunning, Title: "5K Time", Unit: "min", Format: FormatFiveK},
}

var sectionOrder = []string{SectionHeart, SectionBody, SectionSleep, SectionRunning}

// Catalog returns the displayed metrics, in display order.
func Catalog() []Metric {
	return append([]Metric(nil), catalog...)
}

// Sections returns the section names, in display order.
func Sections() []string {
	return append([]string(nil), sectionOrder...)
}

// LookupMetric finds the catalog entry of a metric type.
func LookupMetric(metricType trends.MetricType) (Metric, bool) {
	for _, m := range catalog {
		if m.Type == metricType {
			return m, true
		}
	}
	return Metric{}, false
}

// Families holds the newest-first observations of all the families.
type Families struct {
	Oura     []trends.Observation
	Withings []trends.Observation
	Running  []trends.Observation
}

func NewFamilies(oura []OuraRecord, withings []WithingsRecord, running []RunningRecord) Families {
	return Families{
		Oura:     OuraObservations(oura),
		Withings: WithingsObservations(withings),
		Running:  RunningObservations(running),
	}
}

func (f Families) Of(family Family) []trends.Observation {
	switch family {
	case FamilyOura:
		return f.Oura
	case FamilyWithings:
		return f.Withings
	case FamilyRunning:
		return f.Running
	default:
		return nil
	}
}

// Latest returns the value of the metric in the newest observation, if any.
func (f Families) Latest(m Metric) (float64, bool) {
	obs := f.Of(m.Family)
	if len(obs) == 0 {
		return 0, false
	}
	return obs[0].Value(m.Field)
}

func (f Families) Trend(m Metric) trends.Trend {
	return trends.Classify(f.Of(m.Family), m.Field, m.Type)
}
