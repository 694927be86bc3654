package analyze

import (
	"fmt"
	"strings"

	"github.com/2beens/healthdash/internal/healthdata"
	"github.com/2beens/healthdash/internal/trends"
)

const promptIntro = `You are a health and fitness analyst reviewing a person's recent biometric data.
Summarize the most important trends in a few short paragraphs, point out anything
that needs attention, and finish with three specific, actionable recommendations.
Do not give medical diagnoses. Keep the answer under 300 words.`

type promptSection struct {
	title   string
	family  healthdata.Family
	metrics []trends.MetricType
}

var promptSections = []promptSection{
	{
		title:  "Sleep and recovery (Oura ring)",
		family: healthdata.FamilyOura,
		metrics: []trends.MetricType{
			trends.MetricHRV, trends.MetricRestingHeartRate, trends.MetricSleepDuration,
			trends.MetricDeepSleep, trends.MetricSleepEfficiency, trends.MetricSleepDelay,
		},
	},
	{
		title:   "Body composition (Withings scale)",
		family:  healthdata.FamilyWithings,
		metrics: []trends.MetricType{trends.MetricWeight, trends.MetricBodyFat},
	},
	{
		title:   "Running",
		family:  healthdata.FamilyRunning,
		metrics: []trends.MetricType{trends.MetricVO2Max, trends.MetricFiveKTime},
	},
}

// BuildPrompt assembles the analysis prompt: the latest value of every metric
// with its trend label, plus the extra readings that have no trend of their own.
func BuildPrompt(req Request) string {
	families := healthdata.NewFamilies(req.OuraData, req.WithingsData, req.RunningData)

	var sb strings.Builder
	sb.WriteString(promptIntro)
	sb.WriteString("\n")

	for _, section := range promptSections {
		obs := families.Of(section.family)
		if len(obs) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "\n%s, latest reading from %s:\n", section.title, obs[0].Date.Format("2006-01-02"))
		for _, metricType := range section.metrics {
			m, ok := healthdata.LookupMetric(metricType)
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "- %s: %s (trend: %s)\n", m.Title, latestValue(families, m), families.Trend(m).Label)
		}

		switch section.family {
		case healthdata.FamilyOura:
			writeExtraOura(&sb, req.OuraData[0])
		case healthdata.FamilyWithings:
			writeExtraWithings(&sb, req.WithingsData[0])
		}
	}

	sb.WriteString("\nTrends compare the average of the last 3 days with the 7 days before them.\n")
	return sb.String()
}

func latestValue(families healthdata.Families, m healthdata.Metric) string {
	v, ok := families.Latest(m)
	if !ok {
		return "n/a"
	}
	return m.FormatValue(v) + " " + m.Unit
}

func writeExtraOura(sb *strings.Builder, latest healthdata.OuraRecord) {
	if latest.SleepScore != nil {
		fmt.Fprintf(sb, "- Sleep score: %.0f\n", *latest.SleepScore)
	}
	if latest.SpO2Avg != nil {
		fmt.Fprintf(sb, "- Average SpO2: %.1f %%\n", *latest.SpO2Avg)
	}
	if latest.TotalCalories != nil {
		fmt.Fprintf(sb, "- Calories burned: %.0f kcal\n", *latest.TotalCalories)
	}
}

func writeExtraWithings(sb *strings.Builder, latest healthdata.WithingsRecord) {
	if latest.SystolicBP != nil && latest.DiastolicBP != nil {
		fmt.Fprintf(sb, "- Blood pressure: %.0f/%.0f mmHg\n", *latest.SystolicBP, *latest.DiastolicBP)
	}
}
