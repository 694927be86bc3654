package dashboard

import (
	"github.com/2beens/healthdash/internal/healthdata"
	"github.com/2beens/healthdash/internal/trends"
)

const missingValue = "--"

type Card struct {
	Metric    trends.MetricType         `json:"metric"`
	Title     string                    `json:"title"`
	Value     string                    `json:"value"`
	Unit      string                    `json:"unit"`
	Imputed   bool                      `json:"imputed,omitempty"`
	Trend     trends.Trend              `json:"trend"`
	Sparkline []trends.SparklinePoint   `json:"sparkline"`
	Monthly   []trends.MonthlyAggregate `json:"monthly"`
}

type Section struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// BuildSections derives the metric cards from the data, grouped in sections.
// A metric without a latest value shows "--".
func BuildSections(data Data) []Section {
	families := data.Families()

	byName := make(map[string]*Section)
	sections := make([]Section, 0, len(healthdata.Sections()))
	for _, name := range healthdata.Sections() {
		sections = append(sections, Section{Name: name})
	}
	for i := range sections {
		byName[sections[i].Name] = &sections[i]
	}

	for _, m := range healthdata.Catalog() {
		section, ok := byName[m.Section]
		if !ok {
			continue
		}
		section.Cards = append(section.Cards, buildCard(families, m))
	}

	return sections
}

func buildCard(families healthdata.Families, m healthdata.Metric) Card {
	obs := families.Of(m.Family)

	card := Card{
		Metric:    m.Type,
		Title:     m.Title,
		Value:     missingValue,
		Unit:      m.Unit,
		Trend:     trends.Classify(obs, m.Field, m.Type),
		Sparkline: trends.Sparkline(obs, m.Field),
		Monthly:   trends.Monthly(obs, m.Field),
	}
	if v, ok := families.Latest(m); ok {
		card.Value = m.FormatValue(v)
		card.Imputed = obs[0].IsImputed(m.Field)
	}

	return card
}
