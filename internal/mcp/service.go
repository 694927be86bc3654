package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/healthdash/internal/dashboard"
	"github.com/2beens/healthdash/internal/healthdata"
	"github.com/2beens/healthdash/internal/trends"
)

var ErrUnknownSection = errors.New("unknown section")

// HealthService reads the health data families (for dependency injection and testing).
type HealthService interface {
	Oura(ctx context.Context) ([]healthdata.OuraRecord, error)
	Withings(ctx context.Context) ([]healthdata.WithingsRecord, error)
	Running(ctx context.Context) ([]healthdata.RunningRecord, bool)
}

// contextService provides the health context data (schema, cards, trends).
// Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetCards(ctx context.Context, section string) ([]dashboard.Section, error)
	GetMetricTrend(ctx context.Context, metric trends.MetricType) (*MetricTrend, error)
	GetMonthlyAverages(ctx context.Context, metric trends.MetricType) (*MonthlyAverages, error)
}

// MetricTrend is the trend of one metric with the averages it was derived from.
type MetricTrend struct {
	Metric          trends.MetricType `json:"metric"`
	Title           string            `json:"title"`
	Unit            string            `json:"unit"`
	Latest          string            `json:"latest"`
	Trend           trends.Trend      `json:"trend"`
	RecentAverage   *float64          `json:"recent_average"`
	PreviousAverage *float64          `json:"previous_average"`
	Observations    int               `json:"observations"`
}

type MonthlyAverages struct {
	Metric  trends.MetricType         `json:"metric"`
	Title   string                    `json:"title"`
	Unit    string                    `json:"unit"`
	Monthly []trends.MonthlyAggregate `json:"monthly"`
}

// ContextService holds dependencies and implements the health context logic.
type ContextService struct {
	schema SchemaRepo
	health HealthService
}

func NewContextService(schemaRepo SchemaRepo, health HealthService) *ContextService {
	return &ContextService{
		schema: schemaRepo,
		health: health,
	}
}

// GetSchema returns the DB schema (table names, columns, types) of the health tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetHealthColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatHealthSchema(cols), nil
}

func formatHealthSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Health DB Schema\n\nNo health tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Health DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(healthTables, ", "))
	b.WriteString(" (schema: public). One row per day, keyed by date.\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// GetCards returns the dashboard cards, optionally only the ones of one section.
func (s *ContextService) GetCards(ctx context.Context, section string) ([]dashboard.Section, error) {
	data, _, err := dashboard.LoadData(ctx, s.health)
	if err != nil {
		return nil, err
	}

	sections := dashboard.BuildSections(data)
	if section == "" {
		return sections, nil
	}
	for _, sec := range sections {
		if strings.EqualFold(sec.Name, section) {
			return []dashboard.Section{sec}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
}

func (s *ContextService) metricObservations(ctx context.Context, metric trends.MetricType) (healthdata.Metric, []trends.Observation, error) {
	m, ok := healthdata.LookupMetric(metric)
	if !ok {
		return healthdata.Metric{}, nil, fmt.Errorf("%w: %s", trends.ErrUnknownMetric, metric)
	}

	var obs []trends.Observation
	switch m.Family {
	case healthdata.FamilyOura:
		records, err := s.health.Oura(ctx)
		if err != nil {
			return m, nil, err
		}
		obs = healthdata.OuraObservations(records)
	case healthdata.FamilyWithings:
		records, err := s.health.Withings(ctx)
		if err != nil {
			return m, nil, err
		}
		obs = healthdata.WithingsObservations(records)
	case healthdata.FamilyRunning:
		records, _ := s.health.Running(ctx)
		obs = healthdata.RunningObservations(records)
	}

	return m, obs, nil
}

// GetMetricTrend classifies the trend of one metric.
func (s *ContextService) GetMetricTrend(ctx context.Context, metric trends.MetricType) (*MetricTrend, error) {
	m, obs, err := s.metricObservations(ctx, metric)
	if err != nil {
		return nil, err
	}

	result := &MetricTrend{
		Metric:       m.Type,
		Title:        m.Title,
		Unit:         m.Unit,
		Latest:       "--",
		Trend:        trends.Classify(obs, m.Field, m.Type),
		Observations: len(obs),
	}
	if len(obs) > 0 {
		if v, ok := obs[0].Value(m.Field); ok {
			result.Latest = m.FormatValue(v)
		}
	}
	if avg, ok := trends.Average(obs, m.Field, 0, trends.RecentWindow); ok {
		result.RecentAverage = trends.Float64(avg)
	}
	if avg, ok := trends.Average(obs, m.Field, trends.RecentWindow, trends.PreviousWindow); ok {
		result.PreviousAverage = trends.Float64(avg)
	}

	return result, nil
}

// GetMonthlyAverages returns the per month averages of one metric.
func (s *ContextService) GetMonthlyAverages(ctx context.Context, metric trends.MetricType) (*MonthlyAverages, error) {
	m, obs, err := s.metricObservations(ctx, metric)
	if err != nil {
		return nil, err
	}
	return &MonthlyAverages{
		Metric:  m.Type,
		Title:   m.Title,
		Unit:    m.Unit,
		Monthly: trends.Monthly(obs, m.Field),
	}, nil
}
