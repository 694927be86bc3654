package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/healthdash/internal/healthdata"
	"github.com/2beens/healthdash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type column struct {
	name  string
	value any
}

func appendFloat(cols []column, name string, v *float64) []column {
	if v == nil {
		return cols
	}
	return append(cols, column{name: name, value: *v})
}

func (d OuraDay) columns() []column {
	var cols []column
	cols = appendFloat(cols, healthdata.FieldAverageHRV, d.AverageHRV)
	cols = appendFloat(cols, healthdata.FieldRestingHeartRate, d.RestingHeartRate)
	cols = appendFloat(cols, healthdata.FieldTotalSleep, d.TotalSleep)
	cols = appendFloat(cols, healthdata.FieldDelay, d.Delay)
	cols = appendFloat(cols, healthdata.FieldDeepSleepMinutes, d.DeepSleepMinutes)
	cols = appendFloat(cols, healthdata.FieldEfficiency, d.Efficiency)
	cols = appendFloat(cols, healthdata.FieldSleepScore, d.SleepScore)
	cols = appendFloat(cols, healthdata.FieldSpO2Avg, d.SpO2Avg)
	cols = appendFloat(cols, healthdata.FieldTotalCalories, d.TotalCalories)
	if d.BedtimeStart != nil {
		cols = append(cols, column{name: "time", value: *d.BedtimeStart})
	}
	return cols
}

func (d WithingsDay) columns() []column {
	var cols []column
	cols = appendFloat(cols, healthdata.FieldWeight, d.Weight)
	cols = appendFloat(cols, healthdata.FieldFatRatio, d.FatRatio)
	cols = appendFloat(cols, healthdata.FieldDiastolicBP, d.DiastolicBP)
	cols = appendFloat(cols, healthdata.FieldSystolicBP, d.SystolicBP)
	return cols
}

// upsertQuery builds an insert of the given columns for day, updating only
// those columns when the day already exists.
func upsertQuery(table string, day time.Time, cols []column) (string, []any) {
	names := make([]string, 0, len(cols)+1)
	placeholders := make([]string, 0, len(cols)+1)
	updates := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)

	names = append(names, "date")
	placeholders = append(placeholders, "$1")
	args = append(args, day.Format("2006-01-02"))

	for i, c := range cols {
		names = append(names, c.name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c.name, c.name))
		args = append(args, c.value)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (date) DO UPDATE SET %s;",
		table,
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)
	return query, args
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
	}
}

// UpsertOura stores the reported fields of day. Returns false when there was nothing to store.
func (s *Store) UpsertOura(ctx context.Context, day time.Time, data OuraDay) (bool, error) {
	return s.upsert(ctx, "oura_data", day, data.columns())
}

// UpsertWithings stores the measured fields of day. Returns false when there was nothing to store.
func (s *Store) UpsertWithings(ctx context.Context, day time.Time, data WithingsDay) (bool, error) {
	return s.upsert(ctx, "withings_data", day, data.columns())
}

func (s *Store) upsert(ctx context.Context, table string, day time.Time, cols []column) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.collector.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("table", table),
		attribute.Int("columns", len(cols)),
	)

	if len(cols) == 0 {
		return false, nil
	}

	query, args := upsertQuery(table, day, cols)
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return false, fmt.Errorf("upsert %s: %w", table, err)
	}
	return true, nil
}
