package healthdata

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/healthdash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListOura(ctx context.Context, limit int) (_ []OuraRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthdata.listOura")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT date, average_hrv, resting_heart_rate, total_sleep, delay, deep_sleep_minutes,
				efficiency, sleep_score, spo2_avg, total_calories
			FROM oura_data
			ORDER BY date DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query oura data: %w", err)
	}
	defer rows.Close()

	var records []OuraRecord
	for rows.Next() {
		var date time.Time
		var rec OuraRecord
		if err := rows.Scan(
			&date, &rec.AverageHRV, &rec.RestingHeartRate, &rec.TotalSleep, &rec.Delay,
			&rec.DeepSleepMinutes, &rec.Efficiency, &rec.SleepScore, &rec.SpO2Avg, &rec.TotalCalories,
		); err != nil {
			return nil, fmt.Errorf("scan oura row: %w", err)
		}
		rec.Date = NewDate(date)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("oura rows: %w", err)
	}

	span.SetAttributes(attribute.Int("rows", len(records)))
	return records, nil
}

func (r *Repo) ListWithings(ctx context.Context, limit int) (_ []WithingsRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthdata.listWithings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT date, weight, fat_ratio, diastolic_bp, systolic_bp
			FROM withings_data
			ORDER BY date DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query withings data: %w", err)
	}
	defer rows.Close()

	var records []WithingsRecord
	for rows.Next() {
		var date time.Time
		var rec WithingsRecord
		if err := rows.Scan(&date, &rec.Weight, &rec.FatRatio, &rec.DiastolicBP, &rec.SystolicBP); err != nil {
			return nil, fmt.Errorf("scan withings row: %w", err)
		}
		rec.Date = NewDate(date)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("withings rows: %w", err)
	}

	span.SetAttributes(attribute.Int("rows", len(records)))
	return records, nil
}

// RunningTableExists reports whether the running_data table was created.
// Running data is optional, and the table is missing on fresh setups.
func (r *Repo) RunningTableExists(ctx context.Context) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthdata.runningTableExists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT to_regclass('public.running_data') IS NOT NULL;`,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("check running table: %w", err)
	}

	return exists, nil
}

func (r *Repo) ListRunning(ctx context.Context, limit int) (_ []RunningRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthdata.listRunning")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT date, vo2_max, five_k_seconds, five_k_minutes
			FROM running_data
			ORDER BY date DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query running data: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RunningRow, error) {
		var date time.Time
		var rr RunningRow
		if err := row.Scan(&date, &rr.VO2Max, &rr.FiveKSeconds, &rr.FiveKMinutes); err != nil {
			return RunningRow{}, err
		}
		rr.Date = NewDate(date)
		return rr, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect running rows: %w", err)
	}

	span.SetAttributes(attribute.Int("rows", len(records)))
	return records, nil
}
