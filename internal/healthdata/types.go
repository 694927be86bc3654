package healthdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/healthdash/internal/trends"
)

const dateLayout = "2006-01-02"

// column names, used as observation fields too
const (
	FieldAverageHRV       = "average_hrv"
	FieldRestingHeartRate = "resting_heart_rate"
	FieldTotalSleep       = "total_sleep"
	FieldDelay            = "delay"
	FieldDeepSleepMinutes = "deep_sleep_minutes"
	FieldEfficiency       = "efficiency"
	FieldSleepScore       = "sleep_score"
	FieldSpO2Avg          = "spo2_avg"
	FieldTotalCalories    = "total_calories"

	FieldWeight      = "weight"
	FieldFatRatio    = "fat_ratio"
	FieldDiastolicBP = "diastolic_bp"
	FieldSystolicBP  = "systolic_bp"

	FieldVO2Max       = "vo2_max"
	FieldFiveKSeconds = "five_k_seconds"
)

// Date is a calendar day. It is encoded as "2006-01-02", and decoded from
// either that or a full RFC3339 timestamp.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}

	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = Date{Time: t}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date [%s]: %w", s, err)
	}
	*d = NewDate(t)
	return nil
}

type OuraRecord struct {
	Date             Date     `json:"date"`
	AverageHRV       *float64 `json:"average_hrv"`
	RestingHeartRate *float64 `json:"resting_heart_rate"`
	TotalSleep       *float64 `json:"total_sleep"`
	Delay            *float64 `json:"delay"`
	DeepSleepMinutes *float64 `json:"deep_sleep_minutes"`
	Efficiency       *float64 `json:"efficiency"`
	SleepScore       *float64 `json:"sleep_score"`
	SpO2Avg          *float64 `json:"spo2_avg"`
	TotalCalories    *float64 `json:"total_calories"`
}

func (r OuraRecord) Observation() trends.Observation {
	return trends.Observation{
		Date: r.Date.Time,
		Values: map[string]*float64{
			FieldAverageHRV:       r.AverageHRV,
			FieldRestingHeartRate: r.RestingHeartRate,
			FieldTotalSleep:       r.TotalSleep,
			FieldDelay:            r.Delay,
			FieldDeepSleepMinutes: r.DeepSleepMinutes,
			FieldEfficiency:       r.Efficiency,
			FieldSleepScore:       r.SleepScore,
			FieldSpO2Avg:          r.SpO2Avg,
			FieldTotalCalories:    r.TotalCalories,
		},
	}
}

type WithingsRecord struct {
	Date        Date     `json:"date"`
	Weight      *float64 `json:"weight"`
	FatRatio    *float64 `json:"fat_ratio"`
	DiastolicBP *float64 `json:"diastolic_bp"`
	SystolicBP  *float64 `json:"systolic_bp"`
}

func (r WithingsRecord) Observation() trends.Observation {
	return trends.Observation{
		Date: r.Date.Time,
		Values: map[string]*float64{
			FieldWeight:      r.Weight,
			FieldFatRatio:    r.FatRatio,
			FieldDiastolicBP: r.DiastolicBP,
			FieldSystolicBP:  r.SystolicBP,
		},
	}
}

// RunningRecord is a running row after the gaps were filled.
type RunningRecord struct {
	Date           Date        `json:"date"`
	VO2Max         FilledValue `json:"vo2_max"`
	FiveKSeconds   FilledValue `json:"five_k_seconds"`
	FiveKFormatted string      `json:"five_k_formatted,omitempty"`
}

func (r RunningRecord) Observation() trends.Observation {
	return trends.Observation{
		Date: r.Date.Time,
		Values: map[string]*float64{
			FieldVO2Max:       r.VO2Max.Value,
			FieldFiveKSeconds: r.FiveKSeconds.Value,
		},
		Imputed: map[string]bool{
			FieldVO2Max:       r.VO2Max.Imputed,
			FieldFiveKSeconds: r.FiveKSeconds.Imputed,
		},
	}
}

// RunningRow is a raw running_data row. Older rows carry the 5K time
// in minutes instead of seconds.
type RunningRow struct {
	Date         Date
	VO2Max       *float64
	FiveKSeconds *float64
	FiveKMinutes *float64
}

// FilledValue is a nullable measurement, flagged when it was carried
// forward from a newer row instead of measured.
type FilledValue struct {
	Value   *float64 `json:"value"`
	Imputed bool     `json:"imputed"`
}

func Measured(v float64) FilledValue {
	return FilledValue{Value: &v}
}

// UnmarshalJSON accepts the object form, and also a bare number or null,
// as sent by older clients.
func (fv *FilledValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*fv = FilledValue{}
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		type plain FilledValue
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("filled value: %w", err)
		}
		*fv = FilledValue(p)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("filled value: %w", err)
	}
	*fv = Measured(v)
	return nil
}

func OuraObservations(records []OuraRecord) []trends.Observation {
	obs := make([]trends.Observation, len(records))
	for i := range records {
		obs[i] = records[i].Observation()
	}
	return obs
}

func WithingsObservations(records []WithingsRecord) []trends.Observation {
	obs := make([]trends.Observation, len(records))
	for i := range records {
		obs[i] = records[i].Observation()
	}
	return obs
}

func RunningObservations(records []RunningRecord) []trends.Observation {
	obs := make([]trends.Observation, len(records))
	for i := range records {
		obs[i] = records[i].Observation()
	}
	return obs
}
