package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/healthdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
	"golang.org/x/oauth2"
)

const (
	OuraAPIBaseURL  = "https://api.ouraring.com"
	ouraDayLayout   = "2006-01-02"
	ouraErrBodySize = 1024
)

type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// OuraDay is what the Oura API reports for one day. Nil fields were not reported.
type OuraDay struct {
	SleepScore       *float64
	DeepSleepMinutes *float64
	TotalSleep       *float64
	Delay            *float64
	RestingHeartRate *float64
	AverageHRV       *float64
	Efficiency       *float64
	SpO2Avg          *float64
	TotalCalories    *float64
	// BedtimeStart is the time of day (15:04:05) the main sleep session started.
	BedtimeStart *string
}

// OuraClient reads the Oura v2 user collection API. The access token is
// obtained, and refreshed, from the refresh token.
type OuraClient struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
}

// NewOuraClient builds a client for the given API base URL. The Oura token
// endpoint is <baseURL>/oauth/token, with the client credentials sent as basic auth.
func NewOuraClient(ctx context.Context, creds Credentials, baseURL string) *OuraClient {
	baseURL = strings.TrimRight(baseURL, "/")
	oauthCfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  baseURL + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	return &OuraClient{
		baseURL:     baseURL,
		httpClient:  oauth2.NewClient(ctx, ts),
		tokenSource: ts,
	}
}

// Token returns the current token; its refresh token may have been rotated.
func (c *OuraClient) Token() (*oauth2.Token, error) {
	return c.tokenSource.Token()
}

type ouraResponse[T any] struct {
	Data []T `json:"data"`
}

type ouraDailySleep struct {
	Day   string   `json:"day"`
	Score *float64 `json:"score"`
}

type ouraSleepSession struct {
	Day                string   `json:"day"`
	DeepSleepDuration  *float64 `json:"deep_sleep_duration"`
	TotalSleepDuration *float64 `json:"total_sleep_duration"`
	Latency            *float64 `json:"latency"`
	LowestHeartRate    *float64 `json:"lowest_heart_rate"`
	AverageHRV         *float64 `json:"average_hrv"`
	Efficiency         *float64 `json:"efficiency"`
	BedtimeStart       string   `json:"bedtime_start"`
}

type ouraDailySpO2 struct {
	Day            string `json:"day"`
	SpO2Percentage *struct {
		Average *float64 `json:"average"`
	} `json:"spo2_percentage"`
}

type ouraDailyActivity struct {
	Day           string   `json:"day"`
	TotalCalories *float64 `json:"total_calories"`
}

// Sleep collects the sleep data of the night ending on day: the daily sleep
// score, the main sleep session and SpO2. A failing part does not stop the
// others; the returned error combines the failures.
func (c *OuraClient) Sleep(ctx context.Context, day time.Time) (_ OuraDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "collector.oura.sleep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	dayStr := day.Format(ouraDayLayout)
	span.SetAttributes(attribute.String("day", dayStr))

	var data OuraDay

	var dailySleep ouraResponse[ouraDailySleep]
	if fetchErr := c.get(ctx, "/v2/usercollection/daily_sleep", dayStr, dayStr, &dailySleep); fetchErr != nil {
		err = multierr.Append(err, fmt.Errorf("daily sleep: %w", fetchErr))
	} else if len(dailySleep.Data) > 0 {
		data.SleepScore = dailySleep.Data[0].Score
	} else {
		log.Infof("oura: no daily sleep summary for %s", dayStr)
	}

	// the main session of the night is recorded on the day it ends, but may start the day before
	var sessions ouraResponse[ouraSleepSession]
	sessionStart := day.AddDate(0, 0, -1).Format(ouraDayLayout)
	if fetchErr := c.get(ctx, "/v2/usercollection/sleep", sessionStart, dayStr, &sessions); fetchErr != nil {
		err = multierr.Append(err, fmt.Errorf("sleep sessions: %w", fetchErr))
	} else if session, ok := findDay(sessions.Data, dayStr, func(s ouraSleepSession) string { return s.Day }); ok {
		applySleepSession(&data, session)
	} else {
		log.Infof("oura: no main sleep session for %s", dayStr)
	}

	var spo2 ouraResponse[ouraDailySpO2]
	if fetchErr := c.get(ctx, "/v2/usercollection/daily_spo2", dayStr, dayStr, &spo2); fetchErr != nil {
		err = multierr.Append(err, fmt.Errorf("daily spo2: %w", fetchErr))
	} else if len(spo2.Data) > 0 && spo2.Data[0].SpO2Percentage != nil {
		data.SpO2Avg = spo2.Data[0].SpO2Percentage.Average
	} else {
		log.Infof("oura: no spo2 data for %s", dayStr)
	}

	return data, err
}

// Activity collects the daily activity (total calories) of day.
func (c *OuraClient) Activity(ctx context.Context, day time.Time) (_ OuraDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "collector.oura.activity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	dayStr := day.Format(ouraDayLayout)
	span.SetAttributes(attribute.String("day", dayStr))

	// the API filters activity days by their end, so ask for a wider range
	var activity ouraResponse[ouraDailyActivity]
	if err := c.get(
		ctx,
		"/v2/usercollection/daily_activity",
		day.AddDate(0, 0, -1).Format(ouraDayLayout),
		day.AddDate(0, 0, 1).Format(ouraDayLayout),
		&activity,
	); err != nil {
		return OuraDay{}, fmt.Errorf("daily activity: %w", err)
	}

	var data OuraDay
	if a, ok := findDay(activity.Data, dayStr, func(a ouraDailyActivity) string { return a.Day }); ok {
		data.TotalCalories = a.TotalCalories
	} else {
		log.Infof("oura: no daily activity for %s", dayStr)
	}
	return data, nil
}

func applySleepSession(data *OuraDay, s ouraSleepSession) {
	if s.DeepSleepDuration != nil {
		data.DeepSleepMinutes = floatPtr(math.Trunc(*s.DeepSleepDuration / 60))
	}
	if s.TotalSleepDuration != nil {
		data.TotalSleep = floatPtr(*s.TotalSleepDuration / 3600)
	}
	if s.Latency != nil {
		data.Delay = floatPtr(math.Trunc(*s.Latency / 60))
	}
	data.RestingHeartRate = s.LowestHeartRate
	data.AverageHRV = s.AverageHRV
	data.Efficiency = s.Efficiency

	if s.BedtimeStart != "" {
		if t, err := time.Parse(time.RFC3339, s.BedtimeStart); err == nil {
			bedtime := t.Format("15:04:05")
			data.BedtimeStart = &bedtime
		} else {
			log.Warnf("oura: invalid bedtime start [%s]: %s", s.BedtimeStart, err)
		}
	}
}

func findDay[T any](items []T, day string, dayOf func(T) string) (T, bool) {
	for _, item := range items {
		if dayOf(item) == day {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *OuraClient) get(ctx context.Context, path, startDate, endDate string, target any) error {
	params := url.Values{}
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, ouraErrBodySize))
		return fmt.Errorf("get %s: status %d: %s", path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// IsEmpty reports whether nothing was reported for the day.
func (d OuraDay) IsEmpty() bool {
	return len(d.columns()) == 0
}

// Merge returns d with the fields reported by other filled in.
func (d OuraDay) Merge(other OuraDay) OuraDay {
	pick := func(a, b *float64) *float64 {
		if b != nil {
			return b
		}
		return a
	}
	d.SleepScore = pick(d.SleepScore, other.SleepScore)
	d.DeepSleepMinutes = pick(d.DeepSleepMinutes, other.DeepSleepMinutes)
	d.TotalSleep = pick(d.TotalSleep, other.TotalSleep)
	d.Delay = pick(d.Delay, other.Delay)
	d.RestingHeartRate = pick(d.RestingHeartRate, other.RestingHeartRate)
	d.AverageHRV = pick(d.AverageHRV, other.AverageHRV)
	d.Efficiency = pick(d.Efficiency, other.Efficiency)
	d.SpO2Avg = pick(d.SpO2Avg, other.SpO2Avg)
	d.TotalCalories = pick(d.TotalCalories, other.TotalCalories)
	if other.BedtimeStart != nil {
		d.BedtimeStart = other.BedtimeStart
	}
	return d
}

func floatPtr(v float64) *float64 {
	return &v
}
