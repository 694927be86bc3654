package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/healthdash/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2"
)

const (
	WithingsAPIBaseURL = "https://wbsapi.withings.net"
	kgToLbs            = 2.20462
)

// withings measure types
const (
	measTypeWeight      = 1
	measTypeFatRatio    = 6
	measTypeDiastolicBP = 9
	measTypeSystolicBP  = 10
)

var ErrWithingsStatus = errors.New("withings status not ok")

// WithingsDay holds the measurements of one day. Nil fields were not measured.
type WithingsDay struct {
	Weight      *float64
	FatRatio    *float64
	DiastolicBP *float64
	SystolicBP  *float64
}

func (d WithingsDay) IsEmpty() bool {
	return d.Weight == nil && d.FatRatio == nil && d.DiastolicBP == nil && d.SystolicBP == nil
}

// withingsEnvelope wraps every Withings API response; the HTTP status is
// always 200 and the outcome is in Status.
type withingsEnvelope struct {
	Status int             `json:"status"`
	Error  string          `json:"error"`
	Body   json.RawMessage `json:"body"`
}

func postWithings(ctx context.Context, httpClient *http.Client, endpoint string, form url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("post %s: status %d", endpoint, resp.StatusCode)
	}

	var envelope withingsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	if envelope.Status != 0 {
		return fmt.Errorf("%w: %d %s", ErrWithingsStatus, envelope.Status, envelope.Error)
	}

	if err := json.Unmarshal(envelope.Body, target); err != nil {
		return fmt.Errorf("decode %s body: %w", endpoint, err)
	}
	return nil
}

// withingsTokenSource refreshes tokens with the Withings "requesttoken" action,
// which is not a standard OAuth2 token endpoint.
type withingsTokenSource struct {
	ctx        context.Context
	baseURL    string
	httpClient *http.Client
	creds      Credentials
}

func (ts *withingsTokenSource) Token() (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("action", "requesttoken")
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", ts.creds.ClientID)
	form.Set("client_secret", ts.creds.ClientSecret)
	form.Set("refresh_token", ts.creds.RefreshToken)

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := postWithings(ts.ctx, ts.httpClient, ts.baseURL+"/v2/oauth2", form, &body); err != nil {
		return nil, fmt.Errorf("refresh withings token: %w", err)
	}
	if body.AccessToken == "" {
		return nil, errors.New("refresh withings token: empty access token")
	}

	// the next refresh must use the rotated token
	if body.RefreshToken != "" {
		ts.creds.RefreshToken = body.RefreshToken
	}

	return &oauth2.Token{
		AccessToken:  body.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: ts.creds.RefreshToken,
		Expiry:       time.Now().Add(time.Duration(body.ExpiresIn) * time.Second),
	}, nil
}

// WithingsClient reads body measurements from the Withings measure API.
type WithingsClient struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
}

func NewWithingsClient(ctx context.Context, creds Credentials, baseURL string) *WithingsClient {
	baseURL = strings.TrimRight(baseURL, "/")
	ts := oauth2.ReuseTokenSource(nil, &withingsTokenSource{
		ctx:        ctx,
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		creds:      creds,
	})
	return &WithingsClient{
		baseURL:     baseURL,
		httpClient:  oauth2.NewClient(ctx, ts),
		tokenSource: ts,
	}
}

func (c *WithingsClient) Token() (*oauth2.Token, error) {
	return c.tokenSource.Token()
}

type withingsMeasures struct {
	MeasureGroups []struct {
		Measures []struct {
			Value int64 `json:"value"`
			Type  int   `json:"type"`
			Unit  int   `json:"unit"`
		} `json:"measures"`
	} `json:"measuregrps"`
}

// Measurements collects weight (lbs), fat ratio and blood pressure measured
// during day (UTC). When a type was measured more than once, the last one wins.
func (c *WithingsClient) Measurements(ctx context.Context, day time.Time) (_ WithingsDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "collector.withings.measurements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	span.SetAttributes(attribute.String("day", start.Format(ouraDayLayout)))

	form := url.Values{}
	form.Set("action", "getmeas")
	form.Set("meastypes", "1,6,9,10")
	form.Set("startdate", strconv.FormatInt(start.Unix(), 10))
	form.Set("enddate", strconv.FormatInt(start.Add(24*time.Hour).Unix(), 10))

	var measures withingsMeasures
	if err := postWithings(ctx, c.httpClient, c.baseURL+"/measure", form, &measures); err != nil {
		return WithingsDay{}, fmt.Errorf("get measurements: %w", err)
	}

	var data WithingsDay
	for _, group := range measures.MeasureGroups {
		for _, m := range group.Measures {
			value := float64(m.Value) * math.Pow10(m.Unit)
			switch m.Type {
			case measTypeWeight:
				data.Weight = floatPtr(math.Trunc(value * kgToLbs))
			case measTypeFatRatio:
				data.FatRatio = floatPtr(math.Round(value*10) / 10)
			case measTypeDiastolicBP:
				data.DiastolicBP = floatPtr(value)
			case measTypeSystolicBP:
				data.SystolicBP = floatPtr(value)
			}
		}
	}

	return data, nil
}
