//go:build integration

package internal_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/2beens/healthdash/internal"
	"github.com/2beens/healthdash/internal/collector"
	"github.com/2beens/healthdash/internal/config"
	"github.com/2beens/healthdash/internal/dashboard"
	"github.com/2beens/healthdash/internal/trends"
	testingpkg "github.com/2beens/healthdash/pkg/testing"
)

const (
	serverPort = 19000
	serverHost = "127.0.0.1"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type IntegrationTestSuite struct {
	suite.Suite

	containers   *testingpkg.Containers
	dbPool       *pgxpool.Pool
	gateway      *httptest.Server
	gatewayCalls atomic.Int32
	server       *internal.Server
	client       *dashboard.Client
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	var err error
	s.containers, err = testingpkg.StartContainers(ctx)
	s.Require().NoError(err)

	s.gateway = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.gatewayCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"response":"Your HRV is improving while resting heart rate drops."},"success":true}`))
	}))

	cfg := &config.Config{
		Host:                   serverHost,
		Port:                   serverPort,
		PostgresHost:           "localhost",
		PostgresPort:           s.containers.PostgresPort,
		PostgresDBName:         testingpkg.PostgresDBName,
		RunMigrations:          true,
		RedisHost:              "localhost",
		RedisPort:              s.containers.RedisPort,
		PrometheusMetricsHost:  serverHost,
		PrometheusMetricsPort:  "19001",
		QueryLimit:             30,
		ResponseCacheSeconds:   300,
		AIGatewayBaseURL:       s.gateway.URL,
		AIGatewayID:            "test/gateway",
		AIModel:                "test-model",
		AIGatewayTimeout:       10 * time.Second,
		AnalysisCacheTTL:       time.Hour,
		AnalyzeRateLimitPerMin: 100,
	}

	s.server, err = internal.NewServer(ctx, internal.NewServerParams{
		Config:         cfg,
		AIGatewayToken: "test-token",
	})
	s.Require().NoError(err)

	s.dbPool, err = pgxpool.New(ctx, s.containers.PostgresConnString())
	s.Require().NoError(err)
	s.seed(ctx)

	s.server.Serve(cfg.Host, cfg.Port)
	s.client = dashboard.NewClient(serverEndpoint, nil)

	s.Require().Eventually(func() bool {
		resp, err := http.Get(serverEndpoint + "/api/withings")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond)
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.gateway != nil {
		s.gateway.Close()
	}
	if s.containers != nil {
		s.containers.Close()
	}
}

func ptr(v float64) *float64 {
	return &v
}

// seed stores 14 days through the collector store, the newest 3 days with
// a clearly higher HRV.
func (s *IntegrationTestSuite) seed(ctx context.Context) {
	store := collector.NewStore(s.dbPool)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := range 14 {
		day := today.AddDate(0, 0, -i)
		hrv := 45.0
		if i < trends.RecentWindow {
			hrv = 60
		}
		stored, err := store.UpsertOura(ctx, day, collector.OuraDay{
			AverageHRV:       ptr(hrv),
			RestingHeartRate: ptr(52),
			TotalSleep:       ptr(7.4),
			Efficiency:       ptr(91),
		})
		s.Require().NoError(err)
		s.Require().True(stored)

		_, err = store.UpsertWithings(ctx, day, collector.WithingsDay{
			Weight:   ptr(176 - float64(i)*0.1),
			FatRatio: ptr(18.5),
		})
		s.Require().NoError(err)
	}

	_, err := s.dbPool.Exec(ctx,
		"INSERT INTO running_data (date, vo2_max, five_k_seconds) VALUES ($1, 44.1, 1470), ($2, 43.8, NULL);",
		today.Format(time.DateOnly), today.AddDate(0, 0, -7).Format(time.DateOnly),
	)
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) TestHealthDataEndpoints() {
	ctx := context.Background()

	oura, err := s.client.FetchOura(ctx)
	s.Require().NoError(err)
	s.Len(oura, 14)
	s.Equal(60.0, *oura[0].AverageHRV)
	s.True(oura[0].Date.After(oura[1].Date.Time))

	withings, err := s.client.FetchWithings(ctx)
	s.Require().NoError(err)
	s.Len(withings, 14)

	running, err := s.client.FetchRunning(ctx)
	s.Require().NoError(err)
	s.Require().Len(running, 2)
	s.Equal("24:30", running[0].FiveKFormatted)
	// the missing 5k time is filled from the previous value
	s.True(running[1].FiveKSeconds.Imputed)
}

func (s *IntegrationTestSuite) TestCards() {
	resp, err := http.Get(serverEndpoint + "/api/cards?section=heart")
	s.Require().NoError(err)
	defer func() {
		_ = resp.Body.Close()
	}()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Empty(resp.Header.Get("X-Data-Source"))
}

func (s *IntegrationTestSuite) TestDashboardFlow() {
	ctx := context.Background()
	store := dashboard.NewStore(s.client)

	s.Require().NoError(store.FetchAll(ctx))
	state := store.Snapshot()
	s.False(state.Loading)
	s.Empty(state.Error)

	hrv, ok := findCard(dashboard.BuildSections(state.Data), trends.MetricHRV)
	s.Require().True(ok)
	s.Equal(trends.KindGood, hrv.Trend.Kind)

	callsBefore := s.gatewayCalls.Load()
	s.Require().NoError(store.GetInsights(ctx))
	s.Require().NotNil(store.Snapshot().Insight)
	s.Contains(store.Snapshot().Insight.Response, "HRV is improving")

	// same data again, served from the redis cache
	s.Require().NoError(store.GetInsights(ctx))
	s.Equal(callsBefore+1, s.gatewayCalls.Load())
}

func (s *IntegrationTestSuite) TestAnalyzeMissingData() {
	resp, err := http.Post(serverEndpoint+"/api/analyze", "application/json", strings.NewReader(`{"ouraData":[]}`))
	s.Require().NoError(err)
	defer func() {
		_ = resp.Body.Close()
	}()
	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func findCard(sections []dashboard.Section, metric trends.MetricType) (dashboard.Card, bool) {
	for _, section := range sections {
		for _, card := range section.Cards {
			if card.Metric == metric {
				return card, true
			}
		}
	}
	return dashboard.Card{}, false
}
