package healthdata

import (
	"context"
	"time"

	"github.com/2beens/healthdash/internal/telemetry/metrics"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=healthdata_test

type healthRepo interface {
	ListOura(ctx context.Context, limit int) ([]OuraRecord, error)
	ListWithings(ctx context.Context, limit int) ([]WithingsRecord, error)
	RunningTableExists(ctx context.Context) (bool, error)
	ListRunning(ctx context.Context, limit int) ([]RunningRow, error)
}

// MockRunningDays is how many days of running data are generated
// when the real data cannot be read.
const MockRunningDays = 30

type Service struct {
	repo           healthRepo
	limit          int
	metricsManager *metrics.Manager
	faker          *gofakeit.Faker
	now            func() time.Time
}

func NewService(repo healthRepo, limit int, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		limit:          limit,
		metricsManager: metricsManager,
		faker:          gofakeit.New(0),
		now:            time.Now,
	}
}

// Oura returns the most recent Oura rows, newest first.
func (s *Service) Oura(ctx context.Context) ([]OuraRecord, error) {
	records, err := s.repo.ListOura(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []OuraRecord{}
	}
	return records, nil
}

// Withings returns the most recent Withings rows, newest first.
func (s *Service) Withings(ctx context.Context) ([]WithingsRecord, error) {
	records, err := s.repo.ListWithings(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []WithingsRecord{}
	}
	return records, nil
}

// Running returns the most recent running records with gaps filled. It never
// fails: if the table is missing or cannot be read, generated data is returned
// instead, and mock is set.
func (s *Service) Running(ctx context.Context) (_ []RunningRecord, mock bool) {
	exists, err := s.repo.RunningTableExists(ctx)
	if err != nil {
		log.Errorf("running data, check table: %s", err)
		return s.mockRunning(), true
	}
	if !exists {
		log.Debugln("running data table not found, using generated data")
		return s.mockRunning(), true
	}

	rows, err := s.repo.ListRunning(ctx, s.limit)
	if err != nil {
		log.Errorf("running data, list: %s", err)
		return s.mockRunning(), true
	}

	return FillRunning(rows), false
}

func (s *Service) mockRunning() []RunningRecord {
	s.metricsManager.CounterRunningFallbacks.Inc()
	return MockRunning(s.faker, s.now(), MockRunningDays)
}
