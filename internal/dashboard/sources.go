package dashboard

import (
	"context"

	"github.com/2beens/healthdash/internal/analyze"
	"github.com/2beens/healthdash/internal/healthdata"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

// dataSource is what the Store loads its state from, usually the API Client.
type dataSource interface {
	FetchOura(ctx context.Context) ([]healthdata.OuraRecord, error)
	FetchWithings(ctx context.Context) ([]healthdata.WithingsRecord, error)
	FetchRunning(ctx context.Context) ([]healthdata.RunningRecord, error)
	Analyze(ctx context.Context, req analyze.Request) (*analyze.Analysis, error)
}

// healthService reads the families straight from storage, server side.
type healthService interface {
	Oura(ctx context.Context) ([]healthdata.OuraRecord, error)
	Withings(ctx context.Context) ([]healthdata.WithingsRecord, error)
	Running(ctx context.Context) ([]healthdata.RunningRecord, bool)
}
