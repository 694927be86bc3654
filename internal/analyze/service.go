package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/healthdash/internal/telemetry/metrics"
	"github.com/2beens/healthdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=analyze_test

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type analysisCache interface {
	Get(ctx context.Context, checksum string) (*Analysis, error)
	Set(ctx context.Context, checksum string, analysis *Analysis) error
}

type Service struct {
	generator      textGenerator
	cache          analysisCache
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(generator textGenerator, cache analysisCache, metricsManager *metrics.Manager) *Service {
	return &Service{
		generator:      generator,
		cache:          cache,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Analyze returns the generated analysis of the request data. Results are
// cached by request checksum, so the same latest data is analyzed only once.
// A failing cache is logged and bypassed.
func (s *Service) Analyze(ctx context.Context, req Request) (_ *Analysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyze.service.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	checksum, err := Checksum(req)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("checksum", checksum))

	cached, err := s.cache.Get(ctx, checksum)
	if err != nil {
		log.Errorf("analysis cache get [%s]: %s", checksum, err)
	} else if cached != nil {
		log.Debugf("serving analysis [%s] from cache", checksum)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		s.metricsManager.CounterAnalysisCacheHits.Inc()
		return cached, nil
	}

	prompt := BuildPrompt(req)

	start := s.now()
	response, err := s.generator.Generate(ctx, prompt)
	s.metricsManager.HistGatewayDuration.Observe(s.now().Sub(start).Seconds())
	if err != nil {
		s.metricsManager.CounterGatewayCalls.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to get ai analysis: %w", err)
	}
	s.metricsManager.CounterGatewayCalls.WithLabelValues("ok").Inc()
	log.Debugf("ai gateway response time: %s", s.now().Sub(start))

	analysis := &Analysis{
		Response:  response,
		Timestamp: s.now().UTC(),
	}

	if err := s.cache.Set(ctx, checksum, analysis); err != nil {
		log.Errorf("analysis cache set [%s]: %s", checksum, err)
	}

	return analysis, nil
}
