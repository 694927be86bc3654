package healthdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/2beens/healthdash/internal/telemetry/metrics"
	"github.com/2beens/healthdash/internal/telemetry/tracing"
	"github.com/2beens/healthdash/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const CodeDBError = "DB_ERROR"

type Handler struct {
	service        *Service
	cache          *ResponseCache
	metricsManager *metrics.Manager
}

func NewHandler(service *Service, cache *ResponseCache, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleOura(w http.ResponseWriter, r *http.Request) {
	handler.serveCached(w, r, "oura", func(ctx context.Context) (any, bool, error) {
		records, err := handler.service.Oura(ctx)
		return records, true, err
	})
}

func (handler *Handler) HandleWithings(w http.ResponseWriter, r *http.Request) {
	handler.serveCached(w, r, "withings", func(ctx context.Context) (any, bool, error) {
		records, err := handler.service.Withings(ctx)
		return records, true, err
	})
}

func (handler *Handler) HandleRunning(w http.ResponseWriter, r *http.Request) {
	handler.serveCached(w, r, "running", func(ctx context.Context) (any, bool, error) {
		records, mock := handler.service.Running(ctx)
		if mock {
			// generated data must not hide real rows once the db is back
			w.Header().Set("X-Data-Source", "generated")
			return records, false, nil
		}
		return records, true, nil
	})
}

// serveCached serves the response from the cache when possible, otherwise
// fetches, encodes and caches it. Failures and results reported as not
// cacheable are served as is.
func (handler *Handler) serveCached(
	w http.ResponseWriter,
	r *http.Request,
	family string,
	fetch func(ctx context.Context) (data any, cacheable bool, err error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.healthdata."+family)
	defer span.End()

	cacheKey := r.URL.String()
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", handler.cache.MaxAge()))

	if cached, ok := handler.cache.Get(cacheKey); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		handler.metricsManager.CounterResponseCacheHits.WithLabelValues(family).Inc()
		w.Header().Set("X-Cache", "HIT")
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	data, cacheable, err := fetch(ctx)
	if err != nil {
		log.Errorf("fetch %s data: %s", family, err)
		span.RecordError(err)
		w.Header().Set("Cache-Control", "no-store")
		pkg.WriteJSON(w, pkg.NewErrorResponse(
			fmt.Sprintf("failed to fetch %s data", family),
			CodeDBError,
			err,
		), http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(data)
	if err != nil {
		log.Errorf("marshal %s data: %s", family, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !cacheable {
		w.Header().Set("Cache-Control", "no-store")
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
		return
	}

	handler.cache.Set(cacheKey, resp)
	w.Header().Set("X-Cache", "MISS")
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}
