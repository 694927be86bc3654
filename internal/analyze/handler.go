package analyze

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/healthdash/internal/telemetry/tracing"
	"github.com/2beens/healthdash/pkg"

	log "github.com/sirupsen/logrus"
)

// max accepted request body, 30 rows of each family fit easily
const maxRequestBodySize = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analyze")
	defer span.End()

	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
		log.Tracef("analyze, unmarshal request: %s", err)
		span.RecordError(err)
		pkg.WriteJSON(w, pkg.NewErrorResponse("invalid request body", "", err), http.StatusInternalServerError)
		return
	}

	analysis, err := handler.service.Analyze(ctx, req)
	if err != nil {
		log.Errorf("analyze health data: %s", err)
		span.RecordError(err)
		pkg.WriteJSON(w, pkg.NewErrorResponse("failed to analyze health data", "", err), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, analysis, http.StatusOK)
}
