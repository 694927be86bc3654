package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/2beens/healthdash/internal/healthdata"
	"github.com/2beens/healthdash/internal/telemetry/tracing"
	"github.com/2beens/healthdash/pkg"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type CardsResponse struct {
	Sections []Section `json:"sections"`
	// Generated is set when the running family is served from generated data.
	Generated bool `json:"generated,omitempty"`
}

type Handler struct {
	service healthService
}

func NewHandler(service healthService) *Handler {
	return &Handler{
		service: service,
	}
}

// LoadData reads the three families from the service in parallel.
func LoadData(ctx context.Context, service healthService) (Data, bool, error) {
	var (
		data      Data
		generated bool
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		oura, err := service.Oura(gCtx)
		if err != nil {
			return fmt.Errorf("oura: %w", err)
		}
		data.Oura = oura
		return nil
	})
	g.Go(func() error {
		withings, err := service.Withings(gCtx)
		if err != nil {
			return fmt.Errorf("withings: %w", err)
		}
		data.Withings = withings
		return nil
	})
	g.Go(func() error {
		data.Running, generated = service.Running(gCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Data{}, false, err
	}
	return data, generated, nil
}

// HandleCards serves the derived metric cards. The optional section
// query param limits the response to one section.
func (handler *Handler) HandleCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.cards")
	defer span.End()

	data, generated, err := LoadData(ctx, handler.service)
	if err != nil {
		log.Errorf("load cards data: %s", err)
		span.RecordError(err)
		pkg.WriteJSON(w, pkg.NewErrorResponse("failed to load health data", healthdata.CodeDBError, err), http.StatusInternalServerError)
		return
	}

	sections := BuildSections(data)
	if name := r.URL.Query().Get("section"); name != "" {
		var filtered []Section
		for _, s := range sections {
			if strings.EqualFold(s.Name, name) {
				filtered = append(filtered, s)
			}
		}
		if len(filtered) == 0 {
			pkg.WriteJSON(w, pkg.NewErrorResponse("unknown section: "+name, "", nil), http.StatusBadRequest)
			return
		}
		sections = filtered
	}

	if generated {
		w.Header().Set("X-Data-Source", "generated")
	}
	pkg.WriteJSON(w, CardsResponse{
		Sections:  sections,
		Generated: generated,
	}, http.StatusOK)
}
