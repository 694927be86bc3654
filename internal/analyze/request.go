package analyze

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/healthdash/internal/healthdata"
)

var (
	ErrMissingData     = errors.New("missing required data in request")
	ErrGatewayResponse = errors.New("invalid ai gateway response")
)

// Request carries the families as fetched by the dashboard, newest first.
type Request struct {
	OuraData     []healthdata.OuraRecord     `json:"ouraData"`
	WithingsData []healthdata.WithingsRecord `json:"withingsData"`
	RunningData  []healthdata.RunningRecord  `json:"runningData,omitempty"`
}

// Validate checks that both required families hold at least one row.
func (r Request) Validate() error {
	if len(r.OuraData) == 0 || len(r.WithingsData) == 0 {
		return ErrMissingData
	}
	return nil
}

// Analysis is a generated summary of the health data.
type Analysis struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Checksum identifies the request by its newest row of each family.
// Two requests with the same latest rows get the same analysis.
func Checksum(req Request) (string, error) {
	var running any = struct{}{}
	if len(req.RunningData) > 0 {
		running = req.RunningData[0]
	}

	var oura any
	if len(req.OuraData) > 0 {
		oura = req.OuraData[0]
	}
	var withings any
	if len(req.WithingsData) > 0 {
		withings = req.WithingsData[0]
	}

	payload, err := json.Marshal(struct {
		Oura     any `json:"oura"`
		Withings any `json:"withings"`
		Running  any `json:"running"`
	}{
		Oura:     oura,
		Withings: withings,
		Running:  running,
	})
	if err != nil {
		return "", fmt.Errorf("marshal checksum payload: %w", err)
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
