package healthdata

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/healthdash/internal/trends"

	"github.com/brianvoe/gofakeit/v6"
)

// FillRunning turns newest-first raw running rows into records with the gaps
// of each field carried forward from its most recent value. Fields are filled
// independently. Legacy 5K times in minutes are converted to seconds first.
func FillRunning(rows []RunningRow) []RunningRecord {
	vo2 := make([]*float64, len(rows))
	fiveK := make([]*float64, len(rows))
	for i, row := range rows {
		vo2[i] = row.VO2Max
		fiveK[i] = row.FiveKSeconds
		if fiveK[i] == nil && row.FiveKMinutes != nil {
			fiveK[i] = trends.Float64(*row.FiveKMinutes * 60)
		}
	}

	vo2Filled, vo2Imputed := trends.CarryForward(vo2)
	fiveKFilled, fiveKImputed := trends.CarryForward(fiveK)

	records := make([]RunningRecord, len(rows))
	for i, row := range rows {
		records[i] = RunningRecord{
			Date:         row.Date,
			VO2Max:       FilledValue{Value: vo2Filled[i], Imputed: vo2Imputed[i]},
			FiveKSeconds: FilledValue{Value: fiveKFilled[i], Imputed: fiveKImputed[i]},
		}
		if fiveKFilled[i] != nil {
			records[i].FiveKFormatted = FormatFiveK(*fiveKFilled[i])
		}
	}

	return records
}

// FormatFiveK formats a duration in seconds as M:SS.
func FormatFiveK(seconds float64) string {
	total := int(math.Round(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

const (
	mockVO2Base       = 42.5
	mockVO2DailyDrop  = 0.1
	mockFiveKBase     = 1518 // 25:18
	mockFiveKDailyAdd = 6
)

// MockRunning generates newest-first running records for the given number of
// days back from now: VO2max slowly declining, 5K time slowly growing, with some
// noise on both.
func MockRunning(faker *gofakeit.Faker, now time.Time, days int) []RunningRecord {
	records := make([]RunningRecord, 0, days)
	for i := range days {
		vo2 := mockVO2Base - float64(i)*mockVO2DailyDrop + faker.Float64Range(-0.25, 0.25)
		seconds := mockFiveKBase + float64(i*mockFiveKDailyAdd) + faker.Float64Range(-15, 15)
		seconds = math.Round(seconds)

		records = append(records, RunningRecord{
			Date:           NewDate(now.AddDate(0, 0, -i)),
			VO2Max:         Measured(math.Round(vo2*10) / 10),
			FiveKSeconds:   Measured(seconds),
			FiveKFormatted: FormatFiveK(seconds),
		})
	}
	return records
}
