package healthdata_test

import (
	"testing"
	"time"

	"github.com/2beens/healthdash/internal/healthdata"
	"github.com/2beens/healthdash/internal/trends"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRunning(t *testing.T) {
	day := func(i int) healthdata.Date {
		return healthdata.NewDate(time.Date(2025, 3, 10-i, 0, 0, 0, 0, time.UTC))
	}
	rows := []healthdata.RunningRow{
		{Date: day(0), VO2Max: nil, FiveKSeconds: trends.Float64(1500)},
		{Date: day(1), VO2Max: trends.Float64(42.1), FiveKSeconds: nil},
		{Date: day(2), VO2Max: nil, FiveKSeconds: nil, FiveKMinutes: trends.Float64(26)},
		{Date: day(3), VO2Max: trends.Float64(41.5), FiveKSeconds: trends.Float64(1580)},
	}

	records := healthdata.FillRunning(rows)
	require.Len(t, records, 4)

	// vo2 max: most recent value is 42.1
	assert.Equal(t, 42.1, *records[0].VO2Max.Value)
	assert.True(t, records[0].VO2Max.Imputed)
	assert.Equal(t, 42.1, *records[1].VO2Max.Value)
	assert.False(t, records[1].VO2Max.Imputed)
	assert.Equal(t, 42.1, *records[2].VO2Max.Value)
	assert.True(t, records[2].VO2Max.Imputed)
	assert.Equal(t, 41.5, *records[3].VO2Max.Value)

	// 5k seconds filled independently, legacy minutes converted
	assert.Equal(t, 1500.0, *records[0].FiveKSeconds.Value)
	assert.False(t, records[0].FiveKSeconds.Imputed)
	assert.Equal(t, 1500.0, *records[1].FiveKSeconds.Value)
	assert.True(t, records[1].FiveKSeconds.Imputed)
	assert.Equal(t, 1560.0, *records[2].FiveKSeconds.Value)
	assert.False(t, records[2].FiveKSeconds.Imputed)

	assert.Equal(t, "25:00", records[0].FiveKFormatted)
	assert.Equal(t, "26:00", records[2].FiveKFormatted)
	assert.Equal(t, "26:20", records[3].FiveKFormatted)
	assert.Equal(t, day(3), records[3].Date)
}

func TestFillRunning_NoValues(t *testing.T) {
	records := healthdata.FillRunning([]healthdata.RunningRow{{}, {}})
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Nil(t, r.VO2Max.Value)
		assert.False(t, r.VO2Max.Imputed)
		assert.Nil(t, r.FiveKSeconds.Value)
		assert.Empty(t, r.FiveKFormatted)
	}

	assert.Empty(t, healthdata.FillRunning(nil))
}

func TestFormatFiveK(t *testing.T) {
	assert.Equal(t, "25:18", healthdata.FormatFiveK(1518))
	assert.Equal(t, "0:05", healthdata.FormatFiveK(5))
	assert.Equal(t, "26:00", healthdata.FormatFiveK(1559.6))
	assert.Equal(t, "0:00", healthdata.FormatFiveK(-3))
}

func TestMockRunning(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	records := healthdata.MockRunning(gofakeit.New(42), now, 30)
	require.Len(t, records, 30)

	for i, r := range records {
		assert.Equal(t, healthdata.NewDate(now.AddDate(0, 0, -i)), r.Date)

		require.NotNil(t, r.VO2Max.Value)
		expectedVO2 := 42.5 - float64(i)*0.1
		assert.InDelta(t, expectedVO2, *r.VO2Max.Value, 0.3)

		require.NotNil(t, r.FiveKSeconds.Value)
		expectedSeconds := 1518 + float64(i*6)
		assert.InDelta(t, expectedSeconds, *r.FiveKSeconds.Value, 15.5)
		assert.Equal(t, healthdata.FormatFiveK(*r.FiveKSeconds.Value), r.FiveKFormatted)

		assert.False(t, r.VO2Max.Imputed)
		assert.False(t, r.FiveKSeconds.Imputed)
	}
}
