package collector

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=collector_test

type ouraSource interface {
	Sleep(ctx context.Context, day time.Time) (OuraDay, error)
	Activity(ctx context.Context, day time.Time) (OuraDay, error)
}

type withingsSource interface {
	Measurements(ctx context.Context, day time.Time) (WithingsDay, error)
}

type dayStore interface {
	UpsertOura(ctx context.Context, day time.Time, data OuraDay) (bool, error)
	UpsertWithings(ctx context.Context, day time.Time, data WithingsDay) (bool, error)
}

// Collector pulls one day of data from the device APIs into the store.
// Either source may be nil, then it is skipped.
type Collector struct {
	oura     ouraSource
	withings withingsSource
	store    dayStore
	now      func() time.Time
}

func NewCollector(oura ouraSource, withings withingsSource, store dayStore) *Collector {
	return &Collector{
		oura:     oura,
		withings: withings,
		store:    store,
		now:      time.Now,
	}
}

// Run collects the data. With a nil target it is the scheduled run: the
// activity of yesterday, and the sleep of the night ending today. With a
// target date everything is collected for that date (manual backfill).
// A failing source does not stop the others.
func (c *Collector) Run(ctx context.Context, target *time.Time) error {
	today := c.now().UTC()
	activityDay, sleepDay, withingsDay := today.AddDate(0, 0, -1), today, today
	if target != nil {
		log.Infof("manual run for %s", target.Format(ouraDayLayout))
		activityDay, sleepDay, withingsDay = *target, *target, *target
	}

	var err error
	if c.oura != nil {
		err = multierr.Append(err, c.collectOura(ctx, activityDay, sleepDay))
	}
	if c.withings != nil {
		err = multierr.Append(err, c.collectWithings(ctx, withingsDay))
	}
	return err
}

func (c *Collector) collectOura(ctx context.Context, activityDay, sleepDay time.Time) error {
	var err error

	activity, activityErr := c.oura.Activity(ctx, activityDay)
	if activityErr != nil {
		err = multierr.Append(err, fmt.Errorf("oura activity %s: %w", activityDay.Format(ouraDayLayout), activityErr))
	}
	sleep, sleepErr := c.oura.Sleep(ctx, sleepDay)
	if sleepErr != nil {
		// partial sleep data is still stored
		err = multierr.Append(err, fmt.Errorf("oura sleep %s: %w", sleepDay.Format(ouraDayLayout), sleepErr))
	}

	if activityDay.Equal(sleepDay) {
		err = multierr.Append(err, c.storeOura(ctx, sleepDay, activity.Merge(sleep)))
		return err
	}
	err = multierr.Append(err, c.storeOura(ctx, activityDay, activity))
	err = multierr.Append(err, c.storeOura(ctx, sleepDay, sleep))
	return err
}

func (c *Collector) storeOura(ctx context.Context, day time.Time, data OuraDay) error {
	stored, err := c.store.UpsertOura(ctx, day, data)
	if err != nil {
		return err
	}
	if stored {
		log.Infof("oura data stored for %s", day.Format(ouraDayLayout))
	} else {
		log.Infof("no oura data for %s, nothing stored", day.Format(ouraDayLayout))
	}
	return nil
}

func (c *Collector) collectWithings(ctx context.Context, day time.Time) error {
	data, err := c.withings.Measurements(ctx, day)
	if err != nil {
		return fmt.Errorf("withings %s: %w", day.Format(ouraDayLayout), err)
	}

	stored, err := c.store.UpsertWithings(ctx, day, data)
	if err != nil {
		return err
	}
	if stored {
		log.Infof("withings data stored for %s", day.Format(ouraDayLayout))
	} else {
		log.Infof("no withings measurements for %s, nothing stored", day.Format(ouraDayLayout))
	}
	return nil
}

// RotatedRefreshToken reports the refresh token of ts when it differs from the initial one.
// The new token must be saved, the old one is no longer valid.
func RotatedRefreshToken(initial string, ts interface{ Token() (*oauth2.Token, error) }) (string, bool, error) {
	tok, err := ts.Token()
	if err != nil {
		return "", false, fmt.Errorf("get token: %w", err)
	}
	if tok.RefreshToken == "" || tok.RefreshToken == initial {
		return "", false, nil
	}
	return tok.RefreshToken, true, nil
}
