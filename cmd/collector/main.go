// Package main collects one day of Oura and Withings data into the health db.
// Meant to run daily from a scheduled job, or manually with -date to backfill.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/healthdash/internal/collector"
	"github.com/2beens/healthdash/internal/config"
	"github.com/2beens/healthdash/internal/db"
	"github.com/2beens/healthdash/internal/logging"
	"github.com/2beens/healthdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	date := flag.String("date", "", "collect data for this date (YYYY-MM-DD), instead of the scheduled days")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout:      true,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "healthdash-collector",
	})

	var target *time.Time
	if *date != "" {
		day, err := time.Parse(time.DateOnly, *date)
		if err != nil {
			log.Fatalf("invalid date [%s], expected YYYY-MM-DD: %s", *date, err)
		}
		target = &day
	}

	if err := run(cfg, target); err != nil {
		log.Errorf("collect: %s", err)
		os.Exit(1)
	}
	log.Infoln("collect done")
}

func run(cfg *config.Config, target *time.Time) error {
	ouraCreds := credentialsFromEnv("OURA")
	withingsCreds := credentialsFromEnv("WITHINGS")
	if ouraCreds.RefreshToken == "" || withingsCreds.RefreshToken == "" {
		return errors.New("refresh tokens not set, use OURA_REFRESH_TOKEN and WITHINGS_REFRESH_TOKEN env vars")
	}

	otelShutdown, err := tracing.HoneycombSetup(os.Getenv("HONEYCOMB_ENABLED") == "true", "healthdash-collector")
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer otelShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	ouraClient := collector.NewOuraClient(ctx, ouraCreds, collector.OuraAPIBaseURL)
	withingsClient := collector.NewWithingsClient(ctx, withingsCreds, collector.WithingsAPIBaseURL)

	runErr := collector.NewCollector(ouraClient, withingsClient, collector.NewStore(dbPool)).Run(ctx, target)

	// rotated refresh tokens must be saved even when the run failed
	reportRotatedToken("oura_refresh_token", ouraCreds.RefreshToken, ouraClient)
	reportRotatedToken("withings_refresh_token", withingsCreds.RefreshToken, withingsClient)

	return runErr
}

func credentialsFromEnv(prefix string) collector.Credentials {
	return collector.Credentials{
		ClientID:     os.Getenv(prefix + "_CLIENT_ID"),
		ClientSecret: os.Getenv(prefix + "_CLIENT_SECRET"),
		RefreshToken: os.Getenv(prefix + "_REFRESH_TOKEN"),
	}
}

// reportRotatedToken writes a rotated refresh token to the job outputs
// (GITHUB_OUTPUT), so the job can store it for the next run.
func reportRotatedToken(name, initial string, ts oauth2.TokenSource) {
	token, rotated, err := collector.RotatedRefreshToken(initial, ts)
	if err != nil {
		log.Errorf("%s: %s", name, err)
		return
	}
	if !rotated {
		return
	}

	outputPath := os.Getenv("GITHUB_OUTPUT")
	if outputPath == "" {
		log.Warnf("%s rotated, but GITHUB_OUTPUT is not set, the new token is lost", name)
		return
	}

	f, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		log.Errorf("open job outputs: %s", err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("close job outputs: %s", err)
		}
	}()

	if _, err := fmt.Fprintf(f, "%s=%s\n", name, token); err != nil {
		log.Errorf("write %s to job outputs: %s", name, err)
		return
	}
	log.Infof("%s rotated, written to job outputs", name)
}
