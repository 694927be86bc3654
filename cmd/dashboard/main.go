// Package main renders the health dashboard in the terminal: it loads all
// metric families from the backend and prints the metric cards, optionally
// followed by the generated insights.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/healthdash/internal/config"
	"github.com/2beens/healthdash/internal/dashboard"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	apiURL := flag.String("api", "", "backend base URL, overrides api_base_url from the config")
	insights := flag.Bool("insights", false, "request the AI insights for the loaded data")
	theme := flag.String("theme", string(dashboard.ThemeLight), "color theme [light | dark]")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	baseURL := *apiURL
	if baseURL == "" {
		cfg, err := config.Load(*env, *configPath)
		if err != nil {
			log.Fatalf("load config: %s", err)
		}
		baseURL = cfg.APIBaseURL
	}

	store := dashboard.NewStore(dashboard.NewClient(baseURL, nil))
	if dashboard.Theme(*theme) == dashboard.ThemeDark {
		store.ToggleTheme()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := store.FetchAll(ctx); err != nil {
		// shown in the error banner, the loaded families are still rendered
		log.Debugf("fetch all: %s", err)
	}

	if *insights {
		if err := store.GetInsights(ctx); err != nil {
			log.Debugf("get insights: %s", err)
		}
	}

	opts := dashboard.RenderOptions{
		UseColors: !*noColor && !color.NoColor,
	}
	if err := dashboard.Render(os.Stdout, store.Snapshot(), opts); err != nil {
		log.Errorf("render: %s", err)
		os.Exit(1)
	}
}
