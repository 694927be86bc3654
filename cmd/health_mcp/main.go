// Package main runs the health MCP server over stdio (for local MCP clients).
// The same server is mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/healthdash/internal/config"
	"github.com/2beens/healthdash/internal/db"
	"github.com/2beens/healthdash/internal/healthdata"
	healthmcp "github.com/2beens/healthdash/internal/mcp"
	"github.com/2beens/healthdash/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// nothing scrapes the stdio server, the registry is only there to satisfy the manager
	metricsManager := metrics.NewManager("healthdash", "mcp_stdio", prometheus.NewRegistry())
	healthService := healthdata.NewService(healthdata.NewRepo(dbPool), cfg.QueryLimit, metricsManager)
	server := healthmcp.NewServer(dbPool, healthService)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
