package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the health tools: schema, cards, metric trend, monthly averages.
// Mounted by the main backend at /mcp, and served over stdio by cmd/health_mcp.
func NewServer(pool *pgxpool.Pool, health HealthService) *mcp.Server {
	return newServer(NewContextService(NewPoolSchemaRepo(pool), health))
}

func newServer(svc contextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "healthdash-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_health_schema",
		Description: "Returns the DB schema of the health tables (oura_data, withings_data, running_data): table names, columns, types, nullable, default.",
	}, h.GetHealthSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_health_cards",
		Description: "Returns the dashboard metric cards grouped in sections (Heart, Body, Sleep, Running): latest value, unit, trend, sparkline and monthly averages per metric. Optional: section.",
	}, h.GetHealthCardsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_metric_trend",
		Description: "Returns the trend of one metric (good, bad, stable, insufficient data) with the recent (3 days) and previous (7 days) averages it is based on. Arg: metric (e.g. hrv, weight, sleepDuration).",
	}, h.GetMetricTrendTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_monthly_averages",
		Description: "Returns the per calendar month averages of one metric, oldest month first. Arg: metric (e.g. hrv, vo2max, fiveKTime).",
	}, h.GetMonthlyAveragesTool())

	return s
}
