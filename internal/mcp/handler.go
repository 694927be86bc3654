package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/healthdash/internal/trends"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetHealthSchemaTool returns the MCP tool handler for get_health_schema.
func (h *Handler) GetHealthSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// HealthCardsInput is the input for get_health_cards.
type HealthCardsInput struct {
	Section string `json:"section,omitempty" jsonschema:"Only return this section (Heart, Body, Sleep, Running)"`
}

// GetHealthCardsTool returns the MCP tool handler for get_health_cards.
func (h *Handler) GetHealthCardsTool() func(context.Context, *mcp.CallToolRequest, HealthCardsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in HealthCardsInput) (*mcp.CallToolResult, any, error) {
		sections, err := h.service.GetCards(ctx, in.Section)
		if err != nil {
			return errorResult("Error building health cards: " + err.Error()), nil, nil
		}
		return jsonResult(sections), nil, nil
	}
}

// MetricInput is the input for the single metric tools.
type MetricInput struct {
	Metric string `json:"metric" jsonschema:"Metric type, e.g. hrv, restingHeartRate, weight, bodyFat, sleepDuration, sleepEfficiency, deepSleep, sleepDelay, vo2max, fiveKTime"`
}

// GetMetricTrendTool returns the MCP tool handler for get_metric_trend.
func (h *Handler) GetMetricTrendTool() func(context.Context, *mcp.CallToolRequest, MetricInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MetricInput) (*mcp.CallToolResult, any, error) {
		metric, err := trends.ParseMetricType(in.Metric)
		if err != nil {
			return errorResult("Invalid metric: " + err.Error()), nil, nil
		}
		trend, err := h.service.GetMetricTrend(ctx, metric)
		if err != nil {
			return errorResult("Error computing trend: " + err.Error()), nil, nil
		}
		return jsonResult(trend), nil, nil
	}
}

// GetMonthlyAveragesTool returns the MCP tool handler for get_monthly_averages.
func (h *Handler) GetMonthlyAveragesTool() func(context.Context, *mcp.CallToolRequest, MetricInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MetricInput) (*mcp.CallToolResult, any, error) {
		metric, err := trends.ParseMetricType(in.Metric)
		if err != nil {
			return errorResult("Invalid metric: " + err.Error()), nil, nil
		}
		monthly, err := h.service.GetMonthlyAverages(ctx, metric)
		if err != nil {
			return errorResult("Error computing monthly averages: " + err.Error()), nil, nil
		}
		return jsonResult(monthly), nil, nil
	}
}
