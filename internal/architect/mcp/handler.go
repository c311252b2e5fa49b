package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/lifearchitect/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests: parses input, calls the service, formats the MCP result.
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

// GetDashboardContextTool returns the MCP tool handler for get_dashboard_context.
func (h *Handler) GetDashboardContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		dc, err := h.service.GetDashboardContext(ctx)
		if err != nil {
			return errorResult("Error fetching dashboard context: " + err.Error()), nil, nil
		}
		return jsonResult(dc), nil, nil
	}
}

// StudyLogsRangeInput is the input for get_study_logs_for_range.
type StudyLogsRangeInput struct {
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD)"`
}

// GetStudyLogsForRangeTool returns the MCP tool handler for get_study_logs_for_range.
func (h *Handler) GetStudyLogsForRangeTool() func(context.Context, *mcp.CallToolRequest, StudyLogsRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in StudyLogsRangeInput) (*mcp.CallToolResult, any, error) {
		if _, err := time.Parse(pkg.DateLayout, in.FromDate); err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		if _, err := time.Parse(pkg.DateLayout, in.ToDate); err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		logs, err := h.service.GetStudyLogs(ctx, in.FromDate, in.ToDate)
		if err != nil {
			return errorResult("Error listing study logs: " + err.Error()), nil, nil
		}
		return jsonResult(logs), nil, nil
	}
}

// NutritionDayInput is the input for get_nutrition_for_day.
type NutritionDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), today when omitted"`
}

// GetNutritionForDayTool returns the MCP tool handler for get_nutrition_for_day.
func (h *Handler) GetNutritionForDayTool() func(context.Context, *mcp.CallToolRequest, NutritionDayInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NutritionDayInput) (*mcp.CallToolResult, any, error) {
		if in.Date != "" {
			if _, err := time.Parse(pkg.DateLayout, in.Date); err != nil {
				return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
			}
		}
		day, err := h.service.GetNutritionForDay(ctx, in.Date)
		if err != nil {
			return errorResult("Error fetching nutrition: " + err.Error()), nil, nil
		}
		return jsonResult(day), nil, nil
	}
}

// GetStoredStateTool returns the MCP tool handler for get_stored_state.
func (h *Handler) GetStoredStateTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetStoredState(ctx)
		if err != nil {
			return errorResult("Error reading stored state: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}
