package mcp

import (
	"github.com/2beens/lifearchitect/internal/architect"
	"github.com/2beens/lifearchitect/internal/store"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the read-only dashboard MCP server. It is mounted by the
// main backend at /mcp and served over stdio by cmd/architect_mcp.
func NewServer(service *architect.Service, s store.Store) *mcp.Server {
	svc := NewContextService(service, NewStoreStateRepo(s))
	h := NewHandler(svc)
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "lifearchitect-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dashboard_context",
		Description: "Returns today's dashboard summary: points, quick-hit streak, next gym rotation day, study hours against the target and the current quarter's objectives with key results. Use before giving advice about the day.",
	}, h.GetDashboardContextTool())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_study_logs_for_range",
		Description: "Returns study session logs (date, minutes, topic, linked key result) within a date range. Args: from_date, to_date (YYYY-MM-DD).",
	}, h.GetStudyLogsForRangeTool())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_nutrition_for_day",
		Description: "Returns calorie and macro totals plus the logged meals of one day. Optional arg: date (YYYY-MM-DD), today when omitted. Only the last 30 days are kept.",
	}, h.GetNutritionForDayTool())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_stored_state",
		Description: "Lists the persisted dashboard documents with their JSON kind and size. Use when debugging what has been saved.",
	}, h.GetStoredStateTool())

	return server
}
