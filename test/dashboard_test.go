//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/lifearchitect/internal/architect"
	"github.com/2beens/lifearchitect/internal/okr"
	"github.com/2beens/lifearchitect/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) do(ctx context.Context, method, path, body string) (int, []byte) {
	t := s.T()

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, bodyReader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) storedValue(key string) string {
	var value string
	err := s.DB.QueryRow(`SELECT value::text FROM kv_state WHERE key = $1`, key).Scan(&value)
	require.NoError(s.T(), err)
	return value
}

func (s *IntegrationTestSuite) TestDashboard_PointsArePersisted() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	code, respBytes := s.do(ctx, "GET", "/state", "")
	require.Equal(t, http.StatusOK, code)
	var before architect.State
	require.NoError(t, json.Unmarshal(respBytes, &before))

	code, respBytes = s.do(ctx, "POST", "/quickhit/complete", "")
	require.Equal(t, http.StatusOK, code, string(respBytes))

	code, respBytes = s.do(ctx, "POST", "/study/complete", `{"minutes": 90, "topic": "Ethics"}`)
	require.Equal(t, http.StatusOK, code, string(respBytes))

	code, respBytes = s.do(ctx, "GET", "/state", "")
	require.Equal(t, http.StatusOK, code)
	var after architect.State
	require.NoError(t, json.Unmarshal(respBytes, &after))
	assert.Equal(t, before.Points+15+22, after.Points)
	assert.Equal(t, before.TotalStudyHours+1.5, after.TotalStudyHours)

	assert.Equal(t, fmt.Sprint(after.Points), s.storedValue(store.KeyPoints))
	assert.Contains(t, s.storedValue(store.KeyStudySessionLogs), "Ethics")
}

func (s *IntegrationTestSuite) TestDashboard_Objectives() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	code, respBytes := s.do(ctx, "POST", "/objectives", `{"title": "Pass the exam", "quarter": "Q3 2025"}`)
	require.Equal(t, http.StatusCreated, code, string(respBytes))
	var objective okr.Objective
	require.NoError(t, json.Unmarshal(respBytes, &objective))
	require.NotEmpty(t, objective.ID)

	code, respBytes = s.do(ctx, "POST", "/objectives/"+objective.ID+"/keyresults",
		`{"description": "Study hours", "targetValue": 40, "unit": "hours"}`)
	require.Equal(t, http.StatusCreated, code, string(respBytes))
	var kr okr.KeyResult
	require.NoError(t, json.Unmarshal(respBytes, &kr))

	code, respBytes = s.do(ctx, "PUT", "/keyresults/"+kr.ID+"/progress", `{"delta": 12.5}`)
	require.Equal(t, http.StatusOK, code, string(respBytes))
	var progress architect.ProgressResponse
	require.NoError(t, json.Unmarshal(respBytes, &progress))
	require.True(t, progress.Found)
	assert.Equal(t, 12.5, progress.KeyResult.CurrentValue)

	assert.Contains(t, s.storedValue(store.KeyObjectives), "Pass the exam")

	code, _ = s.do(ctx, "DELETE", "/objectives/"+objective.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, s.storedValue(store.KeyObjectives), "Pass the exam")
}

func (s *IntegrationTestSuite) TestDashboard_AIRateLimit() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	// no API key in the suite, so the AI routes answer 503 until the limiter kicks in
	var codes []int
	for i := 0; i < 3; i++ {
		code, _ := s.do(ctx, "POST", "/ai/meal", `{"description": "porridge"}`)
		codes = append(codes, code)
	}
	assert.Equal(t, []int{
		http.StatusServiceUnavailable,
		http.StatusServiceUnavailable,
		http.StatusTooManyRequests,
	}, codes)
}
