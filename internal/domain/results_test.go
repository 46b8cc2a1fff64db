package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack(t *testing.T) {
	track, err := ParseTrack("school")
	require.NoError(t, err)
	assert.Equal(t, "school_assessment_session_id", track.StorageKey())
	assert.Equal(t, "/school_assessment_results", track.ResultsPath())
	assert.Len(t, track.Agents(), 5)

	assert.Equal(t, "assessment_session_id", TrackCollege.StorageKey())
	assert.Equal(t, "/assessment_results", TrackCollege.ResultsPath())
	assert.Equal(t, "profile_analysis", TrackCollege.Agents()[0].Key)

	_, err = ParseTrack("professional")
	assert.Error(t, err)
}

func TestResultsResponse_Accessors(t *testing.T) {
	var nilResp *ResultsResponse
	assert.Nil(t, nilResp.FleetSummary())
	assert.Nil(t, nilResp.AgentOutput("profile_analysis"))
	assert.Nil(t, nilResp.Document())

	raw := `{
		"success": true,
		"data": {
			"session_id": "",
			"status": "completed",
			"results": {
				"session_id": "sess-9",
				"outputs": {
					"fleet_summary": {"status": "completed", "confidence": 0.82},
					"agent_outputs": {
						"profile_analysis": {"status": "completed", "confidence": 0.9, "data": {"executive_summary": "ok"}}
					}
				}
			}
		}
	}`
	resp, err := DecodeResultsResponse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "sess-9", resp.Data.Results.SessionID)
	require.NotNil(t, resp.FleetSummary())
	assert.InDelta(t, 0.82, resp.FleetSummary().Confidence, 1e-9)
	require.NotNil(t, resp.AgentOutput("profile_analysis"))
	assert.JSONEq(t, `{"executive_summary": "ok"}`, string(resp.AgentOutput("profile_analysis").Data))
	assert.Nil(t, resp.AgentOutput("market_intelligence"))

	assert.Nil(t, resp.AgentOutput("profile_analysis").TopAptitudes())

	partial := ResultsResponse{Success: true, Data: &ResultsData{SessionID: "s"}}
	assert.Nil(t, partial.FleetSummary())
	assert.Nil(t, partial.AgentOutput("profile_analysis"))
}

func TestResultsResponse_DocumentKeepsUnknownFields(t *testing.T) {
	raw := `{"success":true,"timestamp":"T","data":{"results":{"summary":"S","next_actions":["a"],` +
		`"outputs":{"agent_outputs":{"profile_analysis":{"status":"completed","warnings":["W1"]}}}}}}`

	resp, err := DecodeResultsResponse([]byte(raw))
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(resp.Document()))
	assert.NotNil(t, resp.AgentOutput("profile_analysis"))

	_, err = DecodeResultsResponse([]byte("{"))
	assert.Error(t, err)

	built := &ResultsResponse{Success: true}
	assert.JSONEq(t, `{"success":true}`, string(built.Document()))
}

func TestAgentOutput_TopAptitudes(t *testing.T) {
	out := &AgentOutput{Data: json.RawMessage(`{"score_summaries":{"dbda_top_aptitudes":[{"domain":"Na","score":8,"level":"High"}]}}`)}
	scores := out.TopAptitudes()
	require.Len(t, scores, 1)
	assert.Equal(t, "Na", scores[0].Domain)
	assert.Equal(t, 8.0, scores[0].Score)

	assert.Nil(t, (&AgentOutput{Data: json.RawMessage(`[1,2]`)}).TopAptitudes())
	var missing *AgentOutput
	assert.Nil(t, missing.TopAptitudes())
}
