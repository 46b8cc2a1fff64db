package domain

import (
	"encoding/json"
	"fmt"
)

// Track selects which results page a session belongs to.
type Track string

const (
	TrackSchool  Track = "school"
	TrackCollege Track = "college"
)

// AgentSpec names one agent output block rendered by a results page.
type AgentSpec struct {
	Key   string
	Title string
}

var trackAgents = map[Track][]AgentSpec{
	TrackSchool: {
		{Key: "test_score_interpreter", Title: "Test Score Interpretation"},
		{Key: "academic_stream_advisor", Title: "Academic Stream Advisor"},
		{Key: "career_pathway_explorer", Title: "Career Pathway Explorer"},
		{Key: "educational_roadmap_planner", Title: "Educational Roadmap"},
		{Key: "college_scholarship_navigator", Title: "College & Scholarship Navigator"},
	},
	TrackCollege: {
		{Key: "profile_analysis", Title: "Profile Analysis"},
		{Key: "market_intelligence", Title: "Market Intelligence"},
		{Key: "skill_development_strategist", Title: "Skill Development"},
		{Key: "career_optimization_planner", Title: "Career Optimization"},
		{Key: "opportunity_matcher", Title: "Opportunity Matching"},
	},
}

func ParseTrack(raw string) (Track, error) {
	t := Track(raw)
	if !t.IsValid() {
		return "", NewInvalidInputError(fmt.Sprintf("unknown results track: %q", raw))
	}
	return t, nil
}

func (t Track) IsValid() bool {
	_, ok := trackAgents[t]
	return ok
}

// StorageKey is the visitor storage key holding the track's last session id.
func (t Track) StorageKey() string {
	if t == TrackSchool {
		return "school_assessment_session_id"
	}
	return "assessment_session_id"
}

// ResultsPath is the client route of the track's results page.
func (t Track) ResultsPath() string {
	if t == TrackSchool {
		return "/school_assessment_results"
	}
	return "/assessment_results"
}

// Agents returns the agent blocks of the track in display order.
func (t Track) Agents() []AgentSpec {
	agents := trackAgents[t]
	out := make([]AgentSpec, len(agents))
	copy(out, agents)
	return out
}

// ResultsResponse is the status document served by the analysis service.
// Every nested level is optional; readers go through the accessors. Raw keeps
// the body exactly as received so fields not modelled here survive.
type ResultsResponse struct {
	Success bool         `json:"success"`
	Data    *ResultsData `json:"data,omitempty"`

	Raw json.RawMessage `json:"-"`
}

type ResultsData struct {
	SessionID string           `json:"session_id"`
	Status    string           `json:"status"`
	UpdatedAt string           `json:"updated_at"`
	Results   *AnalysisResults `json:"results,omitempty"`
}

type AnalysisResults struct {
	Success   bool             `json:"success"`
	Vertical  string           `json:"vertical"`
	SessionID string           `json:"session_id"`
	Timestamp string           `json:"timestamp"`
	Outputs   *AnalysisOutputs `json:"outputs,omitempty"`
}

type AnalysisOutputs struct {
	FleetSummary *FleetSummary           `json:"fleet_summary,omitempty"`
	AgentOutputs map[string]*AgentOutput `json:"agent_outputs,omitempty"`
}

// FleetSummary is the aggregate envelope over all agent outputs.
type FleetSummary struct {
	Status          string   `json:"status"`
	Confidence      float64  `json:"confidence"`
	ProcessingTime  float64  `json:"processing_time"`
	Recommendations []string `json:"recommendations"`
	NextActions     []string `json:"next_actions"`
}

// AgentOutput keeps the agent payload opaque; it is rendered, never computed on.
type AgentOutput struct {
	Status     string          `json:"status"`
	Confidence float64         `json:"confidence"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// AptitudeScore is one entry of the test score interpreter's top aptitudes.
type AptitudeScore struct {
	Domain      string  `json:"domain"`
	Score       float64 `json:"score"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}

// DecodeResultsResponse parses a status body and retains it verbatim.
func DecodeResultsResponse(raw []byte) (*ResultsResponse, error) {
	var resp ResultsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	resp.Raw = append(json.RawMessage(nil), raw...)
	return &resp, nil
}

// Document is the body to hand to clients: the original bytes when the
// response was decoded, otherwise its own encoding.
func (r *ResultsResponse) Document() json.RawMessage {
	if r == nil {
		return nil
	}
	if len(r.Raw) > 0 {
		return r.Raw
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil
	}
	return b
}

func (r *ResultsResponse) outputs() *AnalysisOutputs {
	if r == nil || r.Data == nil || r.Data.Results == nil {
		return nil
	}
	return r.Data.Results.Outputs
}

// FleetSummary returns nil when any level of the path is missing.
func (r *ResultsResponse) FleetSummary() *FleetSummary {
	if out := r.outputs(); out != nil {
		return out.FleetSummary
	}
	return nil
}

// AgentOutput returns the named agent block, or nil when it is absent.
func (r *ResultsResponse) AgentOutput(key string) *AgentOutput {
	out := r.outputs()
	if out == nil || out.AgentOutputs == nil {
		return nil
	}
	return out.AgentOutputs[key]
}

// TopAptitudes reads data.score_summaries.dbda_top_aptitudes. A missing or
// malformed block yields nil.
func (o *AgentOutput) TopAptitudes() []AptitudeScore {
	if o == nil || len(o.Data) == 0 {
		return nil
	}
	var data struct {
		ScoreSummaries struct {
			TopAptitudes []AptitudeScore `json:"dbda_top_aptitudes"`
		} `json:"score_summaries"`
	}
	if err := json.Unmarshal(o.Data, &data); err != nil {
		return nil
	}
	return data.ScoreSummaries.TopAptitudes
}
