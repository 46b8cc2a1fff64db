package dto

import "encoding/json"

const (
	SourceLive = "live"
	SourceMock = "mock"
)

// FleetSummaryView is the fleet summary with display labels
type FleetSummaryView struct {
	Status              string   `json:"status"`
	Confidence          float64  `json:"confidence"`
	ConfidenceLabel     string   `json:"confidence_label"`
	ConfidencePercent   string   `json:"confidence_percent"`
	ProcessingTime      float64  `json:"processing_time"`
	ProcessingTimeLabel string   `json:"processing_time_label"`
	Recommendations     []string `json:"recommendations"`
	NextActions         []string `json:"next_actions"`
}

// AptitudeScoreView is one labelled sten score
type AptitudeScoreView struct {
	Domain     string  `json:"domain"`
	DomainName string  `json:"domain_name"`
	Score      float64 `json:"score"`
	Level      string  `json:"level"`
}

// AgentSectionView reports whether one results section can be rendered
type AgentSectionView struct {
	Key             string  `json:"key"`
	Title           string  `json:"title"`
	Available       bool    `json:"available"`
	Status          string  `json:"status,omitempty"`
	Confidence      float64 `json:"confidence,omitempty"`
	ConfidenceLabel string  `json:"confidence_label,omitempty"`
	Warning         string  `json:"warning,omitempty"`

	TopAptitudes []AptitudeScoreView `json:"top_aptitudes,omitempty"`
}

// ResultsView is everything a results page renders
// @Description Results document plus per-section availability
type ResultsView struct {
	Track        string             `json:"track"`
	Source       string             `json:"source"`
	SessionID    string             `json:"session_id,omitempty"`
	FleetSummary *FleetSummaryView  `json:"fleet_summary,omitempty"`
	Sections     []AgentSectionView `json:"sections"`
	Warnings     []string           `json:"warnings,omitempty"`
	Document     json.RawMessage    `json:"document" swaggertype:"object"`
}
