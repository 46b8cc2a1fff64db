// Package mockdata holds the demo results documents shown whenever live
// results are unavailable.
package mockdata

import (
	_ "embed"
	"fmt"

	"career-counsel/internal/domain"
)

var (
	//go:embed school_results.json
	schoolResults []byte

	//go:embed college_results.json
	collegeResults []byte
)

// ForTrack decodes a fresh copy of the track's demo document so callers may
// annotate it freely.
func ForTrack(track domain.Track) (*domain.ResultsResponse, error) {
	var raw []byte
	switch track {
	case domain.TrackSchool:
		raw = schoolResults
	case domain.TrackCollege:
		raw = collegeResults
	default:
		return nil, fmt.Errorf("no demo results for track %q", track)
	}

	resp, err := domain.DecodeResultsResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode demo results for %s: %w", track, err)
	}
	return resp, nil
}
