package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"career-counsel/internal/domain"
	"career-counsel/internal/dto"
	"career-counsel/internal/failopen"
	"career-counsel/internal/logger"
	"career-counsel/internal/metrics"
	"career-counsel/internal/mockdata"
	"career-counsel/internal/util"
)

// sampleResultsNotice is shown with demo results whatever the reason for
// falling back; the reason itself only goes to the log.
const sampleResultsNotice = "Showing sample results."

// ResultsService assembles what a results page renders.
type ResultsService interface {
	// GetResults never fails on integration errors; it falls back to the
	// demo document instead. sessionID may be empty.
	GetResults(ctx context.Context, visitorID string, track domain.Track, sessionID string) (*dto.ResultsView, error)
}

type resultsService struct {
	client  domain.CounselorClient
	storage BrowserStorage
	sfGroup singleflight.Group
}

func NewResultsService(client domain.CounselorClient, storage BrowserStorage) ResultsService {
	if storage == nil {
		storage = noopBrowserStorage{}
	}
	return &resultsService{client: client, storage: storage}
}

func (s *resultsService) GetResults(ctx context.Context, visitorID string, track domain.Track, sessionID string) (*dto.ResultsView, error) {
	if !track.IsValid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown results track: %q", track))
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = s.storedSessionID(ctx, visitorID, track)
	}

	if sessionID == "" {
		logger.Get().Debug("No assessment session, serving sample results", zap.String("track", string(track)))
		return s.mockView(track)
	}

	doc, degraded := failopen.Do(ctx, "fetch_results",
		func(ctx context.Context) (*domain.ResultsResponse, error) {
			return s.fetch(ctx, track, sessionID)
		},
		func() *domain.ResultsResponse { return nil },
	)
	if degraded || doc == nil {
		return s.mockView(track)
	}

	metrics.ResultsServedTotal.WithLabelValues(string(track), dto.SourceLive).Inc()
	view := buildResultsView(track, dto.SourceLive, doc)
	view.SessionID = sessionID
	return view, nil
}

// fetch coalesces concurrent requests for the same session. The shared call
// is detached from the caller so one cancelled request does not fail the rest.
func (s *resultsService) fetch(ctx context.Context, track domain.Track, sessionID string) (*domain.ResultsResponse, error) {
	key := string(track) + ":" + sessionID
	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		resp, err := s.client.GetStatus(context.WithoutCancel(ctx), sessionID)
		if err != nil {
			return nil, err
		}
		if resp == nil || !resp.Success {
			return nil, fmt.Errorf("status for session %s reported no success", sessionID)
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	doc, ok := res.(*domain.ResultsResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for results: %T", res)
	}
	return doc, nil
}

func (s *resultsService) storedSessionID(ctx context.Context, visitorID string, track domain.Track) string {
	if visitorID == "" {
		return ""
	}
	id, err := s.storage.GetItem(ctx, visitorID, track.StorageKey())
	if err != nil {
		logger.Get().Warn("Failed to read stored session id",
			zap.String("visitor_id", visitorID),
			zap.String("track", string(track)),
			zap.Error(err),
		)
		return ""
	}
	return id
}

func (s *resultsService) mockView(track domain.Track) (*dto.ResultsView, error) {
	doc, err := mockdata.ForTrack(track)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load sample results", err)
	}
	metrics.ResultsServedTotal.WithLabelValues(string(track), dto.SourceMock).Inc()

	view := buildResultsView(track, dto.SourceMock, doc)
	view.Warnings = append([]string{sampleResultsNotice}, view.Warnings...)
	return view, nil
}

func buildResultsView(track domain.Track, source string, doc *domain.ResultsResponse) *dto.ResultsView {
	view := &dto.ResultsView{
		Track:    string(track),
		Source:   source,
		Document: doc.Document(),
	}

	if summary := doc.FleetSummary(); summary != nil {
		view.FleetSummary = &dto.FleetSummaryView{
			Status:              summary.Status,
			Confidence:          summary.Confidence,
			ConfidenceLabel:     util.FormatConfidenceLevel(summary.Confidence),
			ConfidencePercent:   util.FormatPercentage(summary.Confidence),
			ProcessingTime:      summary.ProcessingTime,
			ProcessingTimeLabel: util.FormatProcessingTime(summary.ProcessingTime),
			Recommendations:     nonNil(summary.Recommendations),
			NextActions:         nonNil(summary.NextActions),
		}
	} else {
		view.Warnings = append(view.Warnings, "Fleet summary data unavailable")
	}

	for _, agent := range track.Agents() {
		section := dto.AgentSectionView{Key: agent.Key, Title: agent.Title}
		output := doc.AgentOutput(agent.Key)
		if output == nil {
			section.Warning = agent.Title + " data unavailable"
			view.Warnings = append(view.Warnings, section.Warning)
		} else {
			section.Available = true
			section.Status = output.Status
			section.Confidence = output.Confidence
			section.ConfidenceLabel = util.FormatConfidenceLevel(output.Confidence)
			section.TopAptitudes = aptitudeViews(output.TopAptitudes())
		}
		view.Sections = append(view.Sections, section)
	}
	return view
}

func aptitudeViews(scores []domain.AptitudeScore) []dto.AptitudeScoreView {
	if len(scores) == 0 {
		return nil
	}
	views := make([]dto.AptitudeScoreView, len(scores))
	for i, sc := range scores {
		views[i] = dto.AptitudeScoreView{
			Domain:     sc.Domain,
			DomainName: util.FormatAptitudeDomain(sc.Domain),
			Score:      sc.Score,
			Level:      util.FormatStenScore(sc.Score),
		}
	}
	return views
}
