package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-counsel/internal/domain"
	"career-counsel/internal/dto"
	"career-counsel/internal/handler"
)

func TestResultsHandler_GetResults(t *testing.T) {
	var gotTrack domain.Track
	var gotSession string
	svc := &MockResultsService{
		GetResultsFunc: func(ctx context.Context, visitorID string, track domain.Track, sessionID string) (*dto.ResultsView, error) {
			gotTrack, gotSession = track, sessionID
			return &dto.ResultsView{Track: string(track), Source: dto.SourceLive, SessionID: sessionID}, nil
		},
	}
	app := newTestApp(handler.Handlers{Results: handler.NewResultsHandler(svc)})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/results/college?session_id=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.TrackCollege, gotTrack)
	assert.Equal(t, "abc", gotSession)

	var view dto.ResultsView
	decodeBody(t, resp, &view)
	assert.Equal(t, "live", view.Source)
}

func TestResultsHandler_UnknownTrack(t *testing.T) {
	app := newTestApp(handler.Handlers{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/results/university", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCollegeHandler_ValidateIntake(t *testing.T) {
	app := newTestApp(handler.Handlers{})
	valid := dto.CollegeIntakeRequest{
		ResumeFileName: "resume.pdf",
		AcademicStatus: dto.AcademicStatusRequest{
			GPA:              "8.4",
			YearStatus:       "Final year, graduating 2026",
			MajorSubjects:    "Computer Science",
			Extracurriculars: "Robotics club lead",
		},
		GithubProfile:   "https://github.com/asha-rao",
		LinkedinProfile: "linkedin.com/in/asha-rao/",
		InitialMessage:  strings.Repeat("word ", 20),
	}

	t.Run("valid", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/college/intake/validate", valid))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.CollegeIntakeResponse
		decodeBody(t, resp, &body)
		assert.True(t, body.Valid)
	})

	t.Run("short message and bad github", func(t *testing.T) {
		req := valid
		req.InitialMessage = "help me"
		req.GithubProfile = "gitlab.com/asha"

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/college/intake/validate", req))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Errors []domain.ValidationError `json:"errors"`
		}
		decodeBody(t, resp, &body)
		fields := domain.ValidationErrors(body.Errors).Fields()
		assert.ElementsMatch(t, []string{"initialMessage", "githubProfile"}, fields)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		app := newTestApp(handler.Handlers{Health: handler.NewHealthHandler(NewManualMockCache(), nil)})
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body handler.HealthResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "up", body.Checks["redis"])
		assert.Equal(t, "disabled", body.Checks["database"])
	})

	t.Run("redis down", func(t *testing.T) {
		cache := NewManualMockCache()
		cache.PingFn = func(context.Context) error { return errors.New("connection refused") }
		app := newTestApp(handler.Handlers{Health: handler.NewHealthHandler(cache, nil)})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}
