package handler_test

import (
	"context"
	"sync"
	"time"

	"career-counsel/internal/domain"
	"career-counsel/internal/dto"
)

// --- Manual Mocks ---

// MockAssessmentService
type MockAssessmentService struct {
	QuestionsFunc       func() *dto.QuestionsResponse
	StartFlowFunc       func(ctx context.Context, visitorID string) (*dto.FlowResponse, error)
	GetFlowFunc         func(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error)
	UpdateBasicInfoFunc func(ctx context.Context, visitorID, flowID string, patch domain.BasicInfoPatch) (*dto.FlowResponse, error)
	SubmitBasicInfoFunc func(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error)
	RecordAnswerFunc    func(ctx context.Context, visitorID, flowID string, req *dto.RecordAnswerRequest) (*dto.FlowResponse, error)
	NextFunc            func(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error)
	PreviousFunc        func(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error)
	SubmitFunc          func(ctx context.Context, visitorID, flowID string) (*dto.SubmitResponse, error)
}

func (m *MockAssessmentService) Questions() *dto.QuestionsResponse {
	if m.QuestionsFunc != nil {
		return m.QuestionsFunc()
	}
	panic("MockAssessmentService.QuestionsFunc not implemented")
}
func (m *MockAssessmentService) StartFlow(ctx context.Context, visitorID string) (*dto.FlowResponse, error) {
	if m.StartFlowFunc != nil {
		return m.StartFlowFunc(ctx, visitorID)
	}
	panic("MockAssessmentService.StartFlowFunc not implemented")
}
func (m *MockAssessmentService) GetFlow(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error) {
	if m.GetFlowFunc != nil {
		return m.GetFlowFunc(ctx, visitorID, flowID)
	}
	panic("MockAssessmentService.GetFlowFunc not implemented")
}
func (m *MockAssessmentService) UpdateBasicInfo(ctx context.Context, visitorID, flowID string, patch domain.BasicInfoPatch) (*dto.FlowResponse, error) {
	if m.UpdateBasicInfoFunc != nil {
		return m.UpdateBasicInfoFunc(ctx, visitorID, flowID, patch)
	}
	panic("MockAssessmentService.UpdateBasicInfoFunc not implemented")
}
func (m *MockAssessmentService) SubmitBasicInfo(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error) {
	if m.SubmitBasicInfoFunc != nil {
		return m.SubmitBasicInfoFunc(ctx, visitorID, flowID)
	}
	panic("MockAssessmentService.SubmitBasicInfoFunc not implemented")
}
func (m *MockAssessmentService) RecordAnswer(ctx context.Context, visitorID, flowID string, req *dto.RecordAnswerRequest) (*dto.FlowResponse, error) {
	if m.RecordAnswerFunc != nil {
		return m.RecordAnswerFunc(ctx, visitorID, flowID, req)
	}
	panic("MockAssessmentService.RecordAnswerFunc not implemented")
}
func (m *MockAssessmentService) Next(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, visitorID, flowID)
	}
	panic("MockAssessmentService.NextFunc not implemented")
}
func (m *MockAssessmentService) Previous(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error) {
	if m.PreviousFunc != nil {
		return m.PreviousFunc(ctx, visitorID, flowID)
	}
	panic("MockAssessmentService.PreviousFunc not implemented")
}
func (m *MockAssessmentService) Submit(ctx context.Context, visitorID, flowID string) (*dto.SubmitResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, visitorID, flowID)
	}
	panic("MockAssessmentService.SubmitFunc not implemented")
}

// MockResultsService
type MockResultsService struct {
	GetResultsFunc func(ctx context.Context, visitorID string, track domain.Track, sessionID string) (*dto.ResultsView, error)
}

func (m *MockResultsService) GetResults(ctx context.Context, visitorID string, track domain.Track, sessionID string) (*dto.ResultsView, error) {
	if m.GetResultsFunc != nil {
		return m.GetResultsFunc(ctx, visitorID, track, sessionID)
	}
	panic("MockResultsService.GetResultsFunc not implemented")
}

// ManualMockCache is a map-backed domain.Cache for wiring real services.
type ManualMockCache struct {
	mu     sync.Mutex
	values map[string]string
	hashes map[string]map[string]string
	PingFn func(ctx context.Context) error
}

func NewManualMockCache() *ManualMockCache {
	return &ManualMockCache{
		values: make(map[string]string),
		hashes: make(map[string]map[string]string),
	}
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	delete(m.hashes, key)
	return nil
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

func (m *ManualMockCache) HGet(ctx context.Context, key, field string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.hashes[key][field]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (m *ManualMockCache) HSet(ctx context.Context, key string, field string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hashes[key] == nil {
		m.hashes[key] = make(map[string]string)
	}
	m.hashes[key][field] = value
	return nil
}

func (m *ManualMockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return nil
}

var _ domain.Cache = (*ManualMockCache)(nil)
