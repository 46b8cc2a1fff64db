package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"career-counsel/internal/domain"
	"career-counsel/internal/questionbank"
)

// --- memoryCache ---
// In-memory domain.Cache. Set the *Err fields to make the next calls fail.
type memoryCache struct {
	mu     sync.Mutex
	values map[string]string
	hashes map[string]map[string]string
	ttls   map[string]time.Duration

	GetErr    error
	SetErr    error
	DeleteErr error
	HGetErr   error
	HSetErr   error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		values: make(map[string]string),
		hashes: make(map[string]map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return "", c.GetErr
	}
	v, ok := c.values[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	c.values[key] = value
	c.ttls[key] = expiration
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.DeleteErr != nil {
		return c.DeleteErr
	}
	delete(c.values, key)
	delete(c.hashes, key)
	delete(c.ttls, key)
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error { return nil }

func (c *memoryCache) HGet(ctx context.Context, key, field string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.HGetErr != nil {
		return "", c.HGetErr
	}
	v, ok := c.hashes[key][field]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) HSet(ctx context.Context, key string, field string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.HSetErr != nil {
		return c.HSetErr
	}
	if c.hashes[key] == nil {
		c.hashes[key] = make(map[string]string)
	}
	c.hashes[key][field] = value
	return nil
}

func (c *memoryCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttls[key] = expiration
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok
}

func (c *memoryCache) ttl(key string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttls[key]
}

// --- MockCounselorClient ---
type MockCounselorClient struct {
	mock.Mock
}

func (m *MockCounselorClient) SubmitSchoolAssessment(ctx context.Context, payload *domain.SchoolSubmission) (*domain.SubmissionResponse, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmissionResponse), args.Error(1)
}

func (m *MockCounselorClient) GetStatus(ctx context.Context, sessionID string) (*domain.ResultsResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResultsResponse), args.Error(1)
}

// --- MockSubmissionRepository ---
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, record *domain.SubmissionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- MockSubmissionService ---
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitSchool(ctx context.Context, visitorID, flowID string, payload *domain.SchoolSubmission) *domain.SubmissionOutcome {
	args := m.Called(ctx, visitorID, flowID, payload)
	return args.Get(0).(*domain.SubmissionOutcome)
}

func loadBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	bank, err := questionbank.Load()
	require.NoError(t, err)
	return bank
}

func boolPtr(b bool) *bool { return &b }

var _ domain.Cache = (*memoryCache)(nil)
var _ domain.CounselorClient = (*MockCounselorClient)(nil)
var _ domain.SubmissionRepository = (*MockSubmissionRepository)(nil)
var _ SubmissionService = (*MockSubmissionService)(nil)
