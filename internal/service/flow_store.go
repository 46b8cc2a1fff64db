package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-counsel/internal/cache"
	"career-counsel/internal/domain"
)

// FlowStore persists assessment flows between requests.
type FlowStore interface {
	// Load returns a FLOW_NOT_FOUND domain error when the flow is absent or expired.
	Load(ctx context.Context, flowID string) (*domain.AssessmentState, error)
	Save(ctx context.Context, state *domain.AssessmentState) error
	Delete(ctx context.Context, flowID string) error
}

type cacheFlowStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewFlowStore stores each flow as one JSON value with a sliding TTL.
func NewFlowStore(cache domain.Cache, ttl time.Duration) FlowStore {
	return &cacheFlowStore{cache: cache, ttl: ttl}
}

func (s *cacheFlowStore) Load(ctx context.Context, flowID string) (*domain.AssessmentState, error) {
	raw, err := s.cache.Get(ctx, cache.FlowKey(flowID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewFlowNotFoundError(flowID)
		}
		return nil, fmt.Errorf("failed to load flow %s: %w", flowID, err)
	}

	var state domain.AssessmentState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("failed to decode flow %s: %w", flowID, err)
	}
	return &state, nil
}

func (s *cacheFlowStore) Save(ctx context.Context, state *domain.AssessmentState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode flow %s: %w", state.ID, err)
	}
	if err := s.cache.Set(ctx, cache.FlowKey(state.ID), string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to save flow %s: %w", state.ID, err)
	}
	return nil
}

func (s *cacheFlowStore) Delete(ctx context.Context, flowID string) error {
	return s.cache.Delete(ctx, cache.FlowKey(flowID))
}
