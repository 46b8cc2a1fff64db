package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"career-counsel/internal/domain"
	"career-counsel/internal/dto"
	"career-counsel/internal/logger"
	"career-counsel/internal/metrics"
	"career-counsel/internal/questionbank"
	"career-counsel/internal/util"
)

const (
	transitionStart        = "start"
	transitionBasicInfo    = "basic_info_update"
	transitionBasicSubmit  = "basic_info_submit"
	transitionRecordAnswer = "record_answer"
	transitionNext         = "next"
	transitionPrevious     = "previous"
	transitionSubmit       = "submit"
)

// AssessmentService drives the school assessment flow.
type AssessmentService interface {
	Questions() *dto.QuestionsResponse
	StartFlow(ctx context.Context, visitorID string) (*dto.FlowResponse, error)
	GetFlow(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error)
	UpdateBasicInfo(ctx context.Context, visitorID, flowID string, patch domain.BasicInfoPatch) (*dto.FlowResponse, error)
	SubmitBasicInfo(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error)
	RecordAnswer(ctx context.Context, visitorID, flowID string, req *dto.RecordAnswerRequest) (*dto.FlowResponse, error)
	Next(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error)
	Previous(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error)
	Submit(ctx context.Context, visitorID, flowID string) (*dto.SubmitResponse, error)
}

type assessmentService struct {
	bank        *questionbank.Bank
	store       FlowStore
	submissions SubmissionService
	seedAnswers bool
	locks       flowLocks
	questions   *dto.QuestionsResponse
}

// NewAssessmentService creates the flow orchestrator. When seedAnswers is
// set new flows start with the bank's default answers filled in.
func NewAssessmentService(bank *questionbank.Bank, store FlowStore, submissions SubmissionService, seedAnswers bool) AssessmentService {
	return &assessmentService{
		bank:        bank,
		store:       store,
		submissions: submissions,
		seedAnswers: seedAnswers,
		questions:   buildQuestionsResponse(bank),
	}
}

func (s *assessmentService) Questions() *dto.QuestionsResponse {
	return s.questions
}

func (s *assessmentService) StartFlow(ctx context.Context, visitorID string) (*dto.FlowResponse, error) {
	state := domain.NewAssessmentState(util.NewULID(), visitorID)
	seq := domain.NewSequencer(state, s.bank)
	if s.seedAnswers {
		seq.Seed(s.bank.DefaultAnswers())
	}

	if err := s.store.Save(ctx, state); err != nil {
		metrics.TransitionsTotal.WithLabelValues(transitionStart, metrics.OutcomeError).Inc()
		return nil, domain.NewInternalError("Failed to start assessment", err)
	}
	metrics.TransitionsTotal.WithLabelValues(transitionStart, metrics.OutcomeOK).Inc()

	logger.Get().Info("Assessment flow started",
		zap.String("flow_id", state.ID),
		zap.String("visitor_id", visitorID),
	)
	return toFlowResponse(seq), nil
}

func (s *assessmentService) GetFlow(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error) {
	state, err := s.load(ctx, visitorID, flowID)
	if err != nil {
		return nil, err
	}
	return toFlowResponse(domain.NewSequencer(state, s.bank)), nil
}

func (s *assessmentService) UpdateBasicInfo(ctx context.Context, visitorID, flowID string, patch domain.BasicInfoPatch) (*dto.FlowResponse, error) {
	return s.mutate(ctx, visitorID, flowID, transitionBasicInfo, func(seq *domain.Sequencer) error {
		return seq.UpdateBasicInfo(patch)
	})
}

func (s *assessmentService) SubmitBasicInfo(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error) {
	return s.mutate(ctx, visitorID, flowID, transitionBasicSubmit, func(seq *domain.Sequencer) error {
		return seq.SubmitBasicInfo()
	})
}

func (s *assessmentService) RecordAnswer(ctx context.Context, visitorID, flowID string, req *dto.RecordAnswerRequest) (*dto.FlowResponse, error) {
	return s.mutate(ctx, visitorID, flowID, transitionRecordAnswer, func(seq *domain.Sequencer) error {
		return seq.RecordAnswer(domain.Section(req.Section), req.QuestionID, req.Value)
	})
}

func (s *assessmentService) Next(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error) {
	return s.mutate(ctx, visitorID, flowID, transitionNext, func(seq *domain.Sequencer) error {
		return seq.Next()
	})
}

func (s *assessmentService) Previous(ctx context.Context, visitorID, flowID string) (*dto.FlowResponse, error) {
	return s.mutate(ctx, visitorID, flowID, transitionPrevious, func(seq *domain.Sequencer) error {
		return seq.Previous()
	})
}

// Submit re-validates every section, forwards the flow to the analysis
// service and ends the flow. Integration failures never reach the caller;
// they only change where the client is sent.
func (s *assessmentService) Submit(ctx context.Context, visitorID, flowID string) (*dto.SubmitResponse, error) {
	unlock := s.locks.lock(flowID)
	defer unlock()

	state, err := s.load(ctx, visitorID, flowID)
	if err != nil {
		return nil, err
	}

	seq := domain.NewSequencer(state, s.bank)
	if err := seq.ReadyToSubmit(); err != nil {
		metrics.TransitionsTotal.WithLabelValues(transitionSubmit, metrics.OutcomeRefused).Inc()
		return nil, err
	}

	payload := domain.NewSchoolSubmission(state, time.Now())
	outcome := s.submissions.SubmitSchool(ctx, visitorID, flowID, payload)
	metrics.TransitionsTotal.WithLabelValues(transitionSubmit, metrics.OutcomeOK).Inc()

	// The flow ends here whatever the analysis service said.
	if err := s.store.Delete(ctx, flowID); err != nil {
		logger.Get().Warn("Failed to delete submitted flow; it will expire on its own",
			zap.String("flow_id", flowID),
			zap.Error(err),
		)
	}

	return &dto.SubmitResponse{
		RedirectTo: outcome.RedirectTo,
		SessionID:  outcome.SessionID,
	}, nil
}

// mutate loads the flow, applies fn and saves the result. A refused
// transition is not saved.
func (s *assessmentService) mutate(ctx context.Context, visitorID, flowID, transition string, fn func(*domain.Sequencer) error) (*dto.FlowResponse, error) {
	unlock := s.locks.lock(flowID)
	defer unlock()

	state, err := s.load(ctx, visitorID, flowID)
	if err != nil {
		return nil, err
	}

	seq := domain.NewSequencer(state, s.bank)
	if err := fn(seq); err != nil {
		metrics.TransitionsTotal.WithLabelValues(transition, metrics.OutcomeRefused).Inc()
		logger.Get().Debug("Assessment transition refused",
			zap.String("flow_id", flowID),
			zap.String("transition", transition),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.store.Save(ctx, state); err != nil {
		metrics.TransitionsTotal.WithLabelValues(transition, metrics.OutcomeError).Inc()
		return nil, domain.NewInternalError("Failed to save assessment progress", err)
	}
	metrics.TransitionsTotal.WithLabelValues(transition, metrics.OutcomeOK).Inc()
	return toFlowResponse(seq), nil
}

// load hides flows owned by another visitor behind FLOW_NOT_FOUND.
func (s *assessmentService) load(ctx context.Context, visitorID, flowID string) (*domain.AssessmentState, error) {
	state, err := s.store.Load(ctx, flowID)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("Failed to load assessment flow", err)
	}
	if state.VisitorID != visitorID {
		logger.Get().Warn("Flow requested by a different visitor",
			zap.String("flow_id", flowID),
			zap.String("visitor_id", visitorID),
		)
		return nil, domain.NewFlowNotFoundError(flowID)
	}
	return state, nil
}

func buildQuestionsResponse(bank *questionbank.Bank) *dto.QuestionsResponse {
	resp := &dto.QuestionsResponse{}
	for i, section := range bank.Sections() {
		sq := dto.SectionQuestionsResponse{
			ID:    string(section),
			Title: section.Title(),
			Index: i,
		}
		for _, q := range bank.Questions(section) {
			qr := dto.QuestionResponse{
				ID:     q.ID,
				Prompt: q.Prompt,
				Type:   string(q.Type),
			}
			for _, o := range q.Options {
				qr.Options = append(qr.Options, dto.OptionResponse{Value: o.Value, Label: o.Label})
			}
			sq.Questions = append(sq.Questions, qr)
		}
		resp.Sections = append(resp.Sections, sq)
	}
	return resp
}

func toFlowResponse(seq *domain.Sequencer) *dto.FlowResponse {
	state := seq.State()
	inAssessment := state.CurrentStep == domain.StepAssessment

	progress := make(map[string]bool, len(state.SectionProgress))
	answers := make(map[string]map[string]string, len(state.Answers))
	for _, section := range domain.Sections() {
		progress[string(section)] = seq.IsSectionComplete(section)
		copied := make(map[string]string, len(state.Answers[section]))
		for k, v := range state.Answers[section] {
			copied[k] = v
		}
		answers[string(section)] = copied
	}

	info := state.BasicInfo
	return &dto.FlowResponse{
		FlowID:              state.ID,
		CurrentStep:         string(state.CurrentStep),
		CurrentSection:      string(state.CurrentSection),
		CurrentSectionIndex: state.CurrentSection.Index(),
		TotalSections:       len(domain.Sections()),
		SectionProgress:     progress,
		Answers:             answers,
		BasicInfo: dto.BasicInfoResponse{
			StudentName:         info.StudentName,
			CurrentGrade:        info.CurrentGrade,
			CurrentStream:       info.CurrentStream,
			Subjects:            nonNil(info.Subjects),
			AcademicPerformance: info.AcademicPerformance,
			Interests:           nonNil(info.Interests),
			CareerAspirations:   info.CareerAspirations,
			ParentContact:       info.ParentContact,
			AdditionalInfo:      info.AdditionalInfo,
		},
		BasicInfoComplete: seq.BasicInfoComplete(),
		IsComplete:        seq.IsComplete(),
		CanGoPrevious:     inAssessment && !state.CurrentSection.IsFirst(),
		CanGoNext:         inAssessment && !state.CurrentSection.IsLast() && seq.IsSectionComplete(state.CurrentSection),
		IsLastSection:     state.CurrentSection.IsLast(),
		UpdatedAt:         state.UpdatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
