package domain

import (
	"fmt"
	"time"
)

// Step is the top-level position of an assessment flow.
type Step string

const (
	StepBasicInfo  Step = "basic-info"
	StepAssessment Step = "assessment"
)

// AssessmentState is the aggregate persisted for one flow.
type AssessmentState struct {
	ID              string                        `json:"id"`
	VisitorID       string                        `json:"visitor_id"`
	CurrentStep     Step                          `json:"current_step"`
	CurrentSection  Section                       `json:"current_section"`
	Answers         map[Section]map[string]string `json:"answers"`
	SectionProgress map[Section]bool              `json:"section_progress"`
	BasicInfo       BasicInfo                     `json:"basic_info"`
	CreatedAt       time.Time                     `json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
}

// NewAssessmentState returns a flow positioned at the basic-info step.
func NewAssessmentState(id, visitorID string) *AssessmentState {
	now := time.Now().UTC()
	s := &AssessmentState{
		ID:              id,
		VisitorID:       visitorID,
		CurrentStep:     StepBasicInfo,
		CurrentSection:  FirstSection(),
		Answers:         make(map[Section]map[string]string, len(sectionOrder)),
		SectionProgress: make(map[Section]bool, len(sectionOrder)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, section := range sectionOrder {
		s.Answers[section] = make(map[string]string)
		s.SectionProgress[section] = false
	}
	return s
}

// ensureMaps repairs maps dropped by a JSON round trip of an empty state.
func (s *AssessmentState) ensureMaps() {
	if s.Answers == nil {
		s.Answers = make(map[Section]map[string]string, len(sectionOrder))
	}
	if s.SectionProgress == nil {
		s.SectionProgress = make(map[Section]bool, len(sectionOrder))
	}
	for _, section := range sectionOrder {
		if s.Answers[section] == nil {
			s.Answers[section] = make(map[string]string)
		}
	}
}

func (s *AssessmentState) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// Sequencer holds the transition rules of the assessment flow. Every method
// either applies a transition or returns an error and leaves the state as it
// was.
type Sequencer struct {
	state   *AssessmentState
	catalog QuestionCatalog
}

func NewSequencer(state *AssessmentState, catalog QuestionCatalog) *Sequencer {
	state.ensureMaps()
	return &Sequencer{state: state, catalog: catalog}
}

func (q *Sequencer) State() *AssessmentState {
	return q.state
}

// Seed pre-populates answers for a fresh flow. Values the catalog does not
// know are skipped.
func (q *Sequencer) Seed(defaults map[Section]map[string]string) {
	for section, answers := range defaults {
		if !section.IsValid() {
			continue
		}
		for questionID, value := range answers {
			if q.catalog.HasOption(section, questionID, value) {
				q.state.Answers[section][questionID] = value
			}
		}
		q.refreshProgress(section)
	}
}

// UpdateBasicInfo applies a partial edit of the intake record.
func (q *Sequencer) UpdateBasicInfo(patch BasicInfoPatch) error {
	if q.state.CurrentStep != StepBasicInfo {
		return NewInvalidStepError("Basic information can only be edited before the assessment starts.")
	}
	patch.Apply(&q.state.BasicInfo)
	q.state.touch()
	return nil
}

// SubmitBasicInfo moves the flow into the first section. Missing fields are
// returned as ValidationErrors.
func (q *Sequencer) SubmitBasicInfo() error {
	if q.state.CurrentStep != StepBasicInfo {
		return NewInvalidStepError("Basic information has already been submitted.")
	}
	if errs := q.state.BasicInfo.Validate(); len(errs) > 0 {
		return errs
	}
	q.state.CurrentStep = StepAssessment
	q.state.CurrentSection = FirstSection()
	q.state.touch()
	return nil
}

// RecordAnswer stores value for questionID, replacing any earlier answer.
// Questions are only answerable once basic info has been submitted.
func (q *Sequencer) RecordAnswer(section Section, questionID, value string) error {
	if err := q.requireAssessment(); err != nil {
		return err
	}
	if !section.IsValid() {
		return NewInvalidInputError(fmt.Sprintf("unknown section: %q", section))
	}
	if !q.hasQuestion(section, questionID) {
		return NewInvalidInputError(fmt.Sprintf("unknown question %q in section %s", questionID, section))
	}
	if !q.catalog.HasOption(section, questionID, value) {
		return NewInvalidInputError(fmt.Sprintf("%q is not an option for question %s", value, questionID))
	}
	q.state.Answers[section][questionID] = value
	q.refreshProgress(section)
	q.state.touch()
	return nil
}

// IsSectionComplete reports whether every question of section has an answer.
func (q *Sequencer) IsSectionComplete(section Section) bool {
	ids := q.catalog.QuestionIDs(section)
	if len(ids) == 0 {
		return false
	}
	answers := q.state.Answers[section]
	for _, id := range ids {
		if answers[id] == "" {
			return false
		}
	}
	return true
}

// IncompleteSections lists unfinished sections in order.
func (q *Sequencer) IncompleteSections() []Section {
	var out []Section
	for _, section := range sectionOrder {
		if !q.IsSectionComplete(section) {
			out = append(out, section)
		}
	}
	return out
}

func (q *Sequencer) AllSectionsComplete() bool {
	return len(q.IncompleteSections()) == 0
}

// Next advances to the following section once the current one is complete.
func (q *Sequencer) Next() error {
	if err := q.requireAssessment(); err != nil {
		return err
	}
	current := q.state.CurrentSection
	if !q.IsSectionComplete(current) {
		return NewSectionIncompleteError(current)
	}
	next, ok := current.Next()
	if !ok {
		return NewNoNextSectionError(current)
	}
	q.state.CurrentSection = next
	q.state.touch()
	return nil
}

// Previous moves back one section without any completeness check.
func (q *Sequencer) Previous() error {
	if err := q.requireAssessment(); err != nil {
		return err
	}
	current := q.state.CurrentSection
	prev, ok := current.Previous()
	if !ok {
		return NewNoPreviousSectionError(current)
	}
	q.state.CurrentSection = prev
	q.state.touch()
	return nil
}

// ReadyToSubmit re-checks every section, not only the current one.
func (q *Sequencer) ReadyToSubmit() error {
	if err := q.requireAssessment(); err != nil {
		return err
	}
	if incomplete := q.IncompleteSections(); len(incomplete) > 0 {
		return NewAssessmentIncompleteError(incomplete)
	}
	return nil
}

func (q *Sequencer) BasicInfoComplete() bool {
	return q.state.BasicInfo.IsComplete()
}

// IsComplete is true when the flow could be submitted right now.
func (q *Sequencer) IsComplete() bool {
	return q.state.CurrentStep == StepAssessment && q.AllSectionsComplete()
}

func (q *Sequencer) requireAssessment() error {
	if q.state.CurrentStep != StepAssessment {
		return NewInvalidStepError("Please complete your basic information first.")
	}
	return nil
}

func (q *Sequencer) hasQuestion(section Section, questionID string) bool {
	for _, id := range q.catalog.QuestionIDs(section) {
		if id == questionID {
			return true
		}
	}
	return false
}

func (q *Sequencer) refreshProgress(section Section) {
	q.state.SectionProgress[section] = q.IsSectionComplete(section)
}
