package dto

import "time"

// OptionResponse is one selectable answer.
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// QuestionResponse is a question as shown to the student, without its answer key.
type QuestionResponse struct {
	ID      string           `json:"id"`
	Prompt  string           `json:"prompt"`
	Type    string           `json:"type"`
	Options []OptionResponse `json:"options"`
}

// SectionQuestionsResponse groups the questions of one section
// @Description Questions of one aptitude section
type SectionQuestionsResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Index     int                `json:"index"`
	Questions []QuestionResponse `json:"questions"`
}

// QuestionsResponse is the whole questionnaire in section order
type QuestionsResponse struct {
	Sections []SectionQuestionsResponse `json:"sections"`
}

// BasicInfoResponse mirrors the intake form
type BasicInfoResponse struct {
	StudentName         string   `json:"studentName"`
	CurrentGrade        string   `json:"currentGrade"`
	CurrentStream       string   `json:"currentStream"`
	Subjects            []string `json:"subjects"`
	AcademicPerformance string   `json:"academicPerformance"`
	Interests           []string `json:"interests"`
	CareerAspirations   string   `json:"careerAspirations"`
	ParentContact       string   `json:"parentContact"`
	AdditionalInfo      string   `json:"additionalInfo"`
}

// FlowResponse is the client view of an assessment flow
// @Description Current position and progress of an assessment flow
type FlowResponse struct {
	FlowID              string                       `json:"flow_id"`
	CurrentStep         string                       `json:"current_step"`
	CurrentSection      string                       `json:"current_section"`
	CurrentSectionIndex int                          `json:"current_section_index"`
	TotalSections       int                          `json:"total_sections"`
	SectionProgress     map[string]bool              `json:"section_progress"`
	Answers             map[string]map[string]string `json:"answers"`
	BasicInfo           BasicInfoResponse            `json:"basic_info"`
	BasicInfoComplete   bool                         `json:"basic_info_complete"`
	IsComplete          bool                         `json:"is_complete"`
	CanGoPrevious       bool                         `json:"can_go_previous"`
	CanGoNext           bool                         `json:"can_go_next"`
	IsLastSection       bool                         `json:"is_last_section"`
	UpdatedAt           time.Time                    `json:"updated_at"`
}

// RecordAnswerRequest stores one answer
// @Description Request body for recording an answer
type RecordAnswerRequest struct {
	Section    string `json:"section"`
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

// SubmitResponse tells the client where the results are
// @Description Where to navigate after submitting an assessment
type SubmitResponse struct {
	RedirectTo string `json:"redirect_to"`
	SessionID  string `json:"session_id,omitempty"`
}
