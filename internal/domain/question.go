package domain

// QuestionType decides which option set a question offers.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionSameDifferent  QuestionType = "same_different"
)

// Option is one selectable answer.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Question belongs to exactly one Section. CorrectAnswer is carried for
// fixture fidelity and is never serialised to clients.
type Question struct {
	ID            string       `json:"id" yaml:"id"`
	Prompt        string       `json:"prompt" yaml:"prompt"`
	Type          QuestionType `json:"type" yaml:"type"`
	Options       []Option     `json:"options" yaml:"options"`
	CorrectAnswer string       `json:"-" yaml:"correct_answer"`
}

// HasOption reports whether value is one of the question's option values.
func (q *Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// QuestionCatalog is what the sequencer needs to know about the question bank.
type QuestionCatalog interface {
	// QuestionIDs returns the ordered ids of the questions in section.
	QuestionIDs(section Section) []string
	// HasOption reports whether value answers questionID within section.
	HasOption(section Section, questionID, value string) bool
}
