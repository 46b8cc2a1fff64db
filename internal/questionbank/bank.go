// Package questionbank loads the fixed aptitude questionnaire.
package questionbank

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"career-counsel/internal/domain"
)

//go:embed questions.yaml
var fixture []byte

type fileQuestion struct {
	domain.Question `yaml:",inline"`
	DefaultAnswer   string `yaml:"default_answer"`
}

type fileSection struct {
	ID        domain.Section `yaml:"id"`
	Questions []fileQuestion `yaml:"questions"`
}

type file struct {
	Sections []fileSection `yaml:"sections"`
}

// Bank is the read-only question set. It satisfies domain.QuestionCatalog.
type Bank struct {
	sections  map[domain.Section][]domain.Question
	index     map[domain.Section]map[string]*domain.Question
	defaults  map[domain.Section]map[string]string
	questions int
}

var _ domain.QuestionCatalog = (*Bank)(nil)

// Load parses the embedded questionnaire.
func Load() (*Bank, error) {
	return Parse(fixture)
}

// Parse builds a Bank from a YAML document and checks it is usable: every
// section present, unique question ids, at least two options per question
// and answers that name an existing option.
func Parse(data []byte) (*Bank, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}

	b := &Bank{
		sections: make(map[domain.Section][]domain.Question),
		index:    make(map[domain.Section]map[string]*domain.Question),
		defaults: make(map[domain.Section]map[string]string),
	}
	seen := make(map[string]domain.Section)

	for _, fs := range f.Sections {
		if !fs.ID.IsValid() {
			return nil, fmt.Errorf("question bank: unknown section %q", fs.ID)
		}
		if _, dup := b.sections[fs.ID]; dup {
			return nil, fmt.Errorf("question bank: section %s listed twice", fs.ID)
		}
		if len(fs.Questions) == 0 {
			return nil, fmt.Errorf("question bank: section %s has no questions", fs.ID)
		}

		questions := make([]domain.Question, 0, len(fs.Questions))
		defaults := make(map[string]string)
		for _, fq := range fs.Questions {
			q := fq.Question
			if q.ID == "" {
				return nil, fmt.Errorf("question bank: section %s has a question without id", fs.ID)
			}
			if other, dup := seen[q.ID]; dup {
				return nil, fmt.Errorf("question bank: question id %s used in %s and %s", q.ID, other, fs.ID)
			}
			seen[q.ID] = fs.ID
			if len(q.Options) < 2 {
				return nil, fmt.Errorf("question bank: question %s needs at least two options", q.ID)
			}
			if q.Type == "" {
				q.Type = domain.QuestionMultipleChoice
			}
			if q.CorrectAnswer != "" && !q.HasOption(q.CorrectAnswer) {
				return nil, fmt.Errorf("question bank: question %s has correct answer %q outside its options", q.ID, q.CorrectAnswer)
			}
			if fq.DefaultAnswer != "" {
				if !q.HasOption(fq.DefaultAnswer) {
					return nil, fmt.Errorf("question bank: question %s has default answer %q outside its options", q.ID, fq.DefaultAnswer)
				}
				defaults[q.ID] = fq.DefaultAnswer
			}
			questions = append(questions, q)
		}

		b.sections[fs.ID] = questions
		b.defaults[fs.ID] = defaults
		b.questions += len(questions)
	}

	for _, s := range domain.Sections() {
		if _, ok := b.sections[s]; !ok {
			return nil, fmt.Errorf("question bank: section %s is missing", s)
		}
		idx := make(map[string]*domain.Question, len(b.sections[s]))
		for i := range b.sections[s] {
			idx[b.sections[s][i].ID] = &b.sections[s][i]
		}
		b.index[s] = idx
	}
	return b, nil
}

// Sections returns the sections in questionnaire order.
func (b *Bank) Sections() []domain.Section {
	return domain.Sections()
}

// Questions returns a copy of the section's questions.
func (b *Bank) Questions(section domain.Section) []domain.Question {
	qs := b.sections[section]
	out := make([]domain.Question, len(qs))
	for i, q := range qs {
		q.Options = append([]domain.Option(nil), q.Options...)
		out[i] = q
	}
	return out
}

func (b *Bank) QuestionIDs(section domain.Section) []string {
	qs := b.sections[section]
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func (b *Bank) HasOption(section domain.Section, questionID, value string) bool {
	q, ok := b.index[section][questionID]
	if !ok {
		return false
	}
	return q.HasOption(value)
}

// DefaultAnswers returns a fresh copy of the pre-fill answers.
func (b *Bank) DefaultAnswers() map[domain.Section]map[string]string {
	out := make(map[domain.Section]map[string]string, len(b.defaults))
	for s, answers := range b.defaults {
		copied := make(map[string]string, len(answers))
		for k, v := range answers {
			copied[k] = v
		}
		out[s] = copied
	}
	return out
}

// Count is the total number of questions.
func (b *Bank) Count() int {
	return b.questions
}
