package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-counsel/internal/domain"
)

func TestLoad(t *testing.T) {
	bank, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 18, bank.Count())
	assert.Equal(t, []string{"vs1", "vs2", "vs3"}, bank.QuestionIDs(domain.SectionVerbalSynonyms))
	assert.Equal(t, []string{"ra1", "ra2", "ra3"}, bank.QuestionIDs(domain.SectionReasoning))

	clerical := bank.Questions(domain.SectionClerical)
	require.Len(t, clerical, 3)
	assert.Equal(t, domain.QuestionSameDifferent, clerical[0].Type)
	assert.Equal(t, "different", clerical[0].CorrectAnswer)

	fast := bank.Questions(domain.SectionVerbalSynonyms)[0]
	assert.Equal(t, "FAST", fast.Prompt)
	assert.Len(t, fast.Options, 5)
	assert.Equal(t, "rapid", fast.Options[1].Label)
}

func TestBank_HasOption(t *testing.T) {
	bank, err := Load()
	require.NoError(t, err)

	assert.True(t, bank.HasOption(domain.SectionNumerical, "na1", "e"))
	assert.True(t, bank.HasOption(domain.SectionClerical, "cl2", "same"))
	assert.False(t, bank.HasOption(domain.SectionClerical, "cl2", "a"))
	assert.False(t, bank.HasOption(domain.SectionNumerical, "vs1", "a"), "question from another section")
	assert.False(t, bank.HasOption(domain.Section("art"), "na1", "a"))
}

func TestBank_QuestionsIsACopy(t *testing.T) {
	bank, err := Load()
	require.NoError(t, err)

	qs := bank.Questions(domain.SectionMechanical)
	qs[0].Options[0].Label = "changed"
	assert.Equal(t, "circuit breaker", bank.Questions(domain.SectionMechanical)[0].Options[0].Label)
}

func TestBank_DefaultAnswers(t *testing.T) {
	bank, err := Load()
	require.NoError(t, err)

	defaults := bank.DefaultAnswers()
	assert.Len(t, defaults, 6)
	assert.Equal(t, "a", defaults[domain.SectionVerbalSynonyms]["vs1"])
	assert.Equal(t, "same", defaults[domain.SectionClerical]["cl1"])

	defaults[domain.SectionVerbalSynonyms]["vs1"] = "e"
	assert.Equal(t, "a", bank.DefaultAnswers()[domain.SectionVerbalSynonyms]["vs1"])

	state := domain.NewAssessmentState("flow", "visitor")
	seq := domain.NewSequencer(state, bank)
	seq.Seed(bank.DefaultAnswers())
	assert.Empty(t, seq.IncompleteSections())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not yaml", "sections: [", "failed to parse"},
		{"unknown section", "sections:\n  - id: art\n    questions: []\n", "unknown section"},
		{"missing sections", `sections:
  - id: verbal_synonyms
    questions:
      - id: q1
        prompt: p
        options: [{value: a, label: A}, {value: b, label: B}]
`, "is missing"},
		{"single option", `sections:
  - id: numerical
    questions:
      - id: q1
        prompt: p
        options: [{value: a, label: A}]
`, "at least two options"},
		{"bad correct answer", `sections:
  - id: numerical
    questions:
      - id: q1
        prompt: p
        options: [{value: a, label: A}, {value: b, label: B}]
        correct_answer: z
`, "correct answer"},
		{"duplicate id", `sections:
  - id: numerical
    questions:
      - id: q1
        prompt: p
        options: [{value: a, label: A}, {value: b, label: B}]
  - id: clerical
    questions:
      - id: q1
        prompt: p
        options: [{value: same, label: Same}, {value: different, label: Different}]
`, "used in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
