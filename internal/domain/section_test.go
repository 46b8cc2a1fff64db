package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSection_Order(t *testing.T) {
	sections := Sections()
	assert.Equal(t, []Section{
		SectionVerbalSynonyms, SectionVerbalProverbs, SectionNumerical,
		SectionMechanical, SectionClerical, SectionReasoning,
	}, sections)

	sections[0] = SectionReasoning
	assert.Equal(t, SectionVerbalSynonyms, FirstSection(), "Sections must return a copy")

	next, ok := SectionNumerical.Next()
	assert.True(t, ok)
	assert.Equal(t, SectionMechanical, next)

	_, ok = SectionReasoning.Next()
	assert.False(t, ok)

	prev, ok := SectionVerbalProverbs.Previous()
	assert.True(t, ok)
	assert.Equal(t, SectionVerbalSynonyms, prev)

	_, ok = SectionVerbalSynonyms.Previous()
	assert.False(t, ok)

	_, ok = Section("bogus").Next()
	assert.False(t, ok)
	assert.Equal(t, -1, Section("bogus").Index())
}

func TestSection_Title(t *testing.T) {
	assert.Equal(t, "Numerical Ability", SectionNumerical.Title())
	assert.Equal(t, "bogus", Section("bogus").Title())
}
