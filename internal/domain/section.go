package domain

// Section is one fixed stage of the aptitude questionnaire.
type Section string

const (
	SectionVerbalSynonyms Section = "verbal_synonyms"
	SectionVerbalProverbs Section = "verbal_proverbs"
	SectionNumerical      Section = "numerical"
	SectionMechanical     Section = "mechanical"
	SectionClerical       Section = "clerical"
	SectionReasoning      Section = "reasoning"
)

// sectionOrder is the only order sections are ever visited in.
var sectionOrder = []Section{
	SectionVerbalSynonyms,
	SectionVerbalProverbs,
	SectionNumerical,
	SectionMechanical,
	SectionClerical,
	SectionReasoning,
}

var sectionTitles = map[Section]string{
	SectionVerbalSynonyms: "Verbal Ability: Synonyms",
	SectionVerbalProverbs: "Verbal Ability: Proverbs",
	SectionNumerical:      "Numerical Ability",
	SectionMechanical:     "Mechanical Ability",
	SectionClerical:       "Clerical Ability",
	SectionReasoning:      "Reasoning Ability",
}

// Sections returns the six sections in order. The slice is a copy.
func Sections() []Section {
	out := make([]Section, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

func FirstSection() Section { return sectionOrder[0] }

func LastSection() Section { return sectionOrder[len(sectionOrder)-1] }

// Index returns the position of s, or -1 for an unknown section.
func (s Section) Index() int {
	for i, candidate := range sectionOrder {
		if candidate == s {
			return i
		}
	}
	return -1
}

func (s Section) IsValid() bool { return s.Index() >= 0 }

func (s Section) IsFirst() bool { return s.Index() == 0 }

func (s Section) IsLast() bool { return s.Index() == len(sectionOrder)-1 }

// Next returns the following section and false when s is last or unknown.
func (s Section) Next() (Section, bool) {
	i := s.Index()
	if i < 0 || i == len(sectionOrder)-1 {
		return s, false
	}
	return sectionOrder[i+1], true
}

// Previous returns the preceding section and false when s is first or unknown.
func (s Section) Previous() (Section, bool) {
	i := s.Index()
	if i <= 0 {
		return s, false
	}
	return sectionOrder[i-1], true
}

func (s Section) Title() string {
	if title, ok := sectionTitles[s]; ok {
		return title
	}
	return string(s)
}
