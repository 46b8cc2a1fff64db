package domain

import "strings"

// BasicInfo is the intake record collected before the questionnaire.
// JSON names match the browser form so the record can be forwarded as is.
type BasicInfo struct {
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

// Validate returns one MISSING_FIELD error per empty required field, in
// form order. A nil result means the record is complete.
func (b *BasicInfo) Validate() ValidationErrors {
	var errs ValidationErrors
	required := func(field, value, message string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, NewFieldError(field, CodeMissingField, message))
		}
	}
	requiredList := func(field string, values []string, message string) {
		if len(nonEmpty(values)) == 0 {
			errs = append(errs, NewFieldError(field, CodeMissingField, message))
		}
	}

	required("studentName", b.StudentName, "Student name is required")
	required("currentGrade", b.CurrentGrade, "Current grade is required")
	required("currentStream", b.CurrentStream, "Current stream is required")
	requiredList("subjects", b.Subjects, "Please select at least one subject")
	required("academicPerformance", b.AcademicPerformance, "Academic performance is required")
	requiredList("interests", b.Interests, "Please select at least one interest area")
	required("careerAspirations", b.CareerAspirations, "Career aspirations are required")
	required("parentContact", b.ParentContact, "Parent contact is required")
	return errs
}

// IsComplete reports whether every required field is populated.
func (b *BasicInfo) IsComplete() bool {
	return len(b.Validate()) == 0
}

// BasicInfoPatch carries a partial update; nil fields are left untouched.
type BasicInfoPatch struct {
	StudentName         *string   `json:"studentName,omitempty"`
	CurrentGrade        *string   `json:"currentGrade,omitempty"`
	CurrentStream       *string   `json:"currentStream,omitempty"`
	Subjects            *[]string `json:"subjects,omitempty"`
	AcademicPerformance *string   `json:"academicPerformance,omitempty"`
	Interests           *[]string `json:"interests,omitempty"`
	CareerAspirations   *string   `json:"careerAspirations,omitempty"`
	ParentContact       *string   `json:"parentContact,omitempty"`
	AdditionalInfo      *string   `json:"additionalInfo,omitempty"`
}

// Apply copies the populated fields of p onto b.
func (p BasicInfoPatch) Apply(b *BasicInfo) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&b.StudentName, p.StudentName)
	setString(&b.CurrentGrade, p.CurrentGrade)
	setString(&b.CurrentStream, p.CurrentStream)
	setString(&b.AcademicPerformance, p.AcademicPerformance)
	setString(&b.CareerAspirations, p.CareerAspirations)
	setString(&b.ParentContact, p.ParentContact)
	setString(&b.AdditionalInfo, p.AdditionalInfo)
	if p.Subjects != nil {
		b.Subjects = append([]string(nil), (*p.Subjects)...)
	}
	if p.Interests != nil {
		b.Interests = append([]string(nil), (*p.Interests)...)
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
