package dto

// AcademicStatusRequest is the academic part of the college intake
type AcademicStatusRequest struct {
	GPA              string `json:"gpa"`
	YearStatus       string `json:"yearStatus"`
	MajorSubjects    string `json:"majorSubjects"`
	Extracurriculars string `json:"extracurriculars"`
}

// CollegeIntakeRequest is the college assessment form
// @Description College assessment intake form
type CollegeIntakeRequest struct {
	ResumeFileName  string                `json:"resumeFileName"`
	AcademicStatus  AcademicStatusRequest `json:"academicStatus"`
	GithubProfile   string                `json:"githubProfile"`
	LinkedinProfile string                `json:"linkedinProfile"`
	InitialMessage  string                `json:"initialMessage"`
}

// CollegeIntakeResponse is returned when the intake passes validation
type CollegeIntakeResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
