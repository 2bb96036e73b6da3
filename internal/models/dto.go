package models

type SaveCVResponse struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}

type ExtractRequest struct {
	FileID string `json:"fileId" validate:"required"`
}

// ExtractionResult is the structured profile recovered from the model's
// reply. Field names match the JSON shape the extraction prompt demands.
type ExtractionResult struct {
	Name                  string   `json:"name"`
	CurrentEmployer       string   `json:"currentEmployer"`
	CurrentPosition       string   `json:"currentPosition"`
	Age                   int      `json:"age"`
	Location              string   `json:"location"`
	HardSkills            []string `json:"hardSkills"`
	ExperienceDescription string   `json:"experienceDescription"`
	YearsOfExperience     int      `json:"yearsOfExperience"`
	Degree                string   `json:"degree"`
}

// GenerateEmailRequest is the recruiter-edited profile submitted after
// extraction review.
type GenerateEmailRequest struct {
	CandidateName         string   `json:"candidateName" validate:"required"`
	EmploymentStatus      bool     `json:"employmentStatus"`
	CurrentEmployer       *string  `json:"currentEmployer"`
	CurrentPosition       *string  `json:"currentPosition"`
	Age                   int      `json:"age" validate:"gte=0"`
	Location              string   `json:"location"`
	RecruiterName         string   `json:"recruiterName" validate:"required"`
	ContactName           string   `json:"contactName"`
	HardSkills            []string `json:"hardSkills"`
	ExperienceDescription string   `json:"experienceDescription"`
	YearsOfExperience     int      `json:"yearsOfExperience" validate:"gte=0"`
	GraduationStatus      bool     `json:"graduationStatus"`
	Degree                *string  `json:"degree"`
	TargetRoles           []string `json:"targetRoles"`
	Ambitions             *string  `json:"ambitions"`
	TravelMode            *string  `json:"travelMode" validate:"omitempty,oneof=car 'public transport' bicycle 'on walk'"`
	MinutesOfRoad         []int    `json:"minutesOfRoad"`
	OnSiteDays            []int    `json:"onSiteDays"`
	GrossSalary           int      `json:"grossSalary" validate:"gte=0"`
	SalaryPeriod          string   `json:"salaryPeriod" validate:"omitempty,oneof=year month"`
	HoursAWeek            int      `json:"hoursAWeek" validate:"omitempty,oneof=8 16 24 32 40"`
	JobDescriptionText    *string  `json:"jobDescriptionText"`
}

type GenerateEmailResponse struct {
	CandidateID string `json:"candidate_id"`
	Email       string `json:"email"`
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
